package models

import (
	"fmt"
)

// PlanDay is one day of the synthesized plan
type PlanDay struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// PlanTotals carries the plan-level cost and emission totals
type PlanTotals struct {
	Cost        float64 `json:"cost"`
	EmissionsKg float64 `json:"emissions_kg"`
}

// PlanDraft is the day-by-day structure produced either by the
// generative model or by the deterministic fallback builder.
type PlanDraft struct {
	Days      []PlanDay   `json:"days"`
	Totals    *PlanTotals `json:"totals"`
	Rationale string      `json:"rationale"`
}

// Validate checks the plan shape invariant: exactly one entry per trip
// day, numbered 1..tripDays contiguously, with non-nil totals.
func (p *PlanDraft) Validate(tripDays int) error {
	if len(p.Days) != tripDays {
		return fmt.Errorf("plan has %d day entries, expected %d", len(p.Days), tripDays)
	}
	for i, day := range p.Days {
		if day.Day != i+1 {
			return fmt.Errorf("plan day %d is numbered %d, expected %d", i, day.Day, i+1)
		}
	}
	if p.Totals == nil {
		return fmt.Errorf("plan is missing totals")
	}
	return nil
}
