package models

import (
	"fmt"
	"strings"
	"time"
)

// TripMode selects the cost/emissions trade-off communicated to the planner.
type TripMode string

const (
	// TripModePriceOptimal favors the cheapest viable plan
	TripModePriceOptimal TripMode = "price-optimal"
	// TripModeBalanced balances price against emissions
	TripModeBalanced TripMode = "balanced"
)

// Date is a calendar day serialized as "2006-01-02" in JSON payloads.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate creates a Date for the given year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the date in "2006-01-02" form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// AddDays returns a new Date offset by the given number of days.
func (d Date) AddDays(days int) Date {
	return Date{d.Time.AddDate(0, 0, days)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts null and "" as unset.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TripRequest is the caller-supplied description of the trip to plan.
// Either a start/end date pair or a positive num_days is required; when
// both are supplied the date range wins.
type TripRequest struct {
	Destination         string   `json:"destination" validate:"required"`
	Origin              string   `json:"origin,omitempty"`
	StartDate           Date     `json:"start_date,omitempty"`
	EndDate             Date     `json:"end_date,omitempty"`
	NumDays             int      `json:"num_days,omitempty" validate:"omitempty,gt=0"`
	Budget              float64  `json:"budget" validate:"required,gt=0"`
	Currency            string   `json:"currency,omitempty"`
	Travelers           int      `json:"travelers,omitempty" validate:"omitempty,gt=0"`
	Preferences         []string `json:"preferences,omitempty"`
	Likes               string   `json:"likes,omitempty"`
	Dislikes            string   `json:"dislikes,omitempty"`
	DietaryRestrictions string   `json:"dietary_restrictions,omitempty"`
	Mode                TripMode `json:"mode,omitempty" validate:"omitempty,oneof=price-optimal balanced"`
}

// Normalize fills defaults the validator does not enforce.
func (r *TripRequest) Normalize() {
	if r.Mode == "" {
		r.Mode = TripModeBalanced
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.Travelers <= 0 {
		r.Travelers = 1
	}
	r.Destination = strings.TrimSpace(r.Destination)
	r.Origin = strings.TrimSpace(r.Origin)
}

// HasDateRange reports whether both start and end dates are present.
func (r *TripRequest) HasDateRange() bool {
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// TripDays derives the trip length in days. A complete date range takes
// precedence over num_days and the result is clamped to at least 1.
func (r *TripRequest) TripDays() int {
	if r.HasDateRange() {
		days := int(r.EndDate.Sub(r.StartDate.Time).Hours()/24) + 1
		if days < 1 {
			return 1
		}
		return days
	}
	if r.NumDays > 0 {
		return r.NumDays
	}
	return 1
}

// Window returns the concrete start and end dates of the trip. When only
// num_days is given the window starts leadTimeDays from now.
func (r *TripRequest) Window(now time.Time, leadTimeDays int) (Date, Date) {
	if r.HasDateRange() {
		return r.StartDate, r.EndDate
	}
	start := Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, leadTimeDays)}
	return start, start.AddDays(r.TripDays() - 1)
}
