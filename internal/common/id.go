package common

import (
	"github.com/google/uuid"
)

// NewItineraryID generates a unique itinerary ID with the "itin_" prefix
// Format: itin_<uuid>
func NewItineraryID() string {
	return "itin_" + uuid.New().String()
}

// NewCandidateID generates a unique ID for a provider candidate (flight, lodging)
func NewCandidateID() string {
	return uuid.New().String()
}
