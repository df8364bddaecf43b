package entity

import "github.com/google/uuid"

// BasicPlanName is the free fallback plan customers return to when they
// cancel a paid subscription.
const BasicPlanName = "Gratuita"

// MembershipPlan is a subscription tier. Benefits is a comma-joined string
// split into a list at the API boundary.
type MembershipPlan struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DurationDays int       `json:"duration_days"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Benefits     string    `json:"-"` // Exposed through the split list
	RecordState  string    `json:"record_state"`
}
