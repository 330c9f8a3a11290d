package domain

import "time"

// Profile is a stored user record: the calculator inputs plus the
// scheduling/equipment preferences the plan generators need.
type Profile struct {
	ID              string    `json:"id"`
	UserMetrics               // embedded calculator inputs
	WeeklyFrequency int       `json:"weeklyFrequency"`
	Equipment       []string  `json:"equipment,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
