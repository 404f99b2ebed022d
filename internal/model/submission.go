package model

import "time"

// Submission is one recorded plan request: the profile and how its plan was
// produced. The plan itself is not kept.
type Submission struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	Profile    Profile    `json:"profile"`
	Provenance Provenance `json:"provenance"`
}

// Degraded reports whether either half of the plan left its intended path.
func (s Submission) Degraded() bool {
	return s.Provenance.MealStatus != StatusOK || s.Provenance.WorkoutStatus != StatusOK
}
