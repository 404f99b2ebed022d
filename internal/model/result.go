package model

// Source tells which path produced a plan.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Status describes how much of a plan came from where it was meant to.
type Status string

const (
	// StatusOK means every day was produced by the intended path.
	StatusOK Status = "ok"
	// StatusDegraded means some days or slots hold placeholder values.
	StatusDegraded Status = "degraded"
	// StatusFallback means the local generator replaced the whole plan.
	StatusFallback Status = "fallback"
)

// RawProviderText keeps the unparsed provider replies.
type RawProviderText struct {
	MealPlanText    string `json:"meal_plan_text"`
	WorkoutPlanText string `json:"workout_plan_text"`
}

// Provenance records the path and fallbacks taken for a plan.
type Provenance struct {
	Source        Source `json:"source"`
	MealStatus    Status `json:"meal_status"`
	WorkoutStatus Status `json:"workout_status"`
	MealError     string `json:"meal_error,omitempty"`
	WorkoutError  string `json:"workout_error,omitempty"`
}

// Plan is the unit of output of one generation request.
type Plan struct {
	MealPlan    MealPlan         `json:"meal_plan"`
	WorkoutPlan WorkoutPlan      `json:"workout_plan"`
	Raw         *RawProviderText `json:"raw_provider_text,omitempty"`
	Provenance  Provenance       `json:"provenance"`
}
