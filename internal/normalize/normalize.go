package normalize

import (
	"log/slog"

	"github.com/rcliao/fitplan/internal/model"
)

// Fallback builds plans when a reply cannot be read at all.
type Fallback interface {
	MealPlan(p model.Profile) model.MealPlan
	WorkoutPlan(p model.Profile) model.WorkoutPlan
}

// Normalizer converts provider replies into plans. It never fails: a panic
// during extraction replaces the whole plan with the fallback's.
type Normalizer struct {
	fallback     Fallback
	parseMeal    func(string) (model.MealPlan, model.Status)
	parseWorkout func(string) (model.WorkoutPlan, model.Status)
}

// New returns a Normalizer that falls back to fallback.
func New(fallback Fallback) *Normalizer {
	return &Normalizer{
		fallback:     fallback,
		parseMeal:    ParseMealPlan,
		parseWorkout: ParseWorkoutPlan,
	}
}

// MealPlan reads text as a meal plan for p.
func (n *Normalizer) MealPlan(text string, p model.Profile) (plan model.MealPlan, status model.Status) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Meal plan extraction failed, using local plan", "panic", r)
			plan, status = n.fallback.MealPlan(p), model.StatusFallback
		}
	}()

	plan, status = n.parseMeal(text)
	if status != model.StatusOK {
		slog.Warn("Meal plan reply incomplete", "status", status, "chars", len(text))
	}
	return plan, status
}

// WorkoutPlan reads text as a workout plan for p.
func (n *Normalizer) WorkoutPlan(text string, p model.Profile) (plan model.WorkoutPlan, status model.Status) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Workout plan extraction failed, using local plan", "panic", r)
			plan, status = n.fallback.WorkoutPlan(p), model.StatusFallback
		}
	}()

	plan, status = n.parseWorkout(text)
	if status != model.StatusOK {
		slog.Warn("Workout plan reply incomplete", "status", status, "chars", len(text))
	}
	return plan, status
}
