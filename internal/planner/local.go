// Package planner builds weekly meal and workout plans, either locally from
// the catalogue or through a chat-completion provider.
package planner

import (
	"log/slog"

	"github.com/rcliao/fitplan/internal/catalogue"
	"github.com/rcliao/fitplan/internal/energy"
	"github.com/rcliao/fitplan/internal/model"
)

// goalCategories maps each goal to the category of each weekday. The last
// slot is always rest.
var goalCategories = map[model.Goal][]string{
	model.GoalLose: {
		catalogue.Cardio, catalogue.FullBody, catalogue.HIIT,
		catalogue.Cardio, catalogue.FullBody, catalogue.HIIT,
		model.RestType,
	},
	model.GoalBuildMuscle: {
		catalogue.ChestTriceps, catalogue.BackBiceps, catalogue.LegsShoulders,
		catalogue.ChestTriceps, catalogue.BackBiceps, catalogue.LegsShoulders,
		model.RestType,
	},
	model.GoalMaintain: {
		catalogue.FullBody, catalogue.Cardio, catalogue.Core,
		catalogue.FullBody, catalogue.Cardio, catalogue.Flexibility,
		model.RestType,
	},
	model.GoalGain: {
		catalogue.ChestShoulders, catalogue.BackArms, catalogue.Legs,
		catalogue.ChestShoulders, catalogue.BackArms, catalogue.Legs,
		model.RestType,
	},
}

// Categories returns the weekly category sequence for goal. Goals without a
// sequence of their own use the gain sequence.
func Categories(goal model.Goal) []string {
	seq, ok := goalCategories[goal]
	if !ok {
		seq = goalCategories[model.GoalGain]
	}
	return append([]string(nil), seq...)
}

// TrainingDays clamps the requested number of training days to a week.
func TrainingDays(requested int) int {
	return max(0, min(requested, len(model.Weekdays)))
}

// Generator builds plans from the catalogue.
type Generator struct {
	selector *catalogue.Selector
}

// NewGenerator returns a Generator drawing from selector.
func NewGenerator(selector *catalogue.Selector) *Generator {
	if selector == nil {
		selector = catalogue.NewSelector(nil)
	}
	return &Generator{selector: selector}
}

// MealPlan builds seven days of meals sized to the profile's energy target.
func (g *Generator) MealPlan(p model.Profile) model.MealPlan {
	daily := energy.DailyTarget(p)
	if daily <= 0 {
		slog.Warn("Daily energy target is not positive", "target", daily, "age", p.Age, "height", p.Height, "weight", p.Weight)
	}
	targets := energy.SlotTargets(daily)

	return model.NewMealPlan(func(_ model.Weekday, slot model.Slot) model.MealServing {
		return g.selector.SelectMeal(slot, targets[slot], p.DietaryRestrictions)
	})
}

// WorkoutPlan schedules the first N weekdays as training days and the rest as
// rest days.
func (g *Generator) WorkoutPlan(p model.Profile) model.WorkoutPlan {
	n := TrainingDays(p.WorkoutDaysPerWeek)
	categories := Categories(p.Goal)

	plan := make(model.WorkoutPlan, 0, len(model.Weekdays))
	for i, day := range model.Weekdays {
		if i >= n {
			plan = append(plan, model.RestDay(day))
			continue
		}

		exercises := g.selector.SelectExercises(categories[i], p.Experience, p.WorkoutDurationMinutes)
		if len(exercises) == 0 {
			exercises = []model.ExercisePrescription{model.Stretching()}
		}
		plan = append(plan, model.DayWorkout{
			Day:       day,
			Type:      categories[i],
			Training:  true,
			Exercises: exercises,
		})
	}
	return plan
}

// Plan builds a complete local plan.
func (g *Generator) Plan(p model.Profile) model.Plan {
	return model.Plan{
		MealPlan:    g.MealPlan(p),
		WorkoutPlan: g.WorkoutPlan(p),
		Provenance: model.Provenance{
			Source:        model.SourceLocal,
			MealStatus:    model.StatusOK,
			WorkoutStatus: model.StatusOK,
		},
	}
}
