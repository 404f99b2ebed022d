// Package energy computes daily calorie targets and their split across meals.
package energy

import (
	"math"

	"github.com/rcliao/fitplan/internal/model"
)

// GoalAdjustment is the fixed daily surplus or deficit applied per goal.
const GoalAdjustment = 500

// activityFactors maps activity levels to their TDEE multiplier.
var activityFactors = map[model.ActivityLevel]float64{
	model.Sedentary:  1.2,
	model.Light:      1.375,
	model.Moderate:   1.55,
	model.Active:     1.725,
	model.VeryActive: 1.9,
}

// SlotPercent is the share of the daily target each meal receives, in
// percent. Kept integral so the shares add up to exactly 100.
var SlotPercent = map[model.Slot]int{
	model.Breakfast: 30,
	model.Lunch:     35,
	model.Dinner:    25,
	model.Snack:     10,
}

// SlotFraction returns the share of the daily target for slot.
func SlotFraction(slot model.Slot) float64 {
	return float64(SlotPercent[slot]) / 100
}

// BMR returns the basal metabolic rate (revised Harris-Benedict).
func BMR(p model.Profile) float64 {
	if p.Sex == model.Male {
		return 88.362 + 13.397*p.Weight + 4.799*p.Height - 5.677*p.Age
	}
	return 447.593 + 9.247*p.Weight + 3.098*p.Height - 4.330*p.Age
}

// ActivityFactor returns the multiplier for level, 1.2 when unrecognized.
func ActivityFactor(level model.ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return 1.2
}

// Adjustment returns the kcal offset for goal.
func Adjustment(goal model.Goal) float64 {
	switch goal {
	case model.GoalLose:
		return -GoalAdjustment
	case model.GoalGain, model.GoalBuildMuscle:
		return GoalAdjustment
	default:
		return 0
	}
}

// DailyTarget returns the daily energy target in kcal. The result is not
// clamped: implausibly small profiles can yield zero or negative targets.
func DailyTarget(p model.Profile) int {
	tdee := BMR(p)*ActivityFactor(p.ActivityLevel) + Adjustment(p.Goal)
	return int(math.Round(tdee))
}

// SlotTargets splits daily into per-meal targets, rounding each independently.
func SlotTargets(daily int) map[model.Slot]int {
	targets := make(map[model.Slot]int, len(SlotPercent))
	for slot := range SlotPercent {
		targets[slot] = int(math.Round(float64(daily) * SlotFraction(slot)))
	}
	return targets
}
