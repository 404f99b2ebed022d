package llm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/fitplan/internal/model"
)

const (
	dietPersona = `You are a professional nutritionist who designs personalized diet plans.
Create a detailed one-week diet plan from the user's information below.
Each day must contain breakfast, lunch, dinner and a snack, with approximate calories and the macronutrient split of every meal.`

	workoutPersona = `You are a professional fitness coach who designs personalized training plans.
Create a detailed one-week workout plan from the user's information below.
Each day must list its exercises with sets, reps and rest time, plus suitable intensity guidance.`

	dietFormat = `Format the plan exactly like this for all seven days, Monday to Sunday:
Monday:
Breakfast: <dish>
Calories: <number> kcal, Protein: <number>g, Carbs: <number>g, Fat: <number>g
Lunch: <dish>
...
Dinner: <dish>
...
Snack: <dish>
...`

	workoutFormat = `Format the plan exactly like this for all seven days, Monday to Sunday:
Monday:
Training type: <type, or Rest>
1. <exercise> - <sets> sets x <reps> reps, rest <seconds> sec
2. <exercise> - ...
Leave a blank line between days.`
)

var goalNames = map[model.Goal]string{
	model.GoalLose:        "lose weight",
	model.GoalMaintain:    "maintain weight",
	model.GoalGain:        "gain weight",
	model.GoalBuildMuscle: "build muscle",
}

var activityNames = map[model.ActivityLevel]string{
	model.Sedentary:  "sedentary",
	model.Light:      "lightly active",
	model.Moderate:   "moderately active",
	model.Active:     "active",
	model.VeryActive: "very active",
}

var restrictionNames = map[model.Restriction]string{
	model.Vegetarian:  "vegetarian",
	model.Vegan:       "vegan",
	model.GlutenFree:  "gluten-free",
	model.LactoseFree: "lactose-free",
	model.NutFree:     "nut-free",
}

func describe[K ~string](names map[K]string, k K) string {
	if n, ok := names[k]; ok {
		return n
	}
	return string(k)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MealPrompt builds the diet request for p.
func MealPrompt(p model.Profile) []Message {
	restrictions := "none"
	if len(p.DietaryRestrictions) > 0 {
		names := make([]string, 0, len(p.DietaryRestrictions))
		for _, r := range p.DietaryRestrictions {
			names = append(names, describe(restrictionNames, r))
		}
		restrictions = strings.Join(names, ", ")
	}

	var b strings.Builder
	b.WriteString("Please create a one-week diet plan for me. My details:\n")
	fmt.Fprintf(&b, "- Sex: %s\n", p.Sex)
	fmt.Fprintf(&b, "- Age: %s\n", num(p.Age))
	fmt.Fprintf(&b, "- Height: %scm\n", num(p.Height))
	fmt.Fprintf(&b, "- Weight: %skg\n", num(p.Weight))
	fmt.Fprintf(&b, "- Goal: %s\n", describe(goalNames, p.Goal))
	fmt.Fprintf(&b, "- Activity level: %s\n", describe(activityNames, p.ActivityLevel))
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n\n", restrictions)
	b.WriteString("Include the food choices, approximate calories and macronutrients of every meal.\n\n")
	b.WriteString(dietFormat)

	return []Message{
		{Role: "system", Content: dietPersona},
		{Role: "user", Content: b.String()},
	}
}

// WorkoutPrompt builds the training request for p.
func WorkoutPrompt(p model.Profile) []Message {
	var b strings.Builder
	b.WriteString("Please create a one-week workout plan for me. My details:\n")
	fmt.Fprintf(&b, "- Sex: %s\n", p.Sex)
	fmt.Fprintf(&b, "- Age: %s\n", num(p.Age))
	fmt.Fprintf(&b, "- Height: %scm\n", num(p.Height))
	fmt.Fprintf(&b, "- Weight: %skg\n", num(p.Weight))
	fmt.Fprintf(&b, "- Goal: %s\n", describe(goalNames, p.Goal))
	fmt.Fprintf(&b, "- Training experience: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Training days per week: %d\n", p.WorkoutDaysPerWeek)
	fmt.Fprintf(&b, "- Session length: %d minutes\n", p.WorkoutDurationMinutes)
	fmt.Fprintf(&b, "- Activity level: %s\n\n", describe(activityNames, p.ActivityLevel))
	b.WriteString("Give the specific exercises, sets, reps and rest times.\n\n")
	b.WriteString(workoutFormat)

	return []Message{
		{Role: "system", Content: workoutPersona},
		{Role: "user", Content: b.String()},
	}
}
