// Package export renders generated plans as plain-text documents.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/fitplan/internal/model"
)

// Document is a plan together with the profile it was built for. It is the
// JSON shape the CLI prints and reads back.
type Document struct {
	SubmissionID string        `json:"submission_id,omitempty"`
	Profile      model.Profile `json:"profile"`
	Plan         model.Plan    `json:"plan"`
}

// printer keeps the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// WriteText writes doc as a readable weekly plan.
func WriteText(w io.Writer, doc Document) error {
	p := &printer{w: w}

	p.printf("Fitness plan\n\n")
	writeProfile(p, doc.Profile)

	pv := doc.Plan.Provenance
	p.printf("Source: %s (meals %s, workouts %s)\n", pv.Source, pv.MealStatus, pv.WorkoutStatus)
	if pv.MealError != "" {
		p.printf("Meal request error: %s\n", pv.MealError)
	}
	if pv.WorkoutError != "" {
		p.printf("Workout request error: %s\n", pv.WorkoutError)
	}

	p.printf("\nWeekly meal plan\n\n")
	for _, day := range doc.Plan.MealPlan {
		p.printf("%s:\n", day.Day)
		for _, slot := range model.Slots {
			m, ok := day.Meals[slot]
			if !ok {
				continue
			}
			p.printf("  %s: %s (x%s)\n", title(string(slot)), m.Name, m.Portion())
			p.printf("  Calories: %d kcal | Protein: %dg | Carbs: %dg | Fat: %dg\n", m.Calories, m.Protein, m.Carbs, m.Fat)
		}
		p.printf("\n")
	}

	p.printf("Weekly workout plan\n\n")
	for _, day := range doc.Plan.WorkoutPlan {
		p.printf("%s - %s:\n", day.Day, day.Type)
		for _, ex := range day.Exercises {
			p.printf("  %s\n", ex.Name)
			p.printf("  Sets: %s | Reps: %s | Rest: %s\n", ex.Sets, ex.Reps, ex.Rest)
			if ex.Notes != "" {
				p.printf("  Notes: %s\n", ex.Notes)
			}
		}
		p.printf("\n")
	}

	if raw := doc.Plan.Raw; raw != nil {
		p.printf("Provider reply (meals)\n\n%s\n\n", strings.TrimSpace(raw.MealPlanText))
		p.printf("Provider reply (workouts)\n\n%s\n", strings.TrimSpace(raw.WorkoutPlanText))
	}
	return p.err
}

func writeProfile(p *printer, pr model.Profile) {
	p.printf("Profile:\n")
	p.printf("  Sex: %s\n", pr.Sex)
	p.printf("  Age: %g\n", pr.Age)
	p.printf("  Height: %g cm\n", pr.Height)
	p.printf("  Weight: %g kg\n", pr.Weight)
	p.printf("  Goal: %s\n", pr.Goal)
	p.printf("  Experience: %s\n", pr.Experience)
	p.printf("  Activity level: %s\n", pr.ActivityLevel)
	p.printf("  Workout days per week: %d\n", pr.WorkoutDaysPerWeek)
	p.printf("  Workout duration: %d min\n", pr.WorkoutDurationMinutes)
	restrictions := "none"
	if len(pr.DietaryRestrictions) > 0 {
		names := make([]string, len(pr.DietaryRestrictions))
		for i, r := range pr.DietaryRestrictions {
			names[i] = string(r)
		}
		restrictions = strings.Join(names, ", ")
	}
	p.printf("  Dietary restrictions: %s\n\n", restrictions)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
