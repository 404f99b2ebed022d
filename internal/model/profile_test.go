package model

import (
	"errors"
	"reflect"
	"testing"
)

func validForm() map[string][]string {
	return map[string][]string{
		"gender":            {"male"},
		"age":               {"30"},
		"height":            {"180"},
		"weight":            {"80"},
		"goal":              {"maintainWeight"},
		"workoutExperience": {"beginner"},
		"activityLevel":     {"moderate"},
		"workoutDays":       {"3"},
		"workoutDuration":   {"45"},
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile(validForm())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Profile{
		Sex: Male, Age: 30, Height: 180, Weight: 80,
		Goal: GoalMaintain, Experience: Beginner, ActivityLevel: Moderate,
		WorkoutDaysPerWeek: 3, WorkoutDurationMinutes: 45,
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestParseProfile_Restrictions(t *testing.T) {
	form := validForm()
	form["dietaryRestrictions"] = []string{"vegan", "glutenFree,vegan", " nutFree "}

	p, err := ParseProfile(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Restriction{GlutenFree, NutFree, Vegan}
	if !reflect.DeepEqual(p.DietaryRestrictions, want) {
		t.Errorf("got %v, want %v", p.DietaryRestrictions, want)
	}
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing age", "age", ""},
		{"zero weight", "weight", "0"},
		{"negative height", "height", "-170"},
		{"not a number", "age", "thirty"},
		{"nan", "weight", "NaN"},
		{"infinite", "height", "Inf"},
		{"unknown sex", "gender", "other"},
		{"unknown goal", "goal", "bulk"},
		{"unknown experience", "workoutExperience", "expert"},
		{"unknown activity", "activityLevel", "couch"},
		{"negative days", "workoutDays", "-1"},
		{"bad duration", "workoutDuration", "long"},
		{"unknown restriction", "dietaryRestrictions", "keto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form[tt.key] = []string{tt.value}
			_, err := ParseProfile(form)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

func TestParseProfile_OptionalCounts(t *testing.T) {
	form := validForm()
	delete(form, "workoutDays")
	delete(form, "workoutDuration")

	p, err := ParseProfile(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.WorkoutDaysPerWeek != 0 || p.WorkoutDurationMinutes != 0 {
		t.Errorf("expected zero defaults, got %d days, %d min", p.WorkoutDaysPerWeek, p.WorkoutDurationMinutes)
	}
}

func TestProfileFormRoundTrip(t *testing.T) {
	form := validForm()
	form["dietaryRestrictions"] = []string{"vegetarian", "lactoseFree"}
	p, err := ParseProfile(form)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	again, err := ParseProfile(p.Form())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(p, again) {
		t.Errorf("round trip changed profile: %+v vs %+v", p, again)
	}
}

func TestNewMealPlanCoversWeek(t *testing.T) {
	plan := NewMealPlan(func(Weekday, Slot) MealServing { return PlaceholderMeal() })
	if len(plan) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan))
	}
	for i, day := range plan {
		if day.Day != Weekdays[i] {
			t.Errorf("day %d: expected %s, got %s", i, Weekdays[i], day.Day)
		}
		if len(day.Meals) != 4 {
			t.Errorf("%s: expected 4 meals, got %d", day.Day, len(day.Meals))
		}
	}
}

func TestPortion(t *testing.T) {
	m := MealServing{PortionMultiplier: 1.2345}
	if got := m.Portion(); got != "1.2" {
		t.Errorf("expected 1.2, got %s", got)
	}
}
