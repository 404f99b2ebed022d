package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rcliao/fitplan/internal/model"
)

type fakeCompleter struct {
	text string
	err  error
	got  [][]Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	f.got = append(f.got, messages)
	return f.text, f.err
}

var testProfile = model.Profile{
	Sex: model.Female, Age: 28, Height: 165, Weight: 58.5,
	Goal: model.GoalLose, Experience: model.Beginner, ActivityLevel: model.Light,
	WorkoutDaysPerWeek: 4, WorkoutDurationMinutes: 45,
	DietaryRestrictions: []model.Restriction{model.GlutenFree, model.Vegetarian},
}

func TestRequester_Success(t *testing.T) {
	f := &fakeCompleter{text: "Monday:\nBreakfast: Oats"}
	r := NewRequester(f)

	reply := r.MealPlan(context.Background(), testProfile)
	if reply.Failed() {
		t.Fatalf("unexpected failure: %v", reply.Err)
	}
	if reply.Text != f.text {
		t.Errorf("expected %q, got %q", f.text, reply.Text)
	}
}

func TestRequester_FailureBecomesText(t *testing.T) {
	f := &fakeCompleter{err: errors.New("api call failed (401): bad key")}
	r := NewRequester(f)

	reply := r.WorkoutPlan(context.Background(), testProfile)
	if !reply.Failed() {
		t.Fatal("expected failed reply")
	}
	if reply.Text != "generation error: api call failed (401): bad key" {
		t.Errorf("unexpected text %q", reply.Text)
	}
}

func TestMealPrompt(t *testing.T) {
	msgs := MealPrompt(testProfile)
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("expected system and user turns, got %+v", msgs)
	}
	user := msgs[1].Content
	for _, want := range []string{"Sex: female", "Age: 28", "Height: 165cm", "Weight: 58.5kg", "Goal: lose weight", "Activity level: lightly active", "gluten-free, vegetarian", "Breakfast:", "Protein:"} {
		if !strings.Contains(user, want) {
			t.Errorf("meal prompt missing %q", want)
		}
	}

	noRestrictions := testProfile
	noRestrictions.DietaryRestrictions = nil
	if !strings.Contains(MealPrompt(noRestrictions)[1].Content, "Dietary restrictions: none") {
		t.Error("expected 'none' when there are no restrictions")
	}
}

func TestWorkoutPrompt(t *testing.T) {
	msgs := WorkoutPrompt(testProfile)
	user := msgs[1].Content
	for _, want := range []string{"Training experience: beginner", "Training days per week: 4", "Session length: 45 minutes", "Training type:"} {
		if !strings.Contains(user, want) {
			t.Errorf("workout prompt missing %q", want)
		}
	}
	if strings.Contains(user, "Dietary restrictions") {
		t.Error("workout prompt should not mention dietary restrictions")
	}
}
