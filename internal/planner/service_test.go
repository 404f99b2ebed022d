package planner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rcliao/fitplan/internal/llm"
	"github.com/rcliao/fitplan/internal/model"
)

// scriptedCompleter answers diet prompts and workout prompts separately.
type scriptedCompleter struct {
	mu         sync.Mutex
	calls      int
	mealText   string
	mealErr    error
	workoutErr error
}

func (s *scriptedCompleter) Complete(_ context.Context, messages []llm.Message) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if strings.Contains(messages[0].Content, "nutritionist") {
		return s.mealText, s.mealErr
	}
	return "Monday:\nTraining type: Legs\n1. Squat - 5 sets x 5 reps\n", s.workoutErr
}

func mealReply() string {
	var b strings.Builder
	for _, d := range model.Weekdays {
		b.WriteString(string(d) + ":\n")
		for _, s := range []string{"Breakfast", "Lunch", "Dinner", "Snack"} {
			b.WriteString(s + ": Rice bowl\nCalories: 500 kcal, Protein: 30g, Carbs: 60g, Fat: 12g\n")
		}
	}
	return b.String()
}

func TestGenerate_Local(t *testing.T) {
	c := &scriptedCompleter{}
	svc := NewService(newTestGenerator(1), llm.NewRequester(c))

	plan := svc.Generate(context.Background(), testProfile(), false)
	if plan.Provenance.Source != model.SourceLocal {
		t.Errorf("expected local source, got %s", plan.Provenance.Source)
	}
	if c.calls != 0 {
		t.Errorf("local generation should not call the provider, got %d calls", c.calls)
	}
}

func TestGenerate_Remote(t *testing.T) {
	c := &scriptedCompleter{mealText: mealReply()}
	svc := NewService(newTestGenerator(1), llm.NewRequester(c))

	plan := svc.Generate(context.Background(), testProfile(), true)
	if c.calls != 2 {
		t.Errorf("expected 2 provider calls, got %d", c.calls)
	}
	pv := plan.Provenance
	if pv.Source != model.SourceRemote || pv.MealStatus != model.StatusOK || pv.WorkoutStatus != model.StatusDegraded {
		t.Errorf("unexpected provenance %+v", pv)
	}
	if pv.MealError != "" || pv.WorkoutError != "" {
		t.Errorf("expected no errors, got %+v", pv)
	}
	if plan.Raw == nil || plan.Raw.MealPlanText != c.mealText {
		t.Fatalf("expected raw meal text to be kept, got %+v", plan.Raw)
	}
	if got := plan.MealPlan[2].Meals[model.Dinner]; got.Name != "Rice bowl" || got.Calories != 500 {
		t.Errorf("unexpected dinner %+v", got)
	}
	monday, _ := plan.WorkoutPlan.Day(model.Monday)
	if monday.Type != "Legs" || len(monday.Exercises) != 1 || monday.Exercises[0].Sets != "5 sets" {
		t.Errorf("unexpected monday %+v", monday)
	}
}

func TestGenerate_OneRequestFails(t *testing.T) {
	c := &scriptedCompleter{mealErr: errors.New("api call failed (429): Rate limit reached")}
	svc := NewService(newTestGenerator(1), llm.NewRequester(c))

	plan := svc.Generate(context.Background(), testProfile(), true)
	pv := plan.Provenance
	if pv.MealStatus != model.StatusDegraded || pv.MealError != "api call failed (429): Rate limit reached" {
		t.Errorf("unexpected meal provenance %+v", pv)
	}
	if !strings.HasPrefix(plan.Raw.MealPlanText, llm.ErrorPrefix) {
		t.Errorf("expected error text, got %q", plan.Raw.MealPlanText)
	}
	if len(plan.MealPlan) != 7 || plan.MealPlan[0].Meals[model.Breakfast] != model.PlaceholderMeal() {
		t.Errorf("expected placeholder meals, got %+v", plan.MealPlan[0])
	}
	if pv.WorkoutError != "" {
		t.Errorf("workout should not be affected, got %q", pv.WorkoutError)
	}
	if monday, _ := plan.WorkoutPlan.Day(model.Monday); monday.Type != "Legs" {
		t.Errorf("workout should still be normalized, got %+v", monday)
	}
}

func TestGenerate_RemoteWithoutProvider(t *testing.T) {
	svc := NewService(newTestGenerator(1), nil)
	plan := svc.Generate(context.Background(), testProfile(), true)
	if plan.Provenance.Source != model.SourceLocal {
		t.Errorf("expected local fallback, got %s", plan.Provenance.Source)
	}
}
