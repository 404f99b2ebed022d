package normalize

import (
	"reflect"
	"testing"

	"github.com/rcliao/fitplan/internal/model"
)

const workoutReply = `Monday:
Training type: Chest & Triceps
1. Bench press - 4 sets x 8-10 reps, rest 90 sec
2. Incline dumbbell press: 3 sets, 12 reps
3. Tricep dips
   keep elbows tucked

Tuesday:
Training type: Rest
Light walk if you feel like it.

周三：
1、深蹲 4组 12次
2) Plank - 3 sets of 45 seconds
`

func TestParseWorkoutPlan(t *testing.T) {
	plan, status := ParseWorkoutPlan(workoutReply)
	if status != model.StatusDegraded {
		t.Errorf("expected degraded with four days missing, got %s", status)
	}
	if len(plan) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan))
	}

	monday, _ := plan.Day(model.Monday)
	if monday.Type != "Chest & Triceps" || !monday.Training {
		t.Errorf("unexpected monday header %+v", monday)
	}
	wantMonday := []model.ExercisePrescription{
		{Name: "Bench press", Sets: "4 sets", Reps: "8-10 reps", Rest: "60 sec", Notes: "Bench press - 4 sets x 8-10 reps, rest 90 sec"},
		{Name: "Incline dumbbell press", Sets: "3 sets", Reps: "12 reps", Rest: "60 sec", Notes: "Incline dumbbell press: 3 sets, 12 reps"},
		{Name: "Tricep dips keep elbows tucked", Sets: "3 sets", Reps: "10 reps", Rest: "60 sec", Notes: "Tricep dips keep elbows tucked"},
	}
	if !reflect.DeepEqual(monday.Exercises, wantMonday) {
		t.Errorf("monday exercises:\ngot  %+v\nwant %+v", monday.Exercises, wantMonday)
	}

	tuesday, _ := plan.Day(model.Tuesday)
	if !reflect.DeepEqual(tuesday, model.RestDay(model.Tuesday)) {
		t.Errorf("expected tuesday rest day, got %+v", tuesday)
	}

	wednesday, _ := plan.Day(model.Wednesday)
	if wednesday.Type != DefaultWorkoutType {
		t.Errorf("expected default type, got %q", wednesday.Type)
	}
	if len(wednesday.Exercises) != 2 {
		t.Fatalf("expected 2 wednesday exercises, got %+v", wednesday.Exercises)
	}
	if ex := wednesday.Exercises[0]; ex.Sets != "4 sets" || ex.Reps != "12 reps" {
		t.Errorf("unexpected squat volume %+v", ex)
	}
	if ex := wednesday.Exercises[1]; ex.Name != "Plank" || ex.Sets != "3 sets" || ex.Reps != "45 sec" {
		t.Errorf("unexpected plank %+v", ex)
	}

	for _, d := range []model.Weekday{model.Thursday, model.Friday, model.Saturday, model.Sunday} {
		day, _ := plan.Day(d)
		if !reflect.DeepEqual(day, model.RestDay(d)) {
			t.Errorf("%s: expected rest day, got %+v", d, day)
		}
	}
}

func TestParseWorkoutPlan_Unparsable(t *testing.T) {
	plan, status := ParseWorkoutPlan("generation error: chat request failed: connection refused")
	if status != model.StatusDegraded {
		t.Errorf("expected degraded, got %s", status)
	}
	if plan.TrainingDays() != 0 {
		t.Errorf("expected all rest days, got %d training days", plan.TrainingDays())
	}
}

func TestExtractWorkoutDay_NoItems(t *testing.T) {
	text := "Go for a 30 minute easy run."
	day := ExtractWorkoutDay(model.Thursday, text)
	if !day.Training || day.Type != DefaultWorkoutType {
		t.Errorf("unexpected header %+v", day)
	}
	want := []model.ExercisePrescription{{
		Name: model.NotExtracted, Sets: "3 sets", Reps: "10 reps", Rest: "60 sec", Notes: text,
	}}
	if !reflect.DeepEqual(day.Exercises, want) {
		t.Errorf("got %+v, want %+v", day.Exercises, want)
	}
}

func TestExtractWorkoutDay_Empty(t *testing.T) {
	if day := ExtractWorkoutDay(model.Friday, "  \n"); !reflect.DeepEqual(day, model.RestDay(model.Friday)) {
		t.Errorf("expected rest day, got %+v", day)
	}
}

func TestExtractWorkoutDay_ChineseRest(t *testing.T) {
	day := ExtractWorkoutDay(model.Sunday, "训练类型：休息日\n适当散步")
	if day.Training || day.Type != model.RestType {
		t.Errorf("expected rest day, got %+v", day)
	}
}

func TestNumberedItems_DecimalsAreNotMarkers(t *testing.T) {
	items := numberedItems("1. Jog\n1.5 km at easy pace\n2. Walk")
	want := []string{"Jog 1.5 km at easy pace", "Walk"}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("got %q, want %q", items, want)
	}
}
