package catalogue

import (
	"slices"
	"sort"

	"github.com/rcliao/fitplan/internal/model"
)

// Workout categories.
const (
	Cardio         = "cardio"
	HIIT           = "HIIT"
	FullBody       = "full-body strength"
	ChestTriceps   = "chest & triceps"
	BackBiceps     = "back & biceps"
	LegsShoulders  = "legs & shoulders"
	Core           = "core"
	Flexibility    = "flexibility"
	ChestShoulders = "chest & shoulders"
	BackArms       = "back & arms"
	Legs           = "legs"
)

// ExerciseEntry is a catalogue exercise with one prescription per level.
type ExerciseEntry struct {
	Name         string
	Beginner     string
	Intermediate string
	Advanced     string
}

// Prescription returns the text for level. Unknown levels get the advanced
// prescription.
func (e ExerciseEntry) Prescription(level model.Experience) string {
	switch level {
	case model.Beginner:
		return e.Beginner
	case model.Intermediate:
		return e.Intermediate
	default:
		return e.Advanced
	}
}

var (
	squat         = ExerciseEntry{"Squat", "3 sets, 10 reps", "4 sets, 12 reps", "5 sets, 15 reps"}
	deadlift      = ExerciseEntry{"Deadlift", "3 sets, 8 reps", "4 sets, 10 reps", "5 sets, 12 reps"}
	row           = ExerciseEntry{"Bent-over row", "3 sets, 10 reps", "4 sets, 12 reps", "5 sets, 15 reps"}
	pushUp        = ExerciseEntry{"Push-up", "3 sets, 8 reps", "4 sets, 10 reps", "5 sets, 15 reps"}
	plank         = ExerciseEntry{"Plank", "3 sets, 30 sec", "3 sets, 45 sec", "3 sets, 60 sec"}
	benchPress    = ExerciseEntry{"Bench press", "3 sets, 8 reps", "4 sets, 10 reps", "5 sets, 12 reps"}
	dumbbellFly   = ExerciseEntry{"Dumbbell fly", "3 sets, 10 reps", "4 sets, 12 reps", "4 sets, 15 reps"}
	pushdown      = ExerciseEntry{"Cable pushdown", "3 sets, 10 reps", "4 sets, 12 reps", "4 sets, 15 reps"}
	closePushUp   = ExerciseEntry{"Close-grip push-up", "3 sets, 8 reps", "3 sets, 10 reps", "4 sets, 12 reps"}
	pullUp        = ExerciseEntry{"Pull-up", "3 sets, 5 reps", "4 sets, 8 reps", "5 sets, 10 reps"}
	curl          = ExerciseEntry{"Dumbbell curl", "3 sets, 10 reps", "4 sets, 12 reps", "4 sets, 15 reps"}
	overheadPress = ExerciseEntry{"Overhead press", "3 sets, 8 reps", "4 sets, 10 reps", "4 sets, 12 reps"}
	lateralRaise  = ExerciseEntry{"Lateral raise", "3 sets, 10 reps", "3 sets, 12 reps", "4 sets, 15 reps"}
	legPress      = ExerciseEntry{"Leg press", "3 sets, 10 reps", "4 sets, 12 reps", "4 sets, 15 reps"}
)

func interval(name string) ExerciseEntry {
	return ExerciseEntry{name, "30 sec work, 30 sec rest", "40 sec work, 20 sec rest", "45 sec work, 15 sec rest"}
}

var exercises = map[string][]ExerciseEntry{
	Cardio: {
		{"Running", "20 min, moderate intensity", "30 min, moderate to high intensity", "45 min, high-intensity intervals"},
		{"Elliptical", "20 min, low intensity", "30 min, moderate intensity", "40 min, high-intensity intervals"},
		{"Spin bike", "15 min, low intensity", "25 min, moderate intensity", "40 min, high-intensity intervals"},
		{"Rowing machine", "10 min, low intensity", "20 min, moderate intensity", "30 min, high-intensity intervals"},
	},
	HIIT: {
		interval("High knees"),
		interval("Burpees"),
		interval("Jump squats"),
		interval("Mountain climbers"),
		interval("Push-ups"),
	},
	FullBody:     {squat, pushUp, deadlift, row, plank},
	ChestTriceps: {benchPress, pushUp, dumbbellFly, pushdown, closePushUp},
	BackBiceps: {
		pullUp,
		row,
		{"Reverse fly", "3 sets, 10 reps", "4 sets, 12 reps", "4 sets, 15 reps"},
		curl,
		{"Hammer curl", "3 sets, 10 reps", "3 sets, 12 reps", "4 sets, 15 reps"},
	},
	LegsShoulders: {squat, deadlift, overheadPress, lateralRaise, legPress},
	Core: {
		plank,
		{"Crunch", "3 sets, 12 reps", "3 sets, 15 reps", "4 sets, 20 reps"},
		{"Russian twist", "3 sets, 10 reps/side", "3 sets, 15 reps/side", "4 sets, 20 reps/side"},
		{"Mountain climbers", "3 sets, 30 sec", "3 sets, 45 sec", "3 sets, 60 sec"},
		{"Dead bug", "3 sets, 10 reps/side", "3 sets, 15 reps/side", "3 sets, 20 reps/side"},
	},
	Flexibility: {
		{"Yoga flow", "20 min, basic poses", "30 min, intermediate poses", "45 min, advanced poses"},
		{"Dynamic stretching", "15 min, full body", "20 min, full body", "30 min, full body"},
		{"Static stretching", "15 min, major muscle groups", "20 min, full body", "30 min, deep stretch"},
	},
	ChestShoulders: {
		benchPress,
		overheadPress,
		dumbbellFly,
		lateralRaise,
		{"Front raise", "3 sets, 10 reps", "3 sets, 12 reps", "4 sets, 15 reps"},
	},
	BackArms: {pullUp, row, curl, pushdown, closePushUp},
	Legs: {
		squat,
		deadlift,
		legPress,
		{"Leg curl", "3 sets, 10 reps", "3 sets, 12 reps", "4 sets, 15 reps"},
		{"Calf raise", "3 sets, 15 reps", "4 sets, 15 reps", "4 sets, 20 reps"},
	},
}

// Exercises returns a copy of the catalogue for category, nil when the
// category is unknown.
func Exercises(category string) []ExerciseEntry {
	return slices.Clone(exercises[category])
}

// Categories lists the known workout categories, sorted.
func Categories() []string {
	names := make([]string, 0, len(exercises))
	for name := range exercises {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
