package model

import "strconv"

// Weekday is one of the seven day labels of a weekly plan.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the days in calendar order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Slot is a meal time.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
)

// Slots lists the meal slots in serving order.
var Slots = []Slot{Breakfast, Lunch, Dinner, Snack}

// MealServing is one meal of a day, scaled to its calorie target.
type MealServing struct {
	Name              string  `json:"name"`
	Calories          int     `json:"calories"`
	Protein           int     `json:"protein"`
	Carbs             int     `json:"carbs"`
	Fat               int     `json:"fat"`
	PortionMultiplier float64 `json:"portion_multiplier"`
}

// Portion formats the multiplier to one decimal.
func (m MealServing) Portion() string {
	return strconv.FormatFloat(m.PortionMultiplier, 'f', 1, 64)
}

// NotExtracted is the name used for meals that could not be read from a
// provider reply.
const NotExtracted = "not extracted"

// PlaceholderMeal returns the serving used when nothing could be extracted.
func PlaceholderMeal() MealServing {
	return MealServing{Name: NotExtracted, PortionMultiplier: 1}
}

// DayMeals holds the four meals of one weekday.
type DayMeals struct {
	Day   Weekday              `json:"day"`
	Meals map[Slot]MealServing `json:"meals"`
}

// MealPlan holds seven days in calendar order.
type MealPlan []DayMeals

// NewMealPlan returns a plan with every weekday and slot set to fill().
func NewMealPlan(fill func(Weekday, Slot) MealServing) MealPlan {
	plan := make(MealPlan, 0, len(Weekdays))
	for _, d := range Weekdays {
		day := DayMeals{Day: d, Meals: make(map[Slot]MealServing, len(Slots))}
		for _, s := range Slots {
			day.Meals[s] = fill(d, s)
		}
		plan = append(plan, day)
	}
	return plan
}

// Day returns the meals for d.
func (p MealPlan) Day(d Weekday) (DayMeals, bool) {
	for _, day := range p {
		if day.Day == d {
			return day, true
		}
	}
	return DayMeals{}, false
}

// ExercisePrescription is one exercise with its volume.
type ExercisePrescription struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes,omitempty"`
}

// Workout defaults shared by the catalogue and the reply parser.
const (
	DefaultSets = "3 sets"
	DefaultReps = "10 reps"
	DefaultRest = "60 sec"

	RestType = "rest"
)

// Stretching is the single entry of every rest day.
func Stretching() ExercisePrescription {
	return ExercisePrescription{
		Name:  "Light stretching",
		Sets:  "1",
		Reps:  "5-10 min",
		Rest:  "none",
		Notes: "Gentle stretching and relaxation to aid recovery",
	}
}

// DayWorkout is the session for one weekday.
type DayWorkout struct {
	Day       Weekday                `json:"day"`
	Type      string                 `json:"type"`
	Training  bool                   `json:"training"`
	Exercises []ExercisePrescription `json:"exercises"`
}

// RestDay returns the rest record for d.
func RestDay(d Weekday) DayWorkout {
	return DayWorkout{
		Day:       d,
		Type:      RestType,
		Exercises: []ExercisePrescription{Stretching()},
	}
}

// WorkoutPlan holds seven days in calendar order.
type WorkoutPlan []DayWorkout

// Day returns the workout for d.
func (p WorkoutPlan) Day(d Weekday) (DayWorkout, bool) {
	for _, day := range p {
		if day.Day == d {
			return day, true
		}
	}
	return DayWorkout{}, false
}

// TrainingDays counts the days scheduled for training.
func (p WorkoutPlan) TrainingDays() int {
	n := 0
	for _, day := range p {
		if day.Training {
			n++
		}
	}
	return n
}
