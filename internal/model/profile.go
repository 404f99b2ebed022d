// Package model defines the profile and plan data types.
package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidProfile is returned when a submitted profile cannot be used.
var ErrInvalidProfile = errors.New("invalid profile")

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type Goal string

const (
	GoalLose        Goal = "lose"
	GoalMaintain    Goal = "maintain"
	GoalGain        Goal = "gain"
	GoalBuildMuscle Goal = "buildMuscle"
)

type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Advanced     Experience = "advanced"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

// Restriction is a dietary restriction tag.
type Restriction string

const (
	Vegetarian  Restriction = "vegetarian"
	Vegan       Restriction = "vegan"
	GlutenFree  Restriction = "glutenFree"
	LactoseFree Restriction = "lactoseFree"
	NutFree     Restriction = "nutFree"
)

// ValidSexes are the accepted sex values.
var ValidSexes = map[Sex]bool{
	Male:   true,
	Female: true,
}

// ValidGoals are the accepted goals.
var ValidGoals = map[Goal]bool{
	GoalLose:        true,
	GoalMaintain:    true,
	GoalGain:        true,
	GoalBuildMuscle: true,
}

// goalAliases maps the long form values onto goals.
var goalAliases = map[string]Goal{
	"loseWeight":     GoalLose,
	"maintainWeight": GoalMaintain,
	"gainWeight":     GoalGain,
}

// ValidExperience are the accepted experience levels.
var ValidExperience = map[Experience]bool{
	Beginner:     true,
	Intermediate: true,
	Advanced:     true,
}

// ValidActivityLevels are the accepted activity levels.
var ValidActivityLevels = map[ActivityLevel]bool{
	Sedentary:  true,
	Light:      true,
	Moderate:   true,
	Active:     true,
	VeryActive: true,
}

// ValidRestrictions are the accepted dietary restriction tags.
var ValidRestrictions = map[Restriction]bool{
	Vegetarian:  true,
	Vegan:       true,
	GlutenFree:  true,
	LactoseFree: true,
	NutFree:     true,
}

// Profile is the intake data a plan is generated from. It is read-only once
// parsed.
type Profile struct {
	Sex                    Sex           `json:"sex"`
	Age                    float64       `json:"age"`
	Height                 float64       `json:"height"` // cm
	Weight                 float64       `json:"weight"` // kg
	Goal                   Goal          `json:"goal"`
	Experience             Experience    `json:"experience"`
	ActivityLevel          ActivityLevel `json:"activity_level"`
	WorkoutDaysPerWeek     int           `json:"workout_days_per_week"`
	WorkoutDurationMinutes int           `json:"workout_duration_minutes"`
	DietaryRestrictions    []Restriction `json:"dietary_restrictions,omitempty"`
}

// Form keys accepted by ParseProfile.
const (
	KeySex          = "sex"
	KeyGender       = "gender"
	KeyAge          = "age"
	KeyHeight       = "height"
	KeyWeight       = "weight"
	KeyGoal         = "goal"
	KeyExperience   = "workoutExperience"
	KeyActivity     = "activityLevel"
	KeyWorkoutDays  = "workoutDays"
	KeyDuration     = "workoutDuration"
	KeyRestrictions = "dietaryRestrictions"
)

// ParseProfile builds a Profile from a flat form mapping. Every key holds a
// single value except dietaryRestrictions, which may repeat.
func ParseProfile(form map[string][]string) (Profile, error) {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v := form[k]; len(v) > 0 {
				return strings.TrimSpace(v[0])
			}
		}
		return ""
	}

	var p Profile
	var err error

	p.Sex = Sex(get(KeySex, KeyGender))
	if !ValidSexes[p.Sex] {
		return Profile{}, fmt.Errorf("%w: sex %q (valid: male, female)", ErrInvalidProfile, p.Sex)
	}

	if p.Age, err = positive(KeyAge, get(KeyAge)); err != nil {
		return Profile{}, err
	}
	if p.Height, err = positive(KeyHeight, get(KeyHeight)); err != nil {
		return Profile{}, err
	}
	if p.Weight, err = positive(KeyWeight, get(KeyWeight)); err != nil {
		return Profile{}, err
	}

	p.Goal = Goal(get(KeyGoal))
	if g, ok := goalAliases[string(p.Goal)]; ok {
		p.Goal = g
	}
	if !ValidGoals[p.Goal] {
		return Profile{}, fmt.Errorf("%w: goal %q", ErrInvalidProfile, p.Goal)
	}

	p.Experience = Experience(get(KeyExperience, "experience"))
	if !ValidExperience[p.Experience] {
		return Profile{}, fmt.Errorf("%w: experience %q", ErrInvalidProfile, p.Experience)
	}

	p.ActivityLevel = ActivityLevel(get(KeyActivity))
	if !ValidActivityLevels[p.ActivityLevel] {
		return Profile{}, fmt.Errorf("%w: activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}

	if p.WorkoutDaysPerWeek, err = count(KeyWorkoutDays, get(KeyWorkoutDays)); err != nil {
		return Profile{}, err
	}
	if p.WorkoutDurationMinutes, err = count(KeyDuration, get(KeyDuration)); err != nil {
		return Profile{}, err
	}

	seen := make(map[Restriction]bool)
	for _, raw := range form[KeyRestrictions] {
		for _, r := range strings.Split(raw, ",") {
			tag := Restriction(strings.TrimSpace(r))
			if tag == "" || seen[tag] {
				continue
			}
			if !ValidRestrictions[tag] {
				return Profile{}, fmt.Errorf("%w: dietary restriction %q", ErrInvalidProfile, tag)
			}
			seen[tag] = true
			p.DietaryRestrictions = append(p.DietaryRestrictions, tag)
		}
	}
	sort.Slice(p.DietaryRestrictions, func(i, j int) bool {
		return p.DietaryRestrictions[i] < p.DietaryRestrictions[j]
	})

	return p, nil
}

// Form renders the profile back into the flat mapping ParseProfile reads.
func (p Profile) Form() map[string][]string {
	form := map[string][]string{
		KeySex:         {string(p.Sex)},
		KeyAge:         {formatNumber(p.Age)},
		KeyHeight:      {formatNumber(p.Height)},
		KeyWeight:      {formatNumber(p.Weight)},
		KeyGoal:        {string(p.Goal)},
		KeyExperience:  {string(p.Experience)},
		KeyActivity:    {string(p.ActivityLevel)},
		KeyWorkoutDays: {strconv.Itoa(p.WorkoutDaysPerWeek)},
		KeyDuration:    {strconv.Itoa(p.WorkoutDurationMinutes)},
	}
	for _, r := range p.DietaryRestrictions {
		form[KeyRestrictions] = append(form[KeyRestrictions], string(r))
	}
	return form
}

func positive(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number, got %q", ErrInvalidProfile, field, raw)
	}
	return v, nil
}

func count(field, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number, got %q", ErrInvalidProfile, field, raw)
	}
	return int(v), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
