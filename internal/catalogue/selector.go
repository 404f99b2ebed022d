// Package catalogue holds the fixed meal and exercise tables and picks
// entries from them for a profile.
package catalogue

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/prescription"
)

// Selector draws random catalogue entries. It is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a selector drawing from rng. A nil rng uses a
// time-seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// SelectMeal picks a meal for slot that satisfies every restriction and scales
// it to target kcal. When no entry satisfies the restrictions the whole slot
// catalogue is used instead.
func (s *Selector) SelectMeal(slot model.Slot, target int, restrictions []model.Restriction) model.MealServing {
	all := meals[slot]
	if len(all) == 0 {
		return model.PlaceholderMeal()
	}

	var candidates []MealEntry
	for _, m := range all {
		if m.Satisfies(restrictions) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}

	m := candidates[s.intn(len(candidates))]
	return Scale(m, target)
}

// Scale sizes m to target kcal. Each nutrient is rounded on its own.
func Scale(m MealEntry, target int) model.MealServing {
	mult := float64(target) / float64(m.BaseCalories)
	return model.MealServing{
		Name:              m.Name,
		Calories:          round(float64(m.BaseCalories) * mult),
		Protein:           round(float64(m.Protein) * mult),
		Carbs:             round(float64(m.Carbs) * mult),
		Fat:               round(float64(m.Fat) * mult),
		PortionMultiplier: mult,
	}
}

// ExerciseCount returns how many exercises fit a session of the given
// length, capped at available.
func ExerciseCount(minutes, available int) int {
	n := 3
	switch {
	case minutes >= 60:
		n = 5
	case minutes >= 45:
		n = 4
	}
	return min(n, available)
}

// SelectExercises picks distinct exercises from category for the level and
// session length. An unknown category yields an empty slice.
func (s *Selector) SelectExercises(category string, level model.Experience, minutes int) []model.ExercisePrescription {
	pool := Exercises(category)
	n := ExerciseCount(minutes, len(pool))

	out := make([]model.ExercisePrescription, 0, n)
	for i := 0; i < n; i++ {
		j := s.intn(len(pool))
		e := pool[j]
		pool = append(pool[:j], pool[j+1:]...)

		text := e.Prescription(level)
		tok := prescription.Parse(text)
		out = append(out, model.ExercisePrescription{
			Name:  e.Name,
			Sets:  tok.Sets,
			Reps:  tok.Reps,
			Rest:  model.DefaultRest,
			Notes: text,
		})
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
