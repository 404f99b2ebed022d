package normalize

import (
	"regexp"
	"strings"

	"github.com/rcliao/fitplan/internal/model"
	"github.com/rcliao/fitplan/internal/prescription"
)

// DefaultWorkoutType is used for training days without a type line.
const DefaultWorkoutType = "full-body"

var (
	typeLineRegex  = regexp.MustCompile(`(?im)^[ \t*_#-]*(?:training type|workout type|训练类型|训练类别)[ \t*_]*[:：][ \t*_]*(.*)$`)
	restTypeRegex  = regexp.MustCompile(`(?i)^(?:rest|rest day|recovery)\b`)
	itemStartRegex = regexp.MustCompile(`^\s*[*_]*\d+[.)、]\s*(.*)$`)
	decimalRegex   = regexp.MustCompile(`^\s*\d+\.\d`)
	nameSepRegex   = regexp.MustCompile(`\s+[-–—]\s+|[:：,，(（]`)
)

// ExtractWorkoutDay reads one weekday's text. An empty segment is a rest day.
// A segment with no numbered items keeps its text as the notes of a single
// placeholder exercise.
func ExtractWorkoutDay(d model.Weekday, text string) model.DayWorkout {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.RestDay(d)
	}

	typ := DefaultWorkoutType
	if m := typeLineRegex.FindStringSubmatch(text); m != nil {
		if t := strings.TrimSpace(strings.Trim(m[1], "*_ ")); t != "" {
			typ = t
		}
	}

	items := numberedItems(text)
	if isRest(typ) && len(items) == 0 {
		return model.RestDay(d)
	}

	day := model.DayWorkout{Day: d, Type: typ, Training: true}
	for _, item := range items {
		tok := prescription.Parse(item)
		day.Exercises = append(day.Exercises, model.ExercisePrescription{
			Name:  exerciseName(item),
			Sets:  tok.Sets,
			Reps:  tok.Reps,
			Rest:  model.DefaultRest,
			Notes: item,
		})
	}
	if len(day.Exercises) == 0 {
		day.Exercises = []model.ExercisePrescription{{
			Name:  model.NotExtracted,
			Sets:  model.DefaultSets,
			Reps:  model.DefaultReps,
			Rest:  model.DefaultRest,
			Notes: text,
		}}
	}
	return day
}

func isRest(typ string) bool {
	// \b does not bound CJK text, so match Chinese words by prefix.
	return restTypeRegex.MatchString(typ) || strings.HasPrefix(typ, "休息")
}

// numberedItems collects "1." "1、" "1)" items. An item runs until the next
// numbered line or a blank line.
func numberedItems(text string) []string {
	var items []string
	var current []string
	open := false

	flush := func() {
		if t := strings.TrimSpace(strings.Join(current, " ")); t != "" {
			items = append(items, t)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := itemStartRegex.FindStringSubmatch(line); m != nil && !decimalRegex.MatchString(line) {
			flush()
			current = append(current, strings.TrimSpace(m[1]))
			open = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			open = false
			continue
		}
		if open {
			current = append(current, strings.TrimSpace(line))
		}
	}
	flush()
	return items
}

// exerciseName is the item text before its first separator.
func exerciseName(item string) string {
	name := item
	if loc := nameSepRegex.FindStringIndex(item); loc != nil && loc[0] > 0 {
		name = item[:loc[0]]
	}
	name = strings.TrimSpace(strings.Trim(name, "*_ "))
	if name == "" {
		return item
	}
	return name
}

// ParseWorkoutPlan reads a seven-day workout plan. Days that cannot be found
// are rest days; the status is ok only when every day was found.
func ParseWorkoutPlan(text string) (model.WorkoutPlan, model.Status) {
	days := daySegmenter.Segment(text)
	complete := true

	plan := make(model.WorkoutPlan, 0, len(model.Weekdays))
	for _, d := range model.Weekdays {
		seg, ok := Find(days, string(d))
		if !ok {
			complete = false
			plan = append(plan, model.RestDay(d))
			continue
		}
		plan = append(plan, ExtractWorkoutDay(d, seg.Text))
	}

	if complete {
		return plan, model.StatusOK
	}
	return plan, model.StatusDegraded
}
