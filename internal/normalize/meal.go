package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rcliao/fitplan/internal/model"
)

var (
	caloriesRegex    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kcal|calories|calorie|cal|千卡|大卡|卡路里|卡)`)
	proteinRegex     = macroRegex(`protein|蛋白质`)
	carbsRegex       = macroRegex(`carbohydrates?|carbs?|碳水化合物|碳水`)
	fatRegex         = macroRegex(`fats?|脂肪`)
	parentheticalRe  = regexp.MustCompile(`\s*[（(][^()（）]*[)）]`)
	calorieTailRegex = regexp.MustCompile(`(?i)\s*[-–—,，]\s*\d+(?:\.\d+)?\s*(?:kcal|calories|cal|千卡|大卡|卡路里|卡).*$`)
)

func macroRegex(names string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + names + `)\s*[:：]?\s*(\d+(?:\.\d+)?)\s*(?:g\b|grams?|克)`)
}

// ExtractMeal reads one slot's text. Fields that cannot be found stay zero;
// a missing name keeps the placeholder name.
func ExtractMeal(text string) model.MealServing {
	m := model.PlaceholderMeal()
	if name := mealName(text); name != "" {
		m.Name = name
	}
	m.Calories = firstNumber(caloriesRegex, text)
	m.Protein = firstNumber(proteinRegex, text)
	m.Carbs = firstNumber(carbsRegex, text)
	m.Fat = firstNumber(fatRegex, text)
	return m
}

// mealName is the first non-empty line with annotations removed.
func mealName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = parentheticalRe.ReplaceAllString(line, "")
		line = calorieTailRegex.ReplaceAllString(line, "")
		return strings.TrimSpace(strings.Trim(line, "*_-–• \t"))
	}
	return ""
}

func firstNumber(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v))
}

// ParseMealPlan reads a seven-day meal plan. Days and slots that cannot be
// found hold placeholder meals; the status is ok only when all were found.
func ParseMealPlan(text string) (model.MealPlan, model.Status) {
	days := daySegmenter.Segment(text)
	complete := true

	plan := make(model.MealPlan, 0, len(model.Weekdays))
	for _, d := range model.Weekdays {
		day := model.DayMeals{Day: d, Meals: make(map[model.Slot]model.MealServing, len(model.Slots))}
		seg, ok := Find(days, string(d))
		var slots []Span
		if ok {
			slots = slotSegmenter.Segment(seg.Text)
		}
		for _, s := range model.Slots {
			span, found := Find(slots, string(s))
			if !found {
				complete = false
				day.Meals[s] = model.PlaceholderMeal()
				continue
			}
			day.Meals[s] = ExtractMeal(span.Text)
		}
		plan = append(plan, day)
	}

	if complete {
		return plan, model.StatusOK
	}
	return plan, model.StatusDegraded
}
