package catalogue

import (
	"slices"

	"github.com/rcliao/fitplan/internal/model"
)

// MealEntry is a catalogue meal at its base portion.
type MealEntry struct {
	Name         string
	BaseCalories int
	Protein      int
	Carbs        int
	Fat          int
	Tags         []model.Restriction // restrictions the meal satisfies
}

// Satisfies reports whether the meal meets every restriction in rs.
func (m MealEntry) Satisfies(rs []model.Restriction) bool {
	for _, r := range rs {
		if !slices.Contains(m.Tags, r) {
			return false
		}
	}
	return true
}

var (
	veg   = model.Vegetarian
	vegan = model.Vegan
	gf    = model.GlutenFree
	lf    = model.LactoseFree
)

var meals = map[model.Slot][]MealEntry{
	model.Breakfast: {
		{"Whole-wheat toast with eggs and milk", 400, 20, 40, 15, nil},
		{"Oatmeal with fruit and nuts", 350, 10, 50, 10, []model.Restriction{lf}},
		{"Vegetable omelette", 300, 18, 5, 22, []model.Restriction{gf}},
		{"Soy milk with whole-wheat steamed bun", 380, 15, 60, 5, []model.Restriction{lf, veg}},
		{"Fruit salad with yogurt", 250, 8, 45, 5, []model.Restriction{veg, gf}},
	},
	model.Lunch: {
		{"Brown rice with chicken breast and vegetables", 550, 35, 65, 10, []model.Restriction{gf}},
		{"Whole-wheat tuna salad sandwich", 500, 30, 50, 20, nil},
		{"Quinoa salad with baked tofu", 450, 20, 55, 15, []model.Restriction{veg, gf}},
		{"Spaghetti with tomato sauce and lean meatballs", 600, 25, 80, 15, nil},
		{"Vegetable fried rice with egg", 480, 15, 70, 12, []model.Restriction{veg}},
	},
	model.Dinner: {
		{"Baked salmon with steamed vegetables and sweet potato", 520, 40, 40, 20, []model.Restriction{gf}},
		{"Lean beef and broccoli stir-fry with brown rice", 580, 35, 60, 15, []model.Restriction{gf}},
		{"Tofu vegetable soup with whole-wheat bread", 400, 20, 50, 10, []model.Restriction{veg}},
		{"Grilled chicken breast with quinoa and roasted vegetables", 500, 40, 45, 15, []model.Restriction{gf}},
		{"Vegetable curry with brown rice", 450, 15, 65, 12, []model.Restriction{veg, gf, vegan}},
	},
	model.Snack: {
		{"Greek yogurt with blueberries", 200, 15, 20, 5, []model.Restriction{veg, gf}},
		{"Apple with almond butter", 180, 5, 25, 8, []model.Restriction{veg, gf, lf, vegan}},
		{"Protein shake", 220, 25, 15, 3, nil},
		{"Mixed nuts", 210, 8, 10, 18, []model.Restriction{veg, gf, lf, vegan}},
		{"Carrot sticks with hummus", 150, 6, 20, 5, []model.Restriction{veg, gf, lf, vegan}},
	},
}

// Meals returns a copy of the catalogue for slot.
func Meals(slot model.Slot) []MealEntry {
	return slices.Clone(meals[slot])
}
