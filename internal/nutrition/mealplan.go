package nutrition

import "strings"

// MealType is the slot a meal occupies in the day.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// Meal is one entry of a meal plan. Macros is display text only.
type Meal struct {
	Name     string
	Type     MealType
	Calories int
	Macros   string
}

// MealPlan is a day of meals. TotalDailyCalories is the sum of Meals, not
// the nominal target of the template that was chosen.
type MealPlan struct {
	Goal               string
	TotalDailyCalories int
	Meals              []Meal
	Suggestion         string
}

const (
	defaultPlanLabel = "Balanced Diet"
	planSuggestion   = "Remember to stay hydrated and eat at regular intervals!"
)

// mealTemplate is a fixed day of meals for one goal. targetCalories is the
// nominal figure the template was designed around.
type mealTemplate struct {
	targetCalories int
	meals          []Meal
}

var mealTemplates = map[Goal]mealTemplate{
	GoalLoseWeight: {
		targetCalories: 1500,
		meals: []Meal{
			{Name: "Green Smoothie", Type: Breakfast, Calories: 250, Macros: "P:10g C:30g"},
			{Name: "Grilled Chicken Salad", Type: Lunch, Calories: 450, Macros: "P:40g C:10g"},
			{Name: "Steamed Fish with Veggies", Type: Dinner, Calories: 400, Macros: "P:35g C:5g"},
		},
	},
	GoalGainMuscle: {
		targetCalories: 3000,
		meals: []Meal{
			{Name: "Eggs & Oatmeal", Type: Breakfast, Calories: 600, Macros: "P:30g C:60g"},
			{Name: "Steak & Rice", Type: Lunch, Calories: 900, Macros: "P:50g C:80g"},
			{Name: "Pasta with Meat Sauce", Type: Dinner, Calories: 800, Macros: "P:40g C:90g"},
		},
	},
	GoalBalanced: {
		targetCalories: 2000,
		meals: []Meal{
			{Name: "Avocado Toast", Type: Breakfast, Calories: 400, Macros: "P:12g C:40g"},
			{Name: "Turkey Sandwich", Type: Lunch, Calories: 550, Macros: "P:30g C:50g"},
			{Name: "Stir Fry Tofu", Type: Dinner, Calories: 500, Macros: "P:20g C:45g"},
		},
	},
}

// dailySnack is appended to every plan.
var dailySnack = Meal{Name: "Greek Yogurt", Type: Snack, Calories: 150, Macros: "P:15g C:10g"}

// MealPlanGenerator builds rule-based daily meal plans keyed on the health goal.
type MealPlanGenerator struct{}

// Generate returns a fresh plan for the profile's goal with the daily snack
// appended.
func (MealPlanGenerator) Generate(p Profile) MealPlan {
	tmpl := mealTemplates[p.Goal()]

	meals := make([]Meal, 0, len(tmpl.meals)+1)
	meals = append(meals, tmpl.meals...)
	meals = append(meals, dailySnack)

	total := 0
	for _, m := range meals {
		total += m.Calories
	}

	label := p.HealthGoal
	if strings.TrimSpace(label) == "" {
		label = defaultPlanLabel
	}

	return MealPlan{
		Goal:               label,
		TotalDailyCalories: total,
		Meals:              meals,
		Suggestion:         planSuggestion,
	}
}
