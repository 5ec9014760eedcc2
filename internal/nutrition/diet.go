package nutrition

import (
	"fmt"
	"strings"
)

// NutrientType is the keyword-derived macro profile of a logged food.
type NutrientType string

const (
	CarbHeavy   NutrientType = "Carb-Heavy"
	ProteinRich NutrientType = "Protein-Rich"
	Balanced    NutrientType = "Balanced"
)

// FoodLog is a single logged food item with the profile it was eaten under.
type FoodLog struct {
	FoodItem string
	MealType string
	Profile  Profile
}

// DietRecommendation is the analysis of one FoodLog. CaloriesRemaining is
// negative when the item already exceeds the daily target.
type DietRecommendation struct {
	CaloriesConsumedEstimate int
	CaloriesRemaining        int
	NutrientType             NutrientType
	NutritionalAnalysis      string
	NextMealSuggestion       string
}

/* ─── Keyword rules ──────────────────────────────────────────────────── */

// Rules are evaluated top to bottom and the first match wins. The calorie and
// nutrient tables are independent, so "pizza" hits both.

type calorieRule struct {
	keywords []string
	calories int
}

var calorieRules = []calorieRule{
	{keywords: []string{"burger", "pizza", "biryani"}, calories: 850},
	{keywords: []string{"salad"}, calories: 200},
	{keywords: []string{"rice"}, calories: 400},
}

const defaultItemCalories = 500

type nutrientRule struct {
	keywords []string
	kind     NutrientType
}

var nutrientRules = []nutrientRule{
	{keywords: []string{"rice", "pasta", "bread", "pizza"}, kind: CarbHeavy},
	{keywords: []string{"chicken", "egg", "meat", "fish"}, kind: ProteinRich},
}

// heavyMealShare is the fraction of the daily target above which a single
// item counts as a heavy meal.
const heavyMealShare = 0.4

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// EstimateCalories guesses the calories in a food item from its name.
func EstimateCalories(foodItem string) int {
	f := strings.ToLower(foodItem)
	for _, r := range calorieRules {
		if containsAny(f, r.keywords) {
			return r.calories
		}
	}
	return defaultItemCalories
}

// ClassifyNutrients buckets a food item by its dominant macro-nutrient.
func ClassifyNutrients(foodItem string) NutrientType {
	f := strings.ToLower(foodItem)
	for _, r := range nutrientRules {
		if containsAny(f, r.keywords) {
			return r.kind
		}
	}
	return Balanced
}

/* ─── Analyzer ───────────────────────────────────────────────────────── */

// DietAnalyzer turns a logged food into a remaining-budget analysis and a
// suggestion for the next meal.
type DietAnalyzer struct {
	energy CalorieEstimator
}

// NewDietAnalyzer returns an analyzer that takes daily targets from energy.
func NewDietAnalyzer(energy CalorieEstimator) *DietAnalyzer {
	return &DietAnalyzer{energy: energy}
}

// Analyze estimates what the logged item cost against the profile's daily
// target and picks the first matching advice branch: heavy meal, then
// carb-heavy, then protein-rich, then balanced.
func (a *DietAnalyzer) Analyze(log FoodLog) DietRecommendation {
	target := a.energy.DailyCalorieNeeds(log.Profile)
	eaten := EstimateCalories(log.FoodItem)
	kind := ClassifyNutrients(log.FoodItem)

	rec := DietRecommendation{
		CaloriesConsumedEstimate: eaten,
		CaloriesRemaining:        target - eaten,
		NutrientType:             kind,
	}

	switch {
	case float64(eaten) > float64(target)*heavyMealShare:
		rec.NutritionalAnalysis = fmt.Sprintf("That was a heavy meal (%d kcal). You used a large portion of your daily budget.", eaten)
		rec.NextMealSuggestion = "For your next meal, stick to something light and fiber-rich. \nRecommendation: Green Salad with Lemon Dressing."
	case kind == CarbHeavy:
		rec.NutritionalAnalysis = fmt.Sprintf("Your meal was high in carbohydrates (%d kcal).", eaten)
		rec.NextMealSuggestion = "Focus on Protein next to balance blood sugar. \nRecommendation: Grilled Salmon or Tofu Stir-fry."
	case kind == ProteinRich:
		rec.NutritionalAnalysis = fmt.Sprintf("Great protein intake! (%d kcal).", eaten)
		rec.NextMealSuggestion = "Ensure you get enough complex carbs next. \nRecommendation: Brown Rice bowl with roasted veggies."
	default:
		rec.NutritionalAnalysis = fmt.Sprintf("Good balanced choice (%d kcal).", eaten)
		rec.NextMealSuggestion = "You are on track! \nRecommendation: A light fruit snack or Greek Yogurt."
	}
	return rec
}
