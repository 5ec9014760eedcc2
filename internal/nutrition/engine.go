package nutrition

// Engine is the entry point the HTTP layer uses. It wires one energy
// calculator into the diet analyzer and the health facade.
type Engine struct {
	energy CalorieEstimator
	diet   *DietAnalyzer
	health *HealthAnalyzer
	meals  MealPlanGenerator
}

// New returns an Engine backed by EnergyCalculator.
func New() *Engine {
	return NewWithEstimator(EnergyCalculator{})
}

// NewWithEstimator returns an Engine whose calorie targets come from energy.
func NewWithEstimator(energy CalorieEstimator) *Engine {
	return &Engine{
		energy: energy,
		diet:   NewDietAnalyzer(energy),
		health: NewHealthAnalyzer(energy),
	}
}

// DailyCalorieNeeds returns the goal-adjusted calorie target for p.
func (e *Engine) DailyCalorieNeeds(p Profile) int {
	return e.energy.DailyCalorieNeeds(p)
}

// AnalyzeHealth returns BMI, category and calorie needs, or ErrInvalidProfile.
func (e *Engine) AnalyzeHealth(p *Profile) (HealthAnalysis, error) {
	return e.health.Analyze(p)
}

// AnalyzeDietLog analyzes one logged food item.
func (e *Engine) AnalyzeDietLog(log FoodLog) DietRecommendation {
	return e.diet.Analyze(log)
}

// GenerateMealPlan builds the day's meal plan for p.
func (e *Engine) GenerateMealPlan(p Profile) MealPlan {
	return e.meals.Generate(p)
}
