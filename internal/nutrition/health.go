package nutrition

// HealthAnalysis combines body composition with the daily calorie target.
type HealthAnalysis struct {
	BMI               float64
	BMICategory       BMICategory
	DailyCalorieNeeds int
}

// HealthAnalyzer validates a profile and composes the BMI classifier with
// an energy calculator.
type HealthAnalyzer struct {
	energy CalorieEstimator
}

func NewHealthAnalyzer(energy CalorieEstimator) *HealthAnalyzer {
	return &HealthAnalyzer{energy: energy}
}

// Analyze returns ErrInvalidProfile and a zero HealthAnalysis when p is nil
// or has a non-positive height or weight.
func (h *HealthAnalyzer) Analyze(p *Profile) (HealthAnalysis, error) {
	if err := p.Validate(); err != nil {
		return HealthAnalysis{}, err
	}
	bmi := rawBMI(p.WeightKg, p.HeightCm)
	return HealthAnalysis{
		BMI:               roundTo2(bmi),
		BMICategory:       ClassifyBMI(bmi),
		DailyCalorieNeeds: h.energy.DailyCalorieNeeds(*p),
	}, nil
}
