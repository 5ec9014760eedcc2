package nutrition

// activityMultiplier scales BMR to TDEE. It is fixed for every activity
// level; Profile.ActivityLevel does not select a tier yet.
const activityMultiplier = 1.55

// goalAdjustmentKcal is added for muscle gain and subtracted for weight loss.
const goalAdjustmentKcal = 500

// CalorieEstimator produces a daily calorie target for a profile.
// EnergyCalculator is the only production implementation.
type CalorieEstimator interface {
	DailyCalorieNeeds(p Profile) int
}

// EnergyCalculator computes BMR, TDEE and the goal-adjusted calorie target.
// The zero value is ready to use.
type EnergyCalculator struct{}

// BMR returns the Harris-Benedict basal metabolic rate in kcal/day.
// Non-male profiles use the female constants.
func (EnergyCalculator) BMR(p Profile) float64 {
	if p.Gender == GenderMale {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
}

// TDEE returns BMR scaled by the activity multiplier.
func (e EnergyCalculator) TDEE(p Profile) float64 {
	return e.BMR(p) * activityMultiplier
}

// DailyCalorieNeeds returns TDEE adjusted for the profile's goal, truncated
// toward zero. Inputs are not validated here; callers reject bad profiles
// before reaching this point.
func (e EnergyCalculator) DailyCalorieNeeds(p Profile) int {
	needs := e.TDEE(p)
	switch p.Goal() {
	case GoalLoseWeight:
		needs -= goalAdjustmentKcal
	case GoalGainMuscle:
		needs += goalAdjustmentKcal
	}
	return int(needs)
}
