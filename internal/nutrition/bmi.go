package nutrition

import "math"

// BMICategory is the coarse body-composition bucket for a BMI value.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// Upper bounds are exclusive.
const (
	underweightBelow = 18.5
	normalBelow      = 24.9
	overweightBelow  = 29.9
)

// rawBMI is weight over height in metres squared, unrounded.
func rawBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMI returns the body mass index rounded to two decimal places.
func BMI(weightKg, heightCm float64) float64 {
	return roundTo2(rawBMI(weightKg, heightCm))
}

// ClassifyBMI buckets a BMI value.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < underweightBelow:
		return Underweight
	case bmi < normalBelow:
		return NormalWeight
	case bmi < overweightBelow:
		return Overweight
	default:
		return Obese
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
