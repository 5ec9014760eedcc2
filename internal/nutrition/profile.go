// Package nutrition is the recommendation engine: energy needs, BMI
// classification, diet-log analysis and meal-plan generation. Every function
// is pure and safe for concurrent use; nothing here performs I/O.
package nutrition

import (
	"errors"
	"strings"
)

// ErrInvalidProfile is returned when a profile is missing or has a
// non-positive height or weight.
var ErrInvalidProfile = errors.New("invalid profile: height and weight must be positive")

// Gender selects the BMR formula. Female and Other share one branch.
type Gender int

const (
	GenderOther Gender = iota
	GenderMale
	GenderFemale
)

// ParseGender accepts "M"/"Male" and "F"/"Female" in any case. Anything
// else, including the empty string, is GenderOther.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return GenderMale
	case "f", "female":
		return GenderFemale
	default:
		return GenderOther
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return "Other"
	}
}

// Goal is the parsed form of Profile.HealthGoal.
type Goal int

const (
	GoalBalanced Goal = iota
	GoalLoseWeight
	GoalGainMuscle
)

// Goal labels as users send them. Matching is exact but case-insensitive.
const (
	LoseWeightLabel = "Lose Weight"
	GainMuscleLabel = "Gain Muscle"
	BalancedLabel   = "Balanced"
)

// ParseGoal maps a goal label to a Goal. Unrecognized labels are balanced.
func ParseGoal(s string) Goal {
	switch {
	case strings.EqualFold(s, LoseWeightLabel):
		return GoalLoseWeight
	case strings.EqualFold(s, GainMuscleLabel):
		return GoalGainMuscle
	default:
		return GoalBalanced
	}
}

// Profile is the physiological and preference record every calculator reads.
// ActivityLevel and DietaryRestrictions are carried through but do not
// change any computation.
type Profile struct {
	WeightKg            float64
	HeightCm            float64
	Age                 int
	Gender              Gender
	ActivityLevel       string
	HealthGoal          string
	DietaryRestrictions string
}

// Goal returns the parsed health goal.
func (p Profile) Goal() Goal {
	return ParseGoal(p.HealthGoal)
}

// Validate reports ErrInvalidProfile for non-positive height or weight.
func (p *Profile) Validate() error {
	if p == nil || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return ErrInvalidProfile
	}
	return nil
}
