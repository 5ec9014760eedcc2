package nutrition

import (
	"math"
	"testing"
)

// makeProfile builds a profile with the given body stats. Activity level and
// restrictions are filled with the stored-profile defaults.
func makeProfile(gender string, weightKg, heightCm float64, age int, goal string) Profile {
	return Profile{
		WeightKg:            weightKg,
		HeightCm:            heightCm,
		Age:                 age,
		Gender:              ParseGender(gender),
		ActivityLevel:       "Moderate",
		HealthGoal:          goal,
		DietaryRestrictions: "None",
	}
}

/* ─── BMR tests ──────────────────────────────────────────────────────── */

// TestBMR_Male checks the male Harris-Benedict constants.
// 88.362 + 13.397*70 + 4.799*175 - 5.677*25 = 1724.052
func TestBMR_Male(t *testing.T) {
	bmr := EnergyCalculator{}.BMR(makeProfile("M", 70, 175, 25, BalancedLabel))
	if math.Abs(bmr-1724.052) > 1e-6 {
		t.Errorf("male BMR = %f, want 1724.052", bmr)
	}
}

// TestBMR_Female checks the female constants.
// 447.593 + 9.247*70 + 3.098*175 - 4.330*25 = 1528.783
func TestBMR_Female(t *testing.T) {
	bmr := EnergyCalculator{}.BMR(makeProfile("F", 70, 175, 25, BalancedLabel))
	if math.Abs(bmr-1528.783) > 1e-6 {
		t.Errorf("female BMR = %f, want 1528.783", bmr)
	}
}

// TestBMR_OtherUsesFemaleFormula verifies that any non-male gender shares
// the female branch.
func TestBMR_OtherUsesFemaleFormula(t *testing.T) {
	calc := EnergyCalculator{}
	female := calc.BMR(makeProfile("female", 62, 160, 40, BalancedLabel))
	for _, g := range []string{"Other", "", "x"} {
		if got := calc.BMR(makeProfile(g, 62, 160, 40, BalancedLabel)); got != female {
			t.Errorf("BMR for gender %q = %f, want female value %f", g, got, female)
		}
	}
}

// TestBMR_GenderOffset verifies that two profiles differing only in gender
// differ by exactly the difference of the two formulas.
func TestBMR_GenderOffset(t *testing.T) {
	calc := EnergyCalculator{}
	w, h, age := 82.5, 181.0, 37
	male := calc.BMR(makeProfile("M", w, h, age, BalancedLabel))
	female := calc.BMR(makeProfile("F", w, h, age, BalancedLabel))

	want := (88.362 - 447.593) + (13.397-9.247)*w + (4.799-3.098)*h - (5.677-4.330)*float64(age)
	if math.Abs((male-female)-want) > 1e-6 {
		t.Errorf("male-female BMR offset = %f, want %f", male-female, want)
	}
}

/* ─── Daily calorie needs ────────────────────────────────────────────── */

func TestDailyCalorieNeeds(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    int
	}{
		// 1724.052 * 1.55 = 2672.28
		{"male balanced", makeProfile("M", 70, 175, 25, BalancedLabel), 2672},
		{"male lose weight", makeProfile("M", 70, 175, 25, LoseWeightLabel), 2172},
		{"male gain muscle", makeProfile("M", 70, 175, 25, GainMuscleLabel), 3172},
		// 1528.783 * 1.55 = 2369.61, truncated rather than rounded
		{"female balanced truncates", makeProfile("F", 70, 175, 25, BalancedLabel), 2369},
		{"goal case-insensitive", makeProfile("m", 70, 175, 25, "lose WEIGHT"), 2172},
		{"unknown goal is balanced", makeProfile("M", 70, 175, 25, "Keto Cut"), 2672},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (EnergyCalculator{}).DailyCalorieNeeds(tc.profile); got != tc.want {
				t.Errorf("DailyCalorieNeeds = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestDailyCalorieNeeds_GoalAdjustment verifies the +/-500 goal offsets
// against the balanced target for a handful of body stats.
func TestDailyCalorieNeeds_GoalAdjustment(t *testing.T) {
	calc := EnergyCalculator{}
	stats := []struct {
		gender string
		w, h   float64
		age    int
	}{
		{"M", 70, 175, 25},
		{"F", 58, 163, 31},
		{"M", 95, 190, 52},
	}
	for _, s := range stats {
		balanced := calc.DailyCalorieNeeds(makeProfile(s.gender, s.w, s.h, s.age, BalancedLabel))
		gain := calc.DailyCalorieNeeds(makeProfile(s.gender, s.w, s.h, s.age, GainMuscleLabel))
		lose := calc.DailyCalorieNeeds(makeProfile(s.gender, s.w, s.h, s.age, LoseWeightLabel))
		if gain-balanced != 500 {
			t.Errorf("%+v: gain-balanced = %d, want 500", s, gain-balanced)
		}
		if lose-balanced != -500 {
			t.Errorf("%+v: lose-balanced = %d, want -500", s, lose-balanced)
		}
	}
}

// TestDailyCalorieNeeds_IgnoresActivityLevel verifies the multiplier is the
// same for every activity level.
func TestDailyCalorieNeeds_IgnoresActivityLevel(t *testing.T) {
	calc := EnergyCalculator{}
	base := makeProfile("M", 70, 175, 25, BalancedLabel)
	want := calc.DailyCalorieNeeds(base)
	for _, level := range []string{"Sedentary", "Active", "very_active", ""} {
		p := base
		p.ActivityLevel = level
		if got := calc.DailyCalorieNeeds(p); got != want {
			t.Errorf("activity %q: DailyCalorieNeeds = %d, want %d", level, got, want)
		}
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"M": GenderMale, "m": GenderMale, "Male": GenderMale, " MALE ": GenderMale,
		"F": GenderFemale, "female": GenderFemale,
		"Other": GenderOther, "": GenderOther, "nb": GenderOther,
	}
	for in, want := range cases {
		if got := ParseGender(in); got != want {
			t.Errorf("ParseGender(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseGoal(t *testing.T) {
	cases := map[string]Goal{
		"Lose Weight": GoalLoseWeight, "lose weight": GoalLoseWeight,
		"GAIN MUSCLE": GoalGainMuscle,
		"Balanced":    GoalBalanced, "": GoalBalanced, "lose_weight": GoalBalanced,
	}
	for in, want := range cases {
		if got := ParseGoal(in); got != want {
			t.Errorf("ParseGoal(%q) = %v, want %v", in, got, want)
		}
	}
}
