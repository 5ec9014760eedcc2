package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/nutrichef-api/internal/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Stored profile defaults ────────────────────────────────────────── */

// Values substituted for NULL profile columns when a stored user is turned
// into an engine profile.
const (
	defaultWeightKg            = 70.0
	defaultHeightCm            = 170.0
	defaultAge                 = 25
	defaultGender              = "M"
	defaultActivityLevel       = "Moderate"
	defaultHealthGoal          = "Balanced"
	defaultDietaryRestrictions = "None"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON
// responses. Profile columns are nullable; a freshly registered user may have
// none of them set.
type user struct {
	ID                  int        `json:"id"                  db:"id"`
	Username            string     `json:"username"            db:"username"`
	Password            string     `json:"-"                   db:"password"`
	AuthToken           string     `json:"-"                   db:"auth_token"`
	WeightKg            *float64   `json:"weightKg"            db:"weight_kg"`
	HeightCm            *float64   `json:"heightCm"            db:"height_cm"`
	Age                 *int       `json:"age"                 db:"age"`
	Gender              *string    `json:"gender"              db:"gender"`
	ActivityLevel       *string    `json:"activityLevel"       db:"activity_level"`
	HealthGoals         *string    `json:"healthGoals"         db:"health_goals"`
	DietaryRestrictions *string    `json:"dietaryRestrictions" db:"dietary_restrictions"`
	CreatedAt           *time.Time `json:"createdAt"           db:"created_at"`
}

// profile converts the stored record into an engine profile, filling NULL
// columns with the defaults above.
func (u user) profile() nutrition.Profile {
	p := nutrition.Profile{
		WeightKg:            defaultWeightKg,
		HeightCm:            defaultHeightCm,
		Age:                 defaultAge,
		Gender:              nutrition.ParseGender(defaultGender),
		ActivityLevel:       defaultActivityLevel,
		HealthGoal:          defaultHealthGoal,
		DietaryRestrictions: defaultDietaryRestrictions,
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = nutrition.ParseGender(*u.Gender)
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
	}
	if u.HealthGoals != nil {
		p.HealthGoal = *u.HealthGoals
	}
	if u.DietaryRestrictions != nil {
		p.DietaryRestrictions = *u.DietaryRestrictions
	}
	return p
}

// dietLogItem maps to diet_log_items. Calories and NutrientType are the
// engine's estimates at the time the item was logged.
type dietLogItem struct {
	ID           int        `json:"id"           db:"id"`
	UserID       int        `json:"userId"       db:"user_id"`
	Date         DateOnly   `json:"date"         db:"date"`
	FoodItem     string     `json:"foodItem"     db:"food_item"`
	MealType     string     `json:"mealType"     db:"meal_type"`
	Calories     int        `json:"calories"     db:"calories"`
	NutrientType string     `json:"nutrientType" db:"nutrient_type"`
	CreatedAt    *time.Time `json:"createdAt"    db:"created_at"`
}

// weightEntry maps to weight_log. One row per user per date.
type weightEntry struct {
	ID        int        `json:"id"        db:"id"`
	UserID    int        `json:"userId"    db:"user_id"`
	Date      DateOnly   `json:"date"      db:"date"`
	WeightKg  float64    `json:"weightKg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"createdAt" db:"created_at"`
}

// dietDayDBRow is the shape of each row returned by the week-summary GROUP BY query.
type dietDayDBRow struct {
	Date      DateOnly `db:"date"`
	Calories  int      `db:"calories"`
	ItemCount int      `db:"item_count"`
}

// dietDaySummary is one day's entry in the GET /api/diet-log/week-summary response.
// Days with no logged items have HasData=false and zero calories.
type dietDaySummary struct {
	Date              DateOnly `json:"date"`
	DailyTarget       int      `json:"dailyTarget"`
	CaloriesConsumed  int      `json:"caloriesConsumed"`
	CaloriesRemaining int      `json:"caloriesRemaining"`
	ItemCount         int      `json:"itemCount"`
	HasData           bool     `json:"hasData"`
}

// dailyDietLog is the response shape for GET /api/diet-log/daily.
type dailyDietLog struct {
	Date              string        `json:"date"`
	DailyTarget       int           `json:"dailyTarget"`
	CaloriesConsumed  int           `json:"caloriesConsumed"`
	CaloriesRemaining int           `json:"caloriesRemaining"`
	Items             []dietLogItem `json:"items"`
}

/* ─── Requests ───────────────────────────────────────────────────────── */

// profileRequest is an inline profile as the frontend sends it. Missing
// numeric fields decode as zero and are rejected by validation.
type profileRequest struct {
	WeightKg            float64 `json:"weightKg"`
	HeightCm            float64 `json:"heightCm"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	ActivityLevel       string  `json:"activityLevel"`
	HealthGoals         string  `json:"healthGoals"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
}

func (r profileRequest) profile() nutrition.Profile {
	return nutrition.Profile{
		WeightKg:            r.WeightKg,
		HeightCm:            r.HeightCm,
		Age:                 r.Age,
		Gender:              nutrition.ParseGender(r.Gender),
		ActivityLevel:       r.ActivityLevel,
		HealthGoal:          r.HealthGoals,
		DietaryRestrictions: r.DietaryRestrictions,
	}
}

// dietRecommendRequest is the body for POST /api/diet/recommend. UserProfile
// may be omitted by authenticated callers, in which case the stored profile
// is used.
type dietRecommendRequest struct {
	FoodItem    string          `json:"foodItem"`
	MealType    string          `json:"mealType"`
	UserProfile *profileRequest `json:"userProfile"`
}

// createDietLogRequest is the body for POST /api/diet-log.
type createDietLogRequest struct {
	Date     string `json:"date"`
	FoodItem string `json:"foodItem"`
	MealType string `json:"mealType"`
}

// registerRequest is the body for POST /api/auth/register. Profile fields
// are optional and stay NULL when omitted.
type registerRequest struct {
	Username            string   `json:"username"`
	Password            string   `json:"password"`
	WeightKg            *float64 `json:"weightKg"`
	HeightCm            *float64 `json:"heightCm"`
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	ActivityLevel       *string  `json:"activityLevel"`
	HealthGoals         *string  `json:"healthGoals"`
	DietaryRestrictions *string  `json:"dietaryRestrictions"`
}

// patchProfileRequest is the body for PATCH /api/profile. All fields are
// pointers so only fields the client sent get written.
type patchProfileRequest struct {
	WeightKg            *float64 `json:"weightKg"`
	HeightCm            *float64 `json:"heightCm"`
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	ActivityLevel       *string  `json:"activityLevel"`
	HealthGoals         *string  `json:"healthGoals"`
	DietaryRestrictions *string  `json:"dietaryRestrictions"`
}

/* ─── Responses ──────────────────────────────────────────────────────── */

type healthAnalysisResponse struct {
	BMI               float64 `json:"bmi"`
	BMICategory       string  `json:"bmiCategory"`
	DailyCalorieNeeds int     `json:"dailyCalorieNeeds"`
}

func newHealthAnalysisResponse(a nutrition.HealthAnalysis) healthAnalysisResponse {
	return healthAnalysisResponse{
		BMI:               a.BMI,
		BMICategory:       string(a.BMICategory),
		DailyCalorieNeeds: a.DailyCalorieNeeds,
	}
}

type dietRecommendationResponse struct {
	CaloriesConsumedEstimate int    `json:"caloriesConsumedEstimate"`
	CaloriesRemaining        int    `json:"caloriesRemaining"`
	NutrientType             string `json:"nutrientType"`
	NutritionalAnalysis      string `json:"nutritionalAnalysis"`
	NextMealSuggestion       string `json:"nextMealSuggestion"`
}

func newDietRecommendationResponse(r nutrition.DietRecommendation) dietRecommendationResponse {
	return dietRecommendationResponse{
		CaloriesConsumedEstimate: r.CaloriesConsumedEstimate,
		CaloriesRemaining:        r.CaloriesRemaining,
		NutrientType:             string(r.NutrientType),
		NutritionalAnalysis:      r.NutritionalAnalysis,
		NextMealSuggestion:       r.NextMealSuggestion,
	}
}

type mealResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Calories int    `json:"calories"`
	Macros   string `json:"macros"`
}

type mealPlanResponse struct {
	Goal               string         `json:"goal"`
	TotalDailyCalories int            `json:"totalDailyCalories"`
	Suggestion         string         `json:"suggestion"`
	Meals              []mealResponse `json:"meals"`
}

func newMealPlanResponse(p nutrition.MealPlan) mealPlanResponse {
	meals := make([]mealResponse, len(p.Meals))
	for i, m := range p.Meals {
		meals[i] = mealResponse{Name: m.Name, Type: string(m.Type), Calories: m.Calories, Macros: m.Macros}
	}
	return mealPlanResponse{
		Goal:               p.Goal,
		TotalDailyCalories: p.TotalDailyCalories,
		Suggestion:         p.Suggestion,
		Meals:              meals,
	}
}

// profileResponse is GET/PATCH /api/profile: the stored columns as-is plus
// figures computed from the effective profile (defaults applied).
type profileResponse struct {
	user
	BMI               *float64 `json:"bmi,omitempty"`
	BMICategory       *string  `json:"bmiCategory,omitempty"`
	DailyCalorieNeeds *int     `json:"dailyCalorieNeeds,omitempty"`
}
