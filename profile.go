package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/nutrichef-api/internal/nutrition"
)

// allowedGenders lists the gender strings accepted on write. The engine is
// more tolerant (anything unknown is "Other"); this keeps stored data tidy.
var allowedGenders = map[string]struct{}{
	"m":      {},
	"f":      {},
	"male":   {},
	"female": {},
	"other":  {},
}

// canonicalGender returns the stored form ("M", "F" or "Other") of a
// client-supplied gender, or nil when none was sent.
func canonicalGender(g *string) *string {
	if g == nil {
		return nil
	}
	s := nutrition.ParseGender(*g).String()
	return &s
}

// validateProfilePatch returns a user-facing message for the first invalid
// field, or "" when every provided field is acceptable.
func validateProfilePatch(req patchProfileRequest) string {
	if req.WeightKg != nil && *req.WeightKg <= 0 {
		return "weightKg must be greater than 0"
	}
	if req.HeightCm != nil && *req.HeightCm <= 0 {
		return "heightCm must be greater than 0"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.Gender != nil {
		if _, ok := allowedGenders[strings.ToLower(strings.TrimSpace(*req.Gender))]; !ok {
			return "gender must be one of: M, F, Male, Female, Other"
		}
	}
	return ""
}

// withComputed wraps a stored user with BMI, category and calorie needs
// derived from the effective profile. The computed fields are left out when
// the effective profile is invalid.
func (h *Handler) withComputed(u user) profileResponse {
	resp := profileResponse{user: u}
	p := u.profile()
	analysis, err := h.engine.AnalyzeHealth(&p)
	if err != nil {
		return resp
	}
	category := string(analysis.BMICategory)
	resp.BMI = &analysis.BMI
	resp.BMICategory = &category
	resp.DailyCalorieNeeds = &analysis.DailyCalorieNeeds
	return resp
}

// getProfile returns the authenticated user's stored profile plus computed
// figures. GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	u, ok, err := h.storedUser(c)
	if err != nil {
		dbError(c, err, "profile not found", "failed to load profile")
		return
	}
	if !ok {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, h.withComputed(u))
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from zero; only non-nil fields are written.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	setClauses, args := profileSetClauses(body)
	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	args["userID"] = userID

	query := "UPDATE users SET " +
		strings.Join(setClauses, ", ") +
		" WHERE id = @userID RETURNING *"

	u, err := queryOne[user](h.db, c, query, args)
	if err != nil {
		dbError(c, err, "profile not found", "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, h.withComputed(u))
}

// profileSetClauses builds the SET clause for the fields the client sent.
func profileSetClauses(body patchProfileRequest) ([]string, pgx.NamedArgs) {
	setClauses := []string{}
	args := pgx.NamedArgs{}

	if body.WeightKg != nil {
		setClauses = append(setClauses, "weight_kg = @weightKg")
		args["weightKg"] = *body.WeightKg
	}
	if body.HeightCm != nil {
		setClauses = append(setClauses, "height_cm = @heightCm")
		args["heightCm"] = *body.HeightCm
	}
	if body.Age != nil {
		setClauses = append(setClauses, "age = @age")
		args["age"] = *body.Age
	}
	if body.Gender != nil {
		setClauses = append(setClauses, "gender = @gender")
		args["gender"] = *canonicalGender(body.Gender)
	}
	if body.ActivityLevel != nil {
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}
	if body.HealthGoals != nil {
		setClauses = append(setClauses, "health_goals = @healthGoals")
		args["healthGoals"] = *body.HealthGoals
	}
	if body.DietaryRestrictions != nil {
		setClauses = append(setClauses, "dietary_restrictions = @dietaryRestrictions")
		args["dietaryRestrictions"] = *body.DietaryRestrictions
	}
	return setClauses, args
}
