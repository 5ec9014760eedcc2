package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/nutrichef-api/internal/logger"
	"lg/nutrichef-api/internal/nutrition"
)

// bindOptionalProfile decodes an optional profile body. A missing or empty
// body yields nil with no error.
func bindOptionalProfile(c *gin.Context) (*profileRequest, error) {
	var body profileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return &body, nil
}

// analyzeHealth returns BMI, BMI category and daily calorie needs for an
// inline profile. POST /api/health/analyze. An invalid or absent profile
// gets 400 with only the error field.
func (h *Handler) analyzeHealth(c *gin.Context) {
	body, err := bindOptionalProfile(c)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var profile *nutrition.Profile
	if body != nil {
		p := body.profile()
		profile = &p
	}

	analysis, err := h.engine.AnalyzeHealth(profile)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("health analysis",
		zap.String("goal", profile.HealthGoal),
		zap.String("bmi_category", string(analysis.BMICategory)))
	c.JSON(http.StatusOK, newHealthAnalysisResponse(analysis))
}

// recommendDiet analyzes a logged food item against the caller's daily
// target. POST /api/diet/recommend. Uses the inline userProfile when given,
// otherwise the authenticated user's stored profile.
func (h *Handler) recommendDiet(c *gin.Context) {
	var body dietRecommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.FoodItem) == "" {
		apiError(c, http.StatusBadRequest, "foodItem is required")
		return
	}

	var profile nutrition.Profile
	if body.UserProfile != nil {
		profile = body.UserProfile.profile()
	} else {
		u, ok, err := h.storedUser(c)
		if err != nil {
			dbError(c, err, "profile not found", "failed to load profile")
			return
		}
		if !ok {
			apiError(c, http.StatusBadRequest, "userProfile is required")
			return
		}
		profile = u.profile()
	}
	if err := profile.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec := h.engine.AnalyzeDietLog(nutrition.FoodLog{
		FoodItem: body.FoodItem,
		MealType: body.MealType,
		Profile:  profile,
	})
	c.JSON(http.StatusOK, newDietRecommendationResponse(rec))
}

// generateMealPlan returns a rule-based daily meal plan.
// POST /api/meal-plan/generate. The body is optional: without one, an
// authenticated caller gets a plan for the stored profile and an anonymous
// caller gets the balanced plan.
func (h *Handler) generateMealPlan(c *gin.Context) {
	body, err := bindOptionalProfile(c)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var profile nutrition.Profile
	if body != nil {
		profile = body.profile()
	} else {
		u, ok, err := h.storedUser(c)
		if err != nil {
			dbError(c, err, "profile not found", "failed to load profile")
			return
		}
		if ok {
			profile = u.profile()
		}
	}

	c.JSON(http.StatusOK, newMealPlanResponse(h.engine.GenerateMealPlan(profile)))
}
