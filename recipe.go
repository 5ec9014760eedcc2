package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/nutrichef-api/internal/logger"
	"lg/nutrichef-api/internal/mlbridge"
)

// generateRecipe asks the prediction service for a recipe built from the
// given ingredients.
// GET /api/recipes/generate?ingredients=...&cuisine=any&dietaryRestrictions=...
// An authenticated user's stored dietary restrictions take precedence over
// the query param. When the service fails, the fallback recipe is returned
// with 200 so the frontend can render it like any other recipe.
func (h *Handler) generateRecipe(c *gin.Context) {
	ingredients := strings.TrimSpace(c.Query("ingredients"))
	if ingredients == "" {
		apiError(c, http.StatusBadRequest, "ingredients is required")
		return
	}

	req := mlbridge.RecipeRequest{
		Ingredients:         ingredients,
		Cuisine:             c.DefaultQuery("cuisine", "any"),
		DietaryRestrictions: c.Query("dietaryRestrictions"),
	}

	u, ok, err := h.storedUser(c)
	if err != nil {
		logger.Warn("recipe: stored profile unavailable", zap.Error(err))
	}
	if ok && u.DietaryRestrictions != nil {
		req.DietaryRestrictions = *u.DietaryRestrictions
	}

	recipe, err := h.ml.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		logger.Warn("recipe: prediction service unavailable, serving fallback",
			zap.String("ingredients", ingredients), zap.Error(err))
		recipe = mlbridge.FallbackRecipe()
	}

	c.JSON(http.StatusOK, recipe)
}

// identifyIngredients is a placeholder for image-based ingredient detection.
// POST /api/recipes/identify-ingredients.
func identifyIngredients(c *gin.Context) {
	apiError(c, http.StatusNotImplemented, "ingredient recognition is not available yet")
}
