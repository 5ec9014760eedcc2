package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lg/nutrichef-api/internal/mlbridge"
	"lg/nutrichef-api/internal/nutrition"
)

// stubRecipes is a recipeGenerator that records the last request and
// returns a canned result.
type stubRecipes struct {
	recipe mlbridge.Recipe
	err    error
	last   mlbridge.RecipeRequest
}

func (s *stubRecipes) GenerateRecipe(_ context.Context, req mlbridge.RecipeRequest) (mlbridge.Recipe, error) {
	s.last = req
	return s.recipe, s.err
}

func setupRecipeTest(ml recipeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return newRouter(&Handler{engine: nutrition.New(), ml: ml}, false)
}

func decodeRecipe(t *testing.T, w *httptest.ResponseRecorder) mlbridge.Recipe {
	t.Helper()
	var r mlbridge.Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return r
}

func TestGenerateRecipe_Success(t *testing.T) {
	stub := &stubRecipes{recipe: mlbridge.Recipe{Title: "Shakshuka", Calories: 320}}
	router := setupRecipeTest(stub)

	w := doJSON(router, "GET", "/api/recipes/generate?ingredients=egg,tomato&dietaryRestrictions=Vegetarian", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if r := decodeRecipe(t, w); r.Title != "Shakshuka" || r.Calories != 320 {
		t.Errorf("unexpected recipe %+v", r)
	}
	if stub.last.Cuisine != "any" {
		t.Errorf("expected default cuisine 'any', got '%s'", stub.last.Cuisine)
	}
	if stub.last.DietaryRestrictions != "Vegetarian" {
		t.Errorf("expected restrictions from query, got '%s'", stub.last.DietaryRestrictions)
	}
}

// TestGenerateRecipe_FallbackOnError verifies a failing prediction service
// yields the fallback recipe with 200 rather than an error.
func TestGenerateRecipe_FallbackOnError(t *testing.T) {
	router := setupRecipeTest(&stubRecipes{err: mlbridge.ErrUnavailable})

	w := doJSON(router, "GET", "/api/recipes/generate?ingredients=rice", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if r := decodeRecipe(t, w); r.Title != "Service Unavailable" || r.Calories != 0 {
		t.Errorf("expected fallback recipe, got %+v", r)
	}
}

// TestGenerateRecipe_RealClientAgainstMockService wires the real bridge
// client to a mock prediction service that returns 500.
func TestGenerateRecipe_RealClientAgainstMockService(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mock.Close()

	router := setupRecipeTest(mlbridge.NewClient(mock.URL, time.Second))
	w := doJSON(router, "GET", "/api/recipes/generate?ingredients=tofu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if r := decodeRecipe(t, w); r.Title != "Service Unavailable" {
		t.Errorf("expected fallback recipe, got %+v", r)
	}
}

func TestGenerateRecipe_MissingIngredients(t *testing.T) {
	stub := &stubRecipes{err: errors.New("should not be called")}
	w := doJSON(setupRecipeTest(stub), "GET", "/api/recipes/generate?ingredients=%20", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.last.Ingredients != "" {
		t.Errorf("prediction service should not be called without ingredients")
	}
}

func TestIdentifyIngredients_NotImplemented(t *testing.T) {
	w := doJSON(setupRecipeTest(&stubRecipes{}), "POST", "/api/recipes/identify-ingredients", "")
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
}
