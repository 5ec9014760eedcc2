// Package mlbridge calls the external prediction service over HTTP. The
// service is a black box: every failure is reported as ErrUnavailable and
// callers substitute FallbackRecipe.
package mlbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable wraps every transport, status and decoding failure.
var ErrUnavailable = errors.New("ml service unavailable")

// RecipeRequest is the body of POST /predict/recipe.
type RecipeRequest struct {
	Ingredients         string `json:"ingredients"`
	Cuisine             string `json:"cuisine"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
}

// Recipe is the prediction service's recipe response.
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CuisineType  string   `json:"cuisineType"`
	Calories     int      `json:"calories"`
	ImageURL     string   `json:"imageUrl"`
}

// FallbackRecipe is returned to users when the prediction service cannot
// answer. Calories are zero so nothing downstream counts it as food.
func FallbackRecipe() Recipe {
	return Recipe{
		Title:        "Service Unavailable",
		Ingredients:  []string{"Error"},
		Instructions: "Could not generate recipe. Ensure Python Service is running.",
		CuisineType:  "None",
		Calories:     0,
		ImageURL:     "",
	}
}

// Client talks to the prediction service at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client whose requests are bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GenerateRecipe asks the service for a recipe. Any error wraps ErrUnavailable.
func (c *Client) GenerateRecipe(ctx context.Context, req RecipeRequest) (Recipe, error) {
	var recipe Recipe
	if err := c.post(ctx, "/predict/recipe", req, &recipe); err != nil {
		return Recipe{}, err
	}
	if recipe.Title == "" {
		return Recipe{}, fmt.Errorf("%w: empty recipe", ErrUnavailable)
	}
	return recipe, nil
}

// post sends body as JSON and decodes a 200 response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(respBytes))
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}
	return nil
}
