package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lg/nutrichef-api/internal/logger"
	"lg/nutrichef-api/internal/mlbridge"
	"lg/nutrichef-api/internal/nutrition"
)

// recipeGenerator is the prediction-service call the recipe handler needs.
// *mlbridge.Client satisfies it.
type recipeGenerator interface {
	GenerateRecipe(ctx context.Context, req mlbridge.RecipeRequest) (mlbridge.Recipe, error)
}

// Handler holds shared dependencies for all route handlers. The engine is
// stateless and shared across requests.
type Handler struct {
	db     *pgxpool.Pool
	engine *nutrition.Engine
	ml     recipeGenerator
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		logger.Error("query failed", zap.String("fn", "queryOne"), zap.Error(err))
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Warn("scan failed", zap.String("fn", "queryOne"), zap.Error(err))
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(c, sql, args)
	if err != nil {
		logger.Error("query failed", zap.String("fn", "queryMany"), zap.Error(err))
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Warn("scan failed", zap.String("fn", "queryMany"), zap.Error(err))
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// dbError maps a query error to a response: a missing row is a 404 with
// notFound, anything else a 500 with failed.
func dbError(c *gin.Context, err error, notFound, failed string) {
	if errors.Is(err, pgx.ErrNoRows) {
		apiError(c, http.StatusNotFound, notFound)
		return
	}
	apiError(c, http.StatusInternalServerError, failed)
}

// pathID parses the :id route param. It writes a 400 and returns false when
// the param is not a positive integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		apiError(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// storedUser loads the authenticated user's row. ok is false when the
// request is anonymous or there is no database. Query errors, including
// pgx.ErrNoRows, are returned unchanged.
func (h *Handler) storedUser(c *gin.Context) (u user, ok bool, err error) {
	userID, authed := c.Get("user_id")
	if !authed || h.db == nil {
		return user{}, false, nil
	}
	u, err = queryOne[user](h.db, c,
		"SELECT * FROM users WHERE id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		return user{}, false, err
	}
	return u, true, nil
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newDBPool creates a connection pool and pings it. We use a pool (not a
// single conn) because Neon closes idle connections after ~5 minutes.
func newDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from Neon's server-side prepared statement cache after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/", welcome)
	router.GET("/health", healthCheck)

	// Public routes
	router.POST("/api/auth/register", h.register)
	router.POST("/api/auth/login", h.login)

	// Analysis routes work anonymously with an inline profile; a valid token
	// lets them fall back to the stored profile.
	open := router.Group("/api", h.optionalAuthMiddleware())
	open.POST("/health/analyze", h.analyzeHealth)
	open.POST("/diet/recommend", h.recommendDiet)
	open.POST("/meal-plan/generate", h.generateMealPlan)
	open.GET("/recipes/generate", h.generateRecipe)
	open.POST("/recipes/identify-ingredients", identifyIngredients)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.POST("/diet-log", h.createDietLogEntry)
	api.GET("/diet-log/daily", h.getDailyDietLog)
	api.GET("/diet-log/week-summary", h.getDietWeekSummary)
	api.DELETE("/diet-log/:id", h.deleteDietLogEntry)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
}

// welcome handles GET /.
func welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to NutriChef AI API")
}

// healthCheck handles GET /health. Liveness only; it does not touch the DB.
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "NutriChef AI Backend is Running - OK")
}
