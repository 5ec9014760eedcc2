package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lg/nutrichef-api/internal/logger"
)

// dummyHash is a pre-computed bcrypt hash used when a login username isn't found.
// Running bcrypt against it (instead of returning early) keeps response time
// constant, preventing timing-based username enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// register creates a user with a bcrypt-hashed password and a fresh auth token.
// POST /api/auth/register (public). Profile fields are optional.
func (h *Handler) register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Password == "" {
		apiError(c, http.StatusBadRequest, "username and password are required")
		return
	}
	if msg := validateProfilePatch(patchProfileRequest{
		WeightKg: body.WeightKg, HeightCm: body.HeightCm, Age: body.Age, Gender: body.Gender,
	}); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	u, err := queryOne[user](h.db, c,
		`INSERT INTO users (username, password, auth_token, weight_kg, height_cm, age,
		                    gender, activity_level, health_goals, dietary_restrictions)
		 VALUES (@username, @password, @authToken, @weightKg, @heightCm, @age,
		         @gender, @activityLevel, @healthGoals, @dietaryRestrictions)
		 RETURNING *`,
		pgx.NamedArgs{
			"username": body.Username, "password": string(hash), "authToken": uuid.New().String(),
			"weightKg": body.WeightKg, "heightCm": body.HeightCm, "age": body.Age,
			"gender": canonicalGender(body.Gender), "activityLevel": body.ActivityLevel,
			"healthGoals": body.HealthGoals, "dietaryRestrictions": body.DietaryRestrictions,
		})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			apiError(c, http.StatusConflict, "username already taken")
			return
		}
		apiError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": u.AuthToken, "user_id": u.ID})
}

// login verifies username/password and returns the user's auth token.
// POST /api/auth/login (public).
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, lookupErr := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": body.Username})

	// bcrypt runs even for unknown usernames so timing does not reveal them.
	hashToCheck := string(dummyHash)
	if lookupErr == nil {
		hashToCheck = u.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(body.Password))

	if lookupErr != nil || compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": u.AuthToken, "user_id": u.ID})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// lookupToken resolves a token to a user id.
func (h *Handler) lookupToken(c *gin.Context, token string) (int, error) {
	var userID int
	err := h.db.QueryRow(c, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&userID)
	return userID, err
}

// authMiddleware validates the Bearer token and sets user_id on the context.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		userID, err := h.lookupToken(c, token)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// optionalAuthMiddleware sets user_id when a valid Bearer token is present and
// lets anonymous requests through. A token that is present but unknown is
// still rejected so clients notice a stale session.
func (h *Handler) optionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || h.db == nil {
			c.Next()
			return
		}

		userID, err := h.lookupToken(c, token)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
