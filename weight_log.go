package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/nutrichef-api/internal/logger"
)

// maxWeightKg bounds accepted weigh-ins.
const maxWeightKg = 500.0

// parseDateRange checks an inclusive YYYY-MM-DD range and returns a
// user-facing message for the first problem, or "" when it is usable.
func parseDateRange(start, end string) string {
	if start == "" || end == "" {
		return "start and end query params are required"
	}
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return "invalid start, expected YYYY-MM-DD"
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return "invalid end, expected YYYY-MM-DD"
	}
	if from.After(to) {
		return "start must not be after end"
	}
	return ""
}

// getWeightLog lists weigh-ins within [start, end], oldest first.
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) getWeightLog(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if msg := parseDateRange(start, end); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	entries, err := queryMany[weightEntry](h.db, c,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date BETWEEN @start AND @end
		 ORDER BY date`,
		pgx.NamedArgs{"userID": c.GetInt("user_id"), "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}
	if entries == nil {
		entries = []weightEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// upsertWeightEntry creates or updates the weight entry for the given date.
// POST /api/weight-log. Body: { "date": "YYYY-MM-DD", "weightKg": 72.4 }.
// The UNIQUE(user_id, date) constraint means posting the same date updates in place.
// When the entry is the user's newest, the profile weight follows it so
// later calculations use the latest weigh-in.
func (h *Handler) upsertWeightEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Date     string  `json:"date"`
		WeightKg float64 `json:"weightKg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.WeightKg <= 0 || body.WeightKg > maxWeightKg {
		apiError(c, http.StatusBadRequest, "weightKg must be greater than 0 and at most 500")
		return
	}

	args := pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKg": body.WeightKg}
	entry, err := queryOne[weightEntry](h.db, c,
		`INSERT INTO weight_log (user_id, date, weight_kg)
		 VALUES (@userID, @date, @weightKg)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		 RETURNING *`,
		args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert weight entry")
		return
	}

	if _, err := h.db.Exec(c,
		`UPDATE users SET weight_kg = @weightKg
		 WHERE id = @userID
		   AND NOT EXISTS (SELECT 1 FROM weight_log WHERE user_id = @userID AND date > @date)`,
		args); err != nil {
		// The weigh-in itself is saved; a stale profile weight is recoverable.
		logger.Warn("profile weight sync failed", zap.Int("user_id", userID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, entry)
}

// deleteWeightEntry removes one of the caller's weigh-ins.
// DELETE /api/weight-log/:id. 204 on success, 404 when no owned row matches.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tag, err := h.db.Exec(c,
		"DELETE FROM weight_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": c.GetInt("user_id")})
	if err != nil {
		logger.Error("delete weight entry", zap.Int("id", id), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to delete weight entry")
		return
	}
	if tag.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "weight entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}
