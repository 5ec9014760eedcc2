package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/nutrichef-api/internal/nutrition"
)

// validMealTypes is the set of allowed meal types, keyed lower-case.
// Values are stored in their canonical capitalized form.
var validMealTypes = map[string]nutrition.MealType{
	"breakfast": nutrition.Breakfast,
	"lunch":     nutrition.Lunch,
	"dinner":    nutrition.Dinner,
	"snack":     nutrition.Snack,
}

// currentMonday returns the Monday of the current week at midnight UTC.
// AddDate keeps month and year boundaries correct.
func currentMonday() time.Time {
	now := time.Now().UTC()
	weekday := int(now.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7 // treat Sunday as day 7 so Mon=1..Sun=7
	}
	daysBack := weekday - 1
	return now.AddDate(0, 0, -daysBack).Truncate(24 * time.Hour)
}

// summarizeDay totals a day's items against the daily target. Remaining is
// signed: a negative value means the day is over budget.
func summarizeDay(date string, target int, items []dietLogItem) dailyDietLog {
	consumed := 0
	for _, item := range items {
		consumed += item.Calories
	}
	return dailyDietLog{
		Date:              date,
		DailyTarget:       target,
		CaloriesConsumed:  consumed,
		CaloriesRemaining: target - consumed,
		Items:             items,
	}
}

// buildWeek gap-fills seven days starting at weekStart from the GROUP BY rows.
func buildWeek(weekStart time.Time, target int, rows []dietDayDBRow) []dietDaySummary {
	rowByDate := make(map[string]dietDayDBRow, len(rows))
	for _, r := range rows {
		rowByDate[r.Date.Time.Format("2006-01-02")] = r
	}

	result := make([]dietDaySummary, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		day := dietDaySummary{
			Date:        DateOnly{d},
			DailyTarget: target,
		}
		if row, ok := rowByDate[d.Format("2006-01-02")]; ok {
			day.HasData = true
			day.CaloriesConsumed = row.Calories
			day.ItemCount = row.ItemCount
		}
		day.CaloriesRemaining = target - day.CaloriesConsumed
		result[i] = day
	}
	return result
}

// createDietLogEntry analyzes a food item against the stored profile,
// persists the estimate, and returns both.
// POST /api/diet-log. Defaults date to today if omitted.
func (h *Handler) createDietLogEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createDietLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.FoodItem) == "" {
		apiError(c, http.StatusBadRequest, "foodItem is required")
		return
	}
	mealType, ok := validMealTypes[strings.ToLower(strings.TrimSpace(body.MealType))]
	if !ok {
		apiError(c, http.StatusBadRequest, "mealType must be one of: Breakfast, Lunch, Dinner, Snack")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	u, found, err := h.storedUser(c)
	if err != nil {
		dbError(c, err, "profile not found", "failed to load profile")
		return
	}
	if !found {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	profile := u.profile()
	if err := profile.Validate(); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec := h.engine.AnalyzeDietLog(nutrition.FoodLog{
		FoodItem: body.FoodItem,
		MealType: string(mealType),
		Profile:  profile,
	})

	item, err := queryOne[dietLogItem](h.db, c,
		`INSERT INTO diet_log_items (user_id, date, food_item, meal_type, calories, nutrient_type)
		 VALUES (@userID, @date, @foodItem, @mealType, @calories, @nutrientType)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date, "foodItem": body.FoodItem,
			"mealType": string(mealType), "calories": rec.CaloriesConsumedEstimate,
			"nutrientType": string(rec.NutrientType),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create diet log entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":           item,
		"recommendation": newDietRecommendationResponse(rec),
	})
}

// getDailyDietLog returns the day's logged items and totals against the
// stored profile's daily target.
// GET /api/diet-log/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailyDietLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// An unparseable date would silently match no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[dietLogItem](h.db, c,
		`SELECT * FROM diet_log_items
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	// Ensure items is an empty array (not null) in JSON
	if items == nil {
		items = []dietLogItem{}
	}

	u, found, err := h.storedUser(c)
	if err != nil {
		dbError(c, err, "profile not found", "failed to load profile")
		return
	}
	if !found {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	c.JSON(http.StatusOK, summarizeDay(date, h.engine.DailyCalorieNeeds(u.profile()), items))
}

// getDietWeekSummary returns per-day calorie totals for the Mon–Sun week
// containing week_start. Days with no logged items are included with
// hasData=false.
// GET /api/diet-log/week-summary?week_start=YYYY-MM-DD (defaults to current week).
func (h *Handler) getDietWeekSummary(c *gin.Context) {
	userID := c.GetInt("user_id")

	var weekStart time.Time
	if s := c.Query("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
			return
		}
		weekStart = t
	} else {
		weekStart = currentMonday()
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	u, found, err := h.storedUser(c)
	if err != nil {
		dbError(c, err, "profile not found", "failed to load profile")
		return
	}
	if !found {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	rows, err := queryMany[dietDayDBRow](h.db, c,
		`SELECT date, SUM(calories) AS calories, COUNT(*) AS item_count
		 FROM diet_log_items
		 WHERE user_id = @userID AND date >= @weekStart AND date <= @weekEnd
		 GROUP BY date`,
		pgx.NamedArgs{
			"userID":    userID,
			"weekStart": weekStart.Format("2006-01-02"),
			"weekEnd":   weekEnd.Format("2006-01-02"),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch week data")
		return
	}

	c.JSON(http.StatusOK, buildWeek(weekStart, h.engine.DailyCalorieNeeds(u.profile()), rows))
}

// deleteDietLogEntry removes a diet log entry. Returns 204 on success.
// DELETE /api/diet-log/:id. Ownership is enforced by matching user_id.
func (h *Handler) deleteDietLogEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.db.Exec(c,
		"DELETE FROM diet_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
