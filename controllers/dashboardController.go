package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fittrack-backend/helpers"
	"fittrack-backend/models"
	"fittrack-backend/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// buildDashboardSummary computes one day's totals plus the 7-day trend
// ending on the reference date. Each trend day is its own range query so
// every day boundary comes from calendar arithmetic in the reference
// location; nothing is cached or carried between calls.
func buildDashboardSummary(ctx context.Context, s store.WorkoutStore, userID string, reference time.Time) (models.DashboardSummary, error) {
	start, end := dayRange(reference)

	totalCalories, err := s.SumCalories(ctx, userID, start, end)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	totalWorkouts, err := s.CountByDateRange(ctx, userID, start, end)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	avgCalories := 0.0
	if totalWorkouts > 0 {
		avgCalories = totalCalories / float64(totalWorkouts)
	}

	categories, err := s.CaloriesByCategory(ctx, userID, start, end)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	pieChartData := make([]models.CategoryCalories, 0, len(categories))
	for i, category := range categories {
		pieChartData = append(pieChartData, models.CategoryCalories{
			ID:    i,
			Value: category.Value,
			Label: category.Label,
		})
	}

	weekly := models.WeeklyCalories{
		Weeks:          make([]string, 0, 7),
		CaloriesBurned: make([]float64, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		dayStart, dayEnd := dayRange(day)

		burnt, err := s.SumCalories(ctx, userID, dayStart, dayEnd)
		if err != nil {
			return models.DashboardSummary{}, err
		}

		// The dashboard chart expects the bare "th" suffix on every day.
		weekly.Weeks = append(weekly.Weeks, fmt.Sprintf("%dth", day.Day()))
		weekly.CaloriesBurned = append(weekly.CaloriesBurned, burnt)
	}

	return models.DashboardSummary{
		TotalCaloriesBurnt:         totalCalories,
		TotalWorkouts:              totalWorkouts,
		AvgCaloriesBurntPerWorkout: avgCalories,
		TotalWeeksCaloriesBurnt:    weekly,
		PieChartData:               pieChartData,
	}, nil
}

func GetUserDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		date, err := parseWorkoutDate(c.Query("date"))
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		summary, err := buildDashboardSummary(ctx, workoutStore, userID, date)
		if err != nil {
			log.WithError(err).Error("could not build dashboard summary")
			helpers.RespondError(c, storeError(err))
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}
