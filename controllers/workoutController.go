package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fittrack-backend/database"
	"fittrack-backend/helpers"
	"fittrack-backend/models"
	"fittrack-backend/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var workoutStore store.WorkoutStore = store.NewMongoWorkoutStore(database.OpenCollection(database.Client, "workout"))

// parseWorkoutDate accepts YYYY-MM-DD and DD-MM-YYYY. An empty value means
// today.
func parseWorkoutDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	layout := "02-01-2006"
	if parts := strings.Split(value, "-"); len(parts[0]) == 4 {
		layout = "2006-01-02"
	}

	parsed, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, helpers.NewValidationError("Invalid date format, use YYYY-MM-DD")
	}
	return parsed, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayRange returns [startOfDay, startOfDay+1d) for the given moment.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := startOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrWorkoutNotFound):
		return helpers.NewNotFoundError("Workout not found")
	case errors.Is(err, context.DeadlineExceeded):
		return helpers.NewTimeoutError("Workout store is not responding")
	default:
		return err
	}
}

func AddWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		var req struct {
			WorkoutString string `json:"workoutString"`
			Date          string `json:"date"`
		}
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}
		if req.WorkoutString == "" {
			helpers.RespondError(c, helpers.NewValidationError("workoutString is required"))
			return
		}

		workoutDate, err := parseWorkoutDate(req.Date)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		drafts, err := ParseWorkoutLog(req.WorkoutString)
		if err != nil {
			helpers.RespondError(c, helpers.NewValidationError(err.Error()))
			return
		}
		if drafts == nil {
			drafts = []models.WorkoutDraft{}
		}

		// The insert loop is not atomic across entries: a failure partway
		// leaves earlier entries committed.
		for i := range drafts {
			drafts[i].CaloriesBurned = EstimateCalories(drafts[i].Duration, drafts[i].Weight)

			workout := models.Workout{
				ID:             primitive.NewObjectID(),
				UserID:         userID,
				Category:       drafts[i].Category,
				WorkoutName:    drafts[i].WorkoutName,
				Sets:           drafts[i].Sets,
				Reps:           drafts[i].Reps,
				Weight:         drafts[i].Weight,
				Duration:       drafts[i].Duration,
				CaloriesBurned: drafts[i].CaloriesBurned,
				Date:           workoutDate,
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}
			workout.WorkoutID = workout.ID.Hex()

			if err := workoutStore.Insert(ctx, workout); err != nil {
				log.WithError(err).Error("could not insert workout")
				helpers.RespondError(c, storeError(err))
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Workouts added successfully",
			"workouts": drafts,
		})
	}
}

func GetWorkoutsByDate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		date, err := parseWorkoutDate(c.Query("date"))
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		start, end := dayRange(date)
		workouts, err := workoutStore.ListByDateRange(ctx, userID, start, end)
		if err != nil {
			log.WithError(err).Error("could not list workouts")
			helpers.RespondError(c, storeError(err))
			return
		}
		if workouts == nil {
			workouts = []models.Workout{}
		}

		totalCaloriesBurnt := 0.0
		for _, workout := range workouts {
			totalCaloriesBurnt += workout.CaloriesBurned
		}

		c.JSON(http.StatusOK, gin.H{
			"todaysWorkouts":     workouts,
			"totalCaloriesBurnt": totalCaloriesBurnt,
		})
	}
}

func UpdateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")
		workoutID := c.Param("id")

		var req models.UpdateWorkoutRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}
		if err := validateWorkoutUpdate(req); err != nil {
			helpers.RespondError(c, err)
			return
		}

		workout, err := workoutStore.Get(ctx, workoutID)
		if err != nil {
			helpers.RespondError(c, storeError(err))
			return
		}

		if workout.UserID != userID {
			helpers.RespondError(c, helpers.NewForbiddenError("You can only update your own workouts"))
			return
		}

		if req.WorkoutName != nil {
			workout.WorkoutName = *req.WorkoutName
		}
		if req.Category != nil {
			workout.Category = *req.Category
		}
		if req.Sets != nil {
			workout.Sets = *req.Sets
		}
		if req.Reps != nil {
			workout.Reps = *req.Reps
		}
		if req.Weight != nil {
			workout.Weight = *req.Weight
		}
		if req.Duration != nil {
			workout.Duration = *req.Duration
		}

		// Calories are always re-derived from the merged values, never
		// trusted from the stored document.
		workout.CaloriesBurned = EstimateCalories(workout.Duration, workout.Weight)
		workout.UpdatedAt = time.Now()

		if err := workoutStore.Update(ctx, workout); err != nil {
			helpers.RespondError(c, storeError(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Workout updated successfully",
			"workout": workout,
		})
	}
}

func validateWorkoutUpdate(req models.UpdateWorkoutRequest) error {
	if req.WorkoutName != nil && strings.TrimSpace(*req.WorkoutName) == "" {
		return helpers.NewValidationError("workoutName must not be empty")
	}
	if req.Sets != nil && *req.Sets < 1 {
		return helpers.NewValidationError("sets must be at least 1")
	}
	if req.Reps != nil && *req.Reps < 1 {
		return helpers.NewValidationError("reps must be at least 1")
	}
	if req.Weight != nil && *req.Weight < 0 {
		return helpers.NewValidationError("weight must not be negative")
	}
	if req.Duration != nil && *req.Duration < 0 {
		return helpers.NewValidationError("duration must not be negative")
	}
	return nil
}

func DeleteWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")
		workoutID := c.Param("id")

		workout, err := workoutStore.Get(ctx, workoutID)
		if err != nil {
			helpers.RespondError(c, storeError(err))
			return
		}

		if workout.UserID != userID {
			helpers.RespondError(c, helpers.NewForbiddenError("You can only delete your own workouts"))
			return
		}

		if err := workoutStore.Delete(ctx, workoutID); err != nil {
			helpers.RespondError(c, storeError(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
	}
}
