package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fittrack-backend/models"
	"fittrack-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkoutStore(t *testing.T) *store.MemoryWorkoutStore {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemoryWorkoutStore()
	previous := workoutStore
	workoutStore = mem
	t.Cleanup(func() { workoutStore = previous })
	return mem
}

func performRequest(handler gin.HandlerFunc, uid, method, target, body string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("uid", uid)
	handler(c)
	return w
}

func TestAddWorkoutPersistsParsedEntries(t *testing.T) {
	mem := setupWorkoutStore(t)

	body := `{"workoutString": "#Chest\nBench Press\n3 sets x 10 reps\n50kg\n30mins", "date": "2024-05-17"}`
	w := performRequest(AddWorkout(), "user-1", http.MethodPost, "/user/workout", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	start := time.Date(2024, time.May, 17, 0, 0, 0, 0, time.Local)
	workouts, err := mem.ListByDateRange(context.Background(), "user-1", start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	workout := workouts[0]
	assert.Equal(t, "user-1", workout.UserID)
	assert.Equal(t, "Bench Press", workout.WorkoutName)
	assert.Equal(t, 7500.0, workout.CaloriesBurned)
	assert.NotEmpty(t, workout.WorkoutID)
}

func TestAddWorkoutRequiresWorkoutString(t *testing.T) {
	setupWorkoutStore(t)

	w := performRequest(AddWorkout(), "user-1", http.MethodPost, "/user/workout", `{"date": "2024-05-17"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "workoutString is required")
}

func TestAddWorkoutRequiresCategoryMarker(t *testing.T) {
	setupWorkoutStore(t)

	body := `{"workoutString": "Bench Press\n3 sets x 10 reps\n50kg\n30mins"}`
	w := performRequest(AddWorkout(), "user-1", http.MethodPost, "/user/workout", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No categories found")
}

func TestAddWorkoutOnlyCategoryMarkersReturnsEmptySlice(t *testing.T) {
	setupWorkoutStore(t)

	body := `{"workoutString": "#Chest\n#Legs"}`
	w := performRequest(AddWorkout(), "user-1", http.MethodPost, "/user/workout", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Workouts []models.WorkoutDraft `json:"workouts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Workouts)
	assert.Empty(t, resp.Workouts)
	assert.Contains(t, w.Body.String(), `"workouts":[]`)
}

func TestGetWorkoutsByDate(t *testing.T) {
	mem := setupWorkoutStore(t)
	day := time.Date(2024, time.May, 17, 10, 0, 0, 0, time.Local)

	seedWorkout(t, mem, "w1", "user-1", "Chest", 7500, day)
	seedWorkout(t, mem, "w2", "user-1", "Legs", 2500, day.Add(2*time.Hour))
	seedWorkout(t, mem, "w3", "user-1", "Back", 4000, day.AddDate(0, 0, 1))

	w := performRequest(GetWorkoutsByDate(), "user-1", http.MethodGet, "/user/workout?date=2024-05-17", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		TodaysWorkouts     []models.Workout `json:"todaysWorkouts"`
		TotalCaloriesBurnt float64          `json:"totalCaloriesBurnt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.TodaysWorkouts, 2)
	assert.Equal(t, 10000.0, resp.TotalCaloriesBurnt)
}

func TestUpdateWorkoutRecomputesCalories(t *testing.T) {
	mem := setupWorkoutStore(t)
	day := time.Now()

	require.NoError(t, mem.Insert(context.Background(), models.Workout{
		WorkoutID:      "w1",
		UserID:         "user-1",
		Category:       "Chest",
		WorkoutName:    "Bench Press",
		Sets:           3,
		Reps:           10,
		Weight:         50,
		Duration:       30,
		CaloriesBurned: 999, // stale on purpose
		Date:           day,
	}))

	w := performRequest(UpdateWorkout(), "user-1", http.MethodPut, "/user/workout/w1", `{"sets": 5}`,
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := mem.Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Sets)
	assert.Equal(t, "Bench Press", updated.WorkoutName)
	// Calories re-derived from the merged duration/weight, not the stale value.
	assert.Equal(t, 7500.0, updated.CaloriesBurned)
}

func TestUpdateWorkoutForbiddenForNonOwner(t *testing.T) {
	mem := setupWorkoutStore(t)

	require.NoError(t, mem.Insert(context.Background(), models.Workout{
		WorkoutID:   "w1",
		UserID:      "someone-else",
		WorkoutName: "Deadlift",
		Sets:        3,
		Reps:        5,
		Date:        time.Now(),
	}))

	w := performRequest(UpdateWorkout(), "user-1", http.MethodPut, "/user/workout/w1", `{"sets": 9}`,
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusForbidden, w.Code)

	unchanged, err := mem.Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, 3, unchanged.Sets)
}

func TestUpdateWorkoutNotFound(t *testing.T) {
	setupWorkoutStore(t)

	w := performRequest(UpdateWorkout(), "user-1", http.MethodPut, "/user/workout/missing", `{"sets": 2}`,
		gin.Params{{Key: "id", Value: "missing"}})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateWorkoutRejectsInvalidFields(t *testing.T) {
	setupWorkoutStore(t)

	w := performRequest(UpdateWorkout(), "user-1", http.MethodPut, "/user/workout/w1", `{"sets": 0}`,
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(UpdateWorkout(), "user-1", http.MethodPut, "/user/workout/w1", `{"weight": -10}`,
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWorkoutOwnerScoped(t *testing.T) {
	mem := setupWorkoutStore(t)

	require.NoError(t, mem.Insert(context.Background(), models.Workout{
		WorkoutID: "w1",
		UserID:    "someone-else",
		Date:      time.Now(),
	}))

	w := performRequest(DeleteWorkout(), "user-1", http.MethodDelete, "/user/workout/w1", "",
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusForbidden, w.Code)

	_, err := mem.Get(context.Background(), "w1")
	require.NoError(t, err)

	w = performRequest(DeleteWorkout(), "someone-else", http.MethodDelete, "/user/workout/w1", "",
		gin.Params{{Key: "id", Value: "w1"}})
	require.Equal(t, http.StatusOK, w.Code)

	_, err = mem.Get(context.Background(), "w1")
	require.ErrorIs(t, err, store.ErrWorkoutNotFound)
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	setupWorkoutStore(t)

	w := performRequest(DeleteWorkout(), "user-1", http.MethodDelete, "/user/workout/missing", "",
		gin.Params{{Key: "id", Value: "missing"}})
	require.Equal(t, http.StatusNotFound, w.Code)
}
