package store

import (
	"context"
	"errors"
	"time"

	"fittrack-backend/models"
)

// ErrWorkoutNotFound is returned when no workout matches the given id.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutStore is the persistence boundary for workout entries. Range
// queries are day-granular: callers pass [start, end) with end one day
// after start. Owner scoping is the caller's responsibility for Get,
// Update and Delete; the range queries filter by user themselves.
type WorkoutStore interface {
	Insert(ctx context.Context, workout models.Workout) error
	Get(ctx context.Context, workoutID string) (models.Workout, error)
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Workout, error)
	SumCalories(ctx context.Context, userID string, start, end time.Time) (float64, error)
	CountByDateRange(ctx context.Context, userID string, start, end time.Time) (int, error)
	// CaloriesByCategory returns one row per category present in the range,
	// ordered by category label so chart slices keep a stable order. The ID
	// field is left for the caller to assign.
	CaloriesByCategory(ctx context.Context, userID string, start, end time.Time) ([]models.CategoryCalories, error)
	Update(ctx context.Context, workout models.Workout) error
	Delete(ctx context.Context, workoutID string) error
}
