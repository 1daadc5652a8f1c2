package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"fittrack-backend/models"
)

// MemoryWorkoutStore is an in-memory WorkoutStore used by tests.
type MemoryWorkoutStore struct {
	mu       sync.RWMutex
	workouts map[string]models.Workout
	order    []string
}

func NewMemoryWorkoutStore() *MemoryWorkoutStore {
	return &MemoryWorkoutStore{workouts: make(map[string]models.Workout)}
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && date.Before(end)
}

func (s *MemoryWorkoutStore) Insert(_ context.Context, workout models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.workouts[workout.WorkoutID]; !exists {
		s.order = append(s.order, workout.WorkoutID)
	}
	s.workouts[workout.WorkoutID] = workout
	return nil
}

func (s *MemoryWorkoutStore) Get(_ context.Context, workoutID string) (models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workout, ok := s.workouts[workoutID]
	if !ok {
		return models.Workout{}, ErrWorkoutNotFound
	}
	return workout, nil
}

func (s *MemoryWorkoutStore) ListByDateRange(_ context.Context, userID string, start, end time.Time) ([]models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var workouts []models.Workout
	for _, id := range s.order {
		workout := s.workouts[id]
		if workout.UserID == userID && inRange(workout.Date, start, end) {
			workouts = append(workouts, workout)
		}
	}
	return workouts, nil
}

func (s *MemoryWorkoutStore) SumCalories(ctx context.Context, userID string, start, end time.Time) (float64, error) {
	workouts, _ := s.ListByDateRange(ctx, userID, start, end)
	total := 0.0
	for _, workout := range workouts {
		total += workout.CaloriesBurned
	}
	return total, nil
}

func (s *MemoryWorkoutStore) CountByDateRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	workouts, _ := s.ListByDateRange(ctx, userID, start, end)
	return len(workouts), nil
}

func (s *MemoryWorkoutStore) CaloriesByCategory(ctx context.Context, userID string, start, end time.Time) ([]models.CategoryCalories, error) {
	workouts, _ := s.ListByDateRange(ctx, userID, start, end)

	totals := make(map[string]float64)
	for _, workout := range workouts {
		totals[workout.Category] += workout.CaloriesBurned
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	categories := make([]models.CategoryCalories, 0, len(labels))
	for _, label := range labels {
		categories = append(categories, models.CategoryCalories{Value: totals[label], Label: label})
	}
	return categories, nil
}

func (s *MemoryWorkoutStore) Update(_ context.Context, workout models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workouts[workout.WorkoutID]; !ok {
		return ErrWorkoutNotFound
	}
	s.workouts[workout.WorkoutID] = workout
	return nil
}

func (s *MemoryWorkoutStore) Delete(_ context.Context, workoutID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workouts[workoutID]; !ok {
		return ErrWorkoutNotFound
	}
	delete(s.workouts, workoutID)
	for i, id := range s.order {
		if id == workoutID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
