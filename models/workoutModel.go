package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single persisted workout entry. Every read, update and
// delete is scoped to the owning user.
type Workout struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	WorkoutID      string             `json:"workout_id" bson:"workout_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	Category       string             `json:"category" bson:"category"`
	WorkoutName    string             `json:"workoutName" bson:"workout_name"`
	Sets           int                `json:"sets" bson:"sets"`
	Reps           int                `json:"reps" bson:"reps"`
	Weight         float64            `json:"weight" bson:"weight"`
	Duration       float64            `json:"duration" bson:"duration"`
	CaloriesBurned float64            `json:"caloriesBurned" bson:"calories_burned"`
	Date           time.Time          `json:"date" bson:"date"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// WorkoutDraft is a parsed-but-not-yet-persisted entry produced by the
// workout log parser.
type WorkoutDraft struct {
	Category       string  `json:"category"`
	WorkoutName    string  `json:"workoutName"`
	Sets           int     `json:"sets"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	Duration       float64 `json:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

// UpdateWorkoutRequest carries the partial fields of a workout update. A
// nil field keeps the stored value.
type UpdateWorkoutRequest struct {
	WorkoutName *string  `json:"workoutName"`
	Category    *string  `json:"category"`
	Sets        *int     `json:"sets"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	Duration    *float64 `json:"duration"`
}
