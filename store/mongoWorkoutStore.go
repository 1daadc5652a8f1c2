package store

import (
	"context"
	"time"

	"fittrack-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoWorkoutStore keeps workout entries in a mongo collection, using the
// aggregation pipelines the dashboard is built on.
type MongoWorkoutStore struct {
	collection *mongo.Collection
}

func NewMongoWorkoutStore(collection *mongo.Collection) *MongoWorkoutStore {
	return &MongoWorkoutStore{collection: collection}
}

func rangeFilter(userID string, start, end time.Time) bson.M {
	return bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}
}

func (s *MongoWorkoutStore) Insert(ctx context.Context, workout models.Workout) error {
	_, err := s.collection.InsertOne(ctx, workout)
	return err
}

func (s *MongoWorkoutStore) Get(ctx context.Context, workoutID string) (models.Workout, error) {
	var workout models.Workout
	err := s.collection.FindOne(ctx, bson.M{"workout_id": workoutID}).Decode(&workout)
	if err == mongo.ErrNoDocuments {
		return models.Workout{}, ErrWorkoutNotFound
	}
	if err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (s *MongoWorkoutStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Workout, error) {
	cursor, err := s.collection.Find(ctx, rangeFilter(userID, start, end))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *MongoWorkoutStore) SumCalories(ctx context.Context, userID string, start, end time.Time) (float64, error) {
	matchStage := bson.D{{Key: "$match", Value: rangeFilter(userID, start, end)}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "totalCaloriesBurnt", Value: bson.D{{Key: "$sum", Value: "$calories_burned"}}},
	}}}

	cursor, err := s.collection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return 0, err
	}

	var results []struct {
		TotalCaloriesBurnt float64 `bson:"totalCaloriesBurnt"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalCaloriesBurnt, nil
}

func (s *MongoWorkoutStore) CountByDateRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	count, err := s.collection.CountDocuments(ctx, rangeFilter(userID, start, end))
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *MongoWorkoutStore) CaloriesByCategory(ctx context.Context, userID string, start, end time.Time) ([]models.CategoryCalories, error) {
	matchStage := bson.D{{Key: "$match", Value: rangeFilter(userID, start, end)}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$category"},
		{Key: "totalCaloriesBurnt", Value: bson.D{{Key: "$sum", Value: "$calories_burned"}}},
	}}}
	// $group output order is unspecified, so pin the slice order.
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}

	cursor, err := s.collection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage, sortStage})
	if err != nil {
		return nil, err
	}

	var results []struct {
		Category           string  `bson:"_id"`
		TotalCaloriesBurnt float64 `bson:"totalCaloriesBurnt"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	categories := make([]models.CategoryCalories, 0, len(results))
	for _, result := range results {
		categories = append(categories, models.CategoryCalories{
			Value: result.TotalCaloriesBurnt,
			Label: result.Category,
		})
	}
	return categories, nil
}

func (s *MongoWorkoutStore) Update(ctx context.Context, workout models.Workout) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "workout_name", Value: workout.WorkoutName},
			{Key: "category", Value: workout.Category},
			{Key: "sets", Value: workout.Sets},
			{Key: "reps", Value: workout.Reps},
			{Key: "weight", Value: workout.Weight},
			{Key: "duration", Value: workout.Duration},
			{Key: "calories_burned", Value: workout.CaloriesBurned},
			{Key: "updated_at", Value: workout.UpdatedAt},
		}},
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"workout_id": workout.WorkoutID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (s *MongoWorkoutStore) Delete(ctx context.Context, workoutID string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"workout_id": workoutID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
