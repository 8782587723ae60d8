package repository

import (
	"context"
	"fmt"

	"planhub/internal/model"
	"planhub/pkg/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ITimeLogRepository defines time log persistence and per-task aggregation
type ITimeLogRepository interface {
	Create(ctx context.Context, input *model.TimeLogCreate) (*model.TimeLog, error)
	GetByID(ctx context.Context, id string) (*model.TimeLog, error)
	List(ctx context.Context, skip, limit int64) ([]model.TimeLog, error)
	Update(ctx context.Context, id string, input *model.TimeLogUpdate) (*model.TimeLog, error)
	Delete(ctx context.Context, id string) (bool, error)
	HoursForTask(ctx context.Context, taskID primitive.ObjectID) (hours float64, count int64, err error)
}

// TimeLogRepository implements time log persistence over the time_logs
// collection
type TimeLogRepository struct {
	docs *docstore.Collection[model.TimeLog]
}

func NewTimeLogRepository(db *mongo.Database) ITimeLogRepository {
	return &TimeLogRepository{docs: docstore.NewCollection[model.TimeLog](db, "time_logs")}
}

func (r *TimeLogRepository) Create(ctx context.Context, input *model.TimeLogCreate) (*model.TimeLog, error) {
	return r.docs.Create(ctx, input)
}

func (r *TimeLogRepository) GetByID(ctx context.Context, id string) (*model.TimeLog, error) {
	return r.docs.GetByID(ctx, id)
}

func (r *TimeLogRepository) List(ctx context.Context, skip, limit int64) ([]model.TimeLog, error) {
	return r.docs.List(ctx, skip, limit)
}

func (r *TimeLogRepository) Update(ctx context.Context, id string, input *model.TimeLogUpdate) (*model.TimeLog, error) {
	return r.docs.Update(ctx, id, input)
}

func (r *TimeLogRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.docs.Delete(ctx, id)
}

// HoursForTask sums hours spent and counts log entries recorded against the
// task. Zero/zero when the task has no logs.
func (r *TimeLogRepository) HoursForTask(ctx context.Context, taskID primitive.ObjectID) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"task_id": taskID}}},
		{{Key: "$group", Value: bson.M{
			"_id":               nil,
			"total_hours_spent": bson.M{"$sum": "$hours_spent"},
			"log_count":         bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.docs.Raw().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate time logs: %w", err)
	}

	var results []struct {
		TotalHoursSpent float64 `bson:"total_hours_spent"`
		LogCount        int64   `bson:"log_count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("aggregate time logs: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].TotalHoursSpent, results[0].LogCount, nil
}
