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

// ITaskRepository defines task persistence and workload aggregation
type ITaskRepository interface {
	Create(ctx context.Context, input *model.TaskCreate) (*model.Task, error)
	GetByID(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context, skip, limit int64) ([]model.Task, error)
	Update(ctx context.Context, id string, input *model.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
	ActiveWorkload(ctx context.Context, memberID primitive.ObjectID) (hours float64, count int64, err error)
}

// TaskRepository implements task persistence over the tasks collection
type TaskRepository struct {
	docs *docstore.Collection[model.Task]
}

func NewTaskRepository(db *mongo.Database) ITaskRepository {
	return &TaskRepository{docs: docstore.NewCollection[model.Task](db, "tasks")}
}

func (r *TaskRepository) Create(ctx context.Context, input *model.TaskCreate) (*model.Task, error) {
	return r.docs.Create(ctx, input)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return r.docs.GetByID(ctx, id)
}

func (r *TaskRepository) List(ctx context.Context, skip, limit int64) ([]model.Task, error) {
	return r.docs.List(ctx, skip, limit)
}

func (r *TaskRepository) Update(ctx context.Context, id string, input *model.TaskUpdate) (*model.Task, error) {
	return r.docs.Update(ctx, id, input)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.docs.Delete(ctx, id)
}

// ActiveWorkload sums estimated hours and counts tasks assigned to the member
// whose status is not Done. Zero/zero when nothing matches.
func (r *TaskRepository) ActiveWorkload(ctx context.Context, memberID primitive.ObjectID) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"assigned_to_ids": memberID,
			"status":          bson.M{"$ne": model.TaskStatusDone},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":                   nil,
			"total_estimated_hours": bson.M{"$sum": "$estimated_duration_hours"},
			"active_tasks_count":    bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.docs.Raw().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate workload: %w", err)
	}

	var results []struct {
		TotalEstimatedHours float64 `bson:"total_estimated_hours"`
		ActiveTasksCount    int64   `bson:"active_tasks_count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("aggregate workload: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].TotalEstimatedHours, results[0].ActiveTasksCount, nil
}
