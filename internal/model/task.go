package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses. TaskStatusDone is terminal and excluded from workload.
const (
	TaskStatusTodo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

type Task struct {
	ID                     primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                   string               `bson:"name" json:"name"`
	Description            string               `bson:"description,omitempty" json:"description,omitempty"`
	ProjectID              primitive.ObjectID   `bson:"project_id,omitempty" json:"project_id"`
	AssignedToIDs          []primitive.ObjectID `bson:"assigned_to_ids,omitempty" json:"assigned_to_ids,omitempty"`
	Status                 string               `bson:"status" json:"status"`
	Priority               string               `bson:"priority,omitempty" json:"priority,omitempty"`
	EstimatedDurationHours float64              `bson:"estimated_duration_hours" json:"estimated_duration_hours"`
	DueDate                *time.Time           `bson:"due_date,omitempty" json:"due_date,omitempty"`
}

// TaskCreate is the input for a new task. Reference fields arrive as hex
// strings and are normalized to native ids by the document layer.
type TaskCreate struct {
	Name                   string     `bson:"name" json:"name" binding:"required"`
	Description            string     `bson:"description,omitempty" json:"description,omitempty"`
	ProjectID              string     `bson:"project_id,omitempty" json:"project_id,omitempty"`
	AssignedToIDs          []string   `bson:"assigned_to_ids,omitempty" json:"assigned_to_ids,omitempty"`
	Status                 string     `bson:"status,omitempty" json:"status,omitempty"`
	Priority               string     `bson:"priority,omitempty" json:"priority,omitempty"`
	EstimatedDurationHours float64    `bson:"estimated_duration_hours,omitempty" json:"estimated_duration_hours,omitempty"`
	DueDate                *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Name                   *string    `bson:"name,omitempty" json:"name,omitempty"`
	Description            *string    `bson:"description,omitempty" json:"description,omitempty"`
	ProjectID              *string    `bson:"project_id,omitempty" json:"project_id,omitempty"`
	AssignedToIDs          []string   `bson:"assigned_to_ids,omitempty" json:"assigned_to_ids,omitempty"`
	Status                 *string    `bson:"status,omitempty" json:"status,omitempty"`
	Priority               *string    `bson:"priority,omitempty" json:"priority,omitempty"`
	EstimatedDurationHours *float64   `bson:"estimated_duration_hours,omitempty" json:"estimated_duration_hours,omitempty"`
	DueDate                *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
}
