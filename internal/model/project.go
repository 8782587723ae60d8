package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectStatusPlanning  = "Planning"
	ProjectStatusActive    = "Active"
	ProjectStatusOnHold    = "On Hold"
	ProjectStatusCompleted = "Completed"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	StartDate   *time.Time         `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
}

// ProjectCreate is the input for a new project. The id is assigned by the
// store on insert.
type ProjectCreate struct {
	Name        string     `bson:"name" json:"name" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Status      string     `bson:"status,omitempty" json:"status,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
}

// ProjectUpdate carries a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string    `bson:"name,omitempty" json:"name,omitempty"`
	Description *string    `bson:"description,omitempty" json:"description,omitempty"`
	Status      *string    `bson:"status,omitempty" json:"status,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
}
