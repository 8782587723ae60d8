package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TimeLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskID      primitive.ObjectID `bson:"task_id,omitempty" json:"task_id"`
	MemberID    primitive.ObjectID `bson:"member_id,omitempty" json:"member_id"`
	HoursSpent  float64            `bson:"hours_spent" json:"hours_spent"`
	Date        *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type TimeLogCreate struct {
	TaskID      string     `bson:"task_id" json:"task_id" binding:"required"`
	MemberID    string     `bson:"member_id,omitempty" json:"member_id,omitempty"`
	HoursSpent  float64    `bson:"hours_spent" json:"hours_spent" binding:"required,gt=0"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// TimeLogUpdate carries a partial update; nil fields are left untouched.
type TimeLogUpdate struct {
	TaskID      *string    `bson:"task_id,omitempty" json:"task_id,omitempty"`
	MemberID    *string    `bson:"member_id,omitempty" json:"member_id,omitempty"`
	HoursSpent  *float64   `bson:"hours_spent,omitempty" json:"hours_spent,omitempty"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Description *string    `bson:"description,omitempty" json:"description,omitempty"`
}
