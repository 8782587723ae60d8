package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Member struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	Role                string             `bson:"role,omitempty" json:"role,omitempty"`
	Skills              []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	AvailabilityPercent float64            `bson:"availability_percent" json:"availability_percent"`
}

type MemberCreate struct {
	Name                string   `bson:"name" json:"name" binding:"required"`
	Email               string   `bson:"email" json:"email" binding:"required,email"`
	Role                string   `bson:"role,omitempty" json:"role,omitempty"`
	Skills              []string `bson:"skills,omitempty" json:"skills,omitempty"`
	AvailabilityPercent float64  `bson:"availability_percent,omitempty" json:"availability_percent,omitempty"`
}

// MemberUpdate carries a partial update; nil fields are left untouched.
type MemberUpdate struct {
	Name                *string  `bson:"name,omitempty" json:"name,omitempty"`
	Email               *string  `bson:"email,omitempty" json:"email,omitempty"`
	Role                *string  `bson:"role,omitempty" json:"role,omitempty"`
	Skills              []string `bson:"skills,omitempty" json:"skills,omitempty"`
	AvailabilityPercent *float64 `bson:"availability_percent,omitempty" json:"availability_percent,omitempty"`
}
