package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	UserName  string             `json:"user_name,omitempty" bson:"user_name,omitempty"`
	PhotoURL  string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	UserRole  string             `json:"user_role,omitempty" bson:"user_role,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	LastLogin time.Time          `json:"last_login" bson:"last_login"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
