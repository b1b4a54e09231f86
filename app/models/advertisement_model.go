package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Advertisement struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VendorEmail string             `json:"vendor_email" bson:"vendor_email"`
	AdTitle     string             `json:"ad_title" bson:"ad_title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateAdvertisementRequest struct {
	VendorEmail string `json:"vendor_email" validate:"required"`
	AdTitle     string `json:"ad_title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateAdvertisementRequest struct {
	AdTitle     string `json:"ad_title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type AdvertisementStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
