package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceEntry is one point in a product's price history. A product holds at
// most one entry per calendar day (UTC); Date is formatted "2006-01-02".
type PriceEntry struct {
	Date      string  `json:"date" bson:"date"`
	Price     float64 `json:"price" bson:"price"`
	UpdatedBy string  `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

type Product struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VendorEmail       string             `json:"vendor_email" bson:"vendor_email"`
	VendorName        string             `json:"vendor_name,omitempty" bson:"vendor_name,omitempty"`
	MarketName        string             `json:"market_name" bson:"market_name"`
	MarketDescription string             `json:"market_description,omitempty" bson:"market_description,omitempty"`
	ItemName          string             `json:"item_name" bson:"item_name"`
	ItemDescription   string             `json:"item_description,omitempty" bson:"item_description,omitempty"`
	ImageURL          string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	PricePerUnit      float64            `json:"price_per_unit" bson:"price_per_unit"`
	Prices            []PriceEntry       `json:"prices" bson:"prices"`
	Status            string             `json:"status" bson:"status"`
	RejectionReason   *string            `json:"rejection_reason,omitempty" bson:"rejection_reason"`
	RejectionFeedback *string            `json:"rejection_feedback,omitempty" bson:"rejection_feedback"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreateProductRequest struct {
	VendorEmail       string  `json:"vendor_email" validate:"required"`
	VendorName        string  `json:"vendor_name"`
	MarketName        string  `json:"market_name" validate:"required"`
	MarketDescription string  `json:"market_description"`
	ItemName          string  `json:"item_name" validate:"required"`
	ItemDescription   string  `json:"item_description"`
	ImageURL          string  `json:"image_url"`
	PricePerUnit      float64 `json:"price_per_unit" validate:"required,gt=0"`
}

// UpdateProductRequest carries the full mutable payload for PUT. Display
// fields are overwritten unconditionally, so callers must send them all.
type UpdateProductRequest struct {
	VendorName        string  `json:"vendor_name"`
	MarketName        string  `json:"market_name"`
	MarketDescription string  `json:"market_description"`
	ItemName          string  `json:"item_name"`
	ItemDescription   string  `json:"item_description"`
	ImageURL          string  `json:"image_url"`
	PricePerUnit      float64 `json:"price_per_unit" validate:"required,gt=0"`
	UpdatedBy         string  `json:"updated_by"`
}

type UpdatePriceRequest struct {
	Price     float64 `json:"price" validate:"required,gt=0"`
	UpdatedBy string  `json:"updated_by"`
}

type ProductStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Reason   string `json:"reason"`
	Feedback string `json:"feedback"`
}

// PriceEntryIndex returns the index of the entry recorded on date, or -1.
func PriceEntryIndex(prices []PriceEntry, date string) int {
	for i, p := range prices {
		if p.Date == date {
			return i
		}
	}
	return -1
}
