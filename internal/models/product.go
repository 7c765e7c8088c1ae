package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog item offered by a supplier.
type Product struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Category        string             `json:"category" bson:"category" validate:"required"`
	Description     string             `json:"description" bson:"description" validate:"required"`
	Price           float64            `json:"price" bson:"price" validate:"gte=0"`
	ComparisonPrice float64            `json:"comparisonPrice,omitempty" bson:"comparisonPrice,omitempty" validate:"gte=0"`
	SupplierID      primitive.ObjectID `json:"supplierId" bson:"supplierId" validate:"required"`
	ImageURL        string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	InStock         bool               `json:"inStock" bson:"inStock"`
	Rating          float64            `json:"rating,omitempty" bson:"rating,omitempty" validate:"gte=0,lte=5"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
