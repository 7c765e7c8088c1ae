package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplierContact holds the optional contact details of a supplier.
type SupplierContact struct {
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// Supplier represents a vendor listed in the directory. One supplier
// is referenced by many products via Product.SupplierID.
type Supplier struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Type        string             `json:"type" bson:"type" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Categories  []string           `json:"categories" bson:"categories" validate:"required,min=1"`
	LogoURL     string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Contact     *SupplierContact   `json:"contact,omitempty" bson:"contact,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
