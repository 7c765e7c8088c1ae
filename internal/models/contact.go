package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact represents a support/inquiry submission from the public
// contact form. IsRead is flipped by the admin inbox, never by the
// submitter.
type Contact struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Subject   string             `json:"subject" bson:"subject" validate:"required"`
	Message   string             `json:"message" bson:"message" validate:"required"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
