package repositories

import (
	"context"

	"medbridge/internal/models"
)

// ContactRepository defines the interface for contact submission data access.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	// MarkRead flips IsRead on the submission and returns the updated
	// document.
	MarkRead(ctx context.Context, id string) (*models.Contact, error)
}
