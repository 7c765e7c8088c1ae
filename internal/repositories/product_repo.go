package repositories

import (
	"context"

	"medbridge/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, filtered to an exact category match
	// when category is non-empty.
	GetAll(ctx context.Context, category string) ([]models.Product, error)
	// Search returns every product whose name, description or category
	// contains query as a case-insensitive substring.
	Search(ctx context.Context, query string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
}
