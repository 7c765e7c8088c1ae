package services

import (
	"context"
	"errors"
	"strings"

	"medbridge/internal/models"
	"medbridge/internal/repositories"
)

// ErrEmptyQuery is returned by Search when no query string is given.
var ErrEmptyQuery = errors.New("search query is required")

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, filtered by exact category
// match when category is non-empty.
func (s *ProductService) GetAllProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.GetAll(ctx, category)
}

// SearchProducts retrieves products matching the query as a
// case-insensitive substring of name, description or category.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.repo.Search(ctx, query)
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
