package services

import (
	"context"

	"medbridge/internal/models"
	"medbridge/internal/repositories"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

// GetAllSuppliers retrieves all suppliers.
func (s *SupplierService) GetAllSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.GetAll(ctx)
}

// GetSupplierByID retrieves a single supplier by its id.
func (s *SupplierService) GetSupplierByID(ctx context.Context, id string) (*models.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}
