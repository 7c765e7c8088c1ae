package repositories

import (
	"context"
	"sync"
	"time"

	"medbridge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockSupplierRepository is an in-memory implementation of SupplierRepository.
type MockSupplierRepository struct {
	suppliers map[string]models.Supplier
	mu        sync.RWMutex
}

// NewMockSupplierRepository creates a new instance of MockSupplierRepository.
func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{
		suppliers: make(map[string]models.Supplier),
	}
}

// GetAll returns all suppliers.
func (r *MockSupplierRepository) GetAll(_ context.Context) ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplierList := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		supplierList = append(supplierList, s)
	}
	return supplierList, nil
}

// GetByID returns a supplier by its hex id, or ErrNotFound.
func (r *MockSupplierRepository) GetByID(_ context.Context, id string) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &supplier, nil
}

// Create adds a new supplier, assigning its ID and timestamps.
func (r *MockSupplierRepository) Create(_ context.Context, supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if supplier.ID.IsZero() {
		supplier.ID = primitive.NewObjectID()
	}
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	r.suppliers[supplier.ID.Hex()] = *supplier
	return nil
}
