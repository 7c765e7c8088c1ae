package repositories

import (
	"context"
	"sync"
	"time"

	"medbridge/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	contacts map[string]models.Contact
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		contacts: make(map[string]models.Contact),
	}
}

// Create adds a new contact submission, assigning its ID and timestamp.
func (r *MockContactRepository) Create(_ context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	r.contacts[contact.ID.Hex()] = *contact
	return nil
}

// GetAll returns all contact submissions.
func (r *MockContactRepository) GetAll(_ context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contactList := make([]models.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contactList = append(contactList, c)
	}
	return contactList, nil
}

// MarkRead flips IsRead on the submission and returns the updated
// document, or ErrNotFound.
func (r *MockContactRepository) MarkRead(_ context.Context, id string) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	contact.IsRead = true
	r.contacts[id] = contact
	return &contact, nil
}
