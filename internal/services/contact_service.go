package services

import (
	"context"
	"log"
	"time"

	"medbridge/internal/models"
	"medbridge/internal/repositories"
	"medbridge/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ContactService handles business logic for contact-form submissions.
type ContactService struct {
	repo     repositories.ContactRepository
	mqClient *rabbitmq.Client
}

// NewContactService creates a new ContactService. mqClient may be nil;
// submissions then skip event publication.
func NewContactService(repo repositories.ContactRepository, mqClient *rabbitmq.Client) *ContactService {
	return &ContactService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Submit persists a new contact submission and publishes a
// contact.submitted event. Publication is best-effort: a broker
// failure is logged but never fails the submission.
func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) error {
	contact.IsRead = false

	if err := s.repo.Create(ctx, contact); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]any{
			"eventId":     uuid.NewString(),
			"contactId":   contact.ID.Hex(),
			"name":        contact.Name,
			"email":       contact.Email,
			"subject":     contact.Subject,
			"submittedAt": contact.CreatedAt.Format(time.RFC3339),
		}
		if err := s.mqClient.PublishContactSubmitted(event); err != nil {
			log.Printf("Warning: failed to publish contact event for %s: %v", contact.ID.Hex(), err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return nil
}

// GetAllContacts retrieves every contact submission for the admin inbox.
func (s *ContactService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return s.repo.GetAll(ctx)
}

// MarkContactRead marks a submission as read and returns the updated
// document.
func (s *ContactService) MarkContactRead(ctx context.Context, id string) (*models.Contact, error) {
	return s.repo.MarkRead(ctx, id)
}
