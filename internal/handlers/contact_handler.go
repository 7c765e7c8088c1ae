package handlers

import (
	"errors"
	"log"

	"medbridge/internal/models"
	"medbridge/internal/repositories"
	"medbridge/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contact-form submissions.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
// Submission is public; the inbox routes are gated by the supplied
// token and admin middleware.
func (h *ContactHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	contactRoutes := router.Group("/contact")
	contactRoutes.Post("/", h.HandleSubmitContact)

	inboxRoutes := contactRoutes.Group("", authRequired, adminRequired)
	inboxRoutes.Get("/", h.HandleListContacts)
	inboxRoutes.Patch("/:id/read", h.HandleMarkContactRead)
}

// HandleSubmitContact persists a contact-form submission.
func (h *ContactHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required",
		})
	}

	if err := h.service.Submit(c.Context(), &contact); err != nil {
		log.Printf("Error saving contact submission: %v", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Your message has been sent",
	})
}

// HandleListContacts returns every submission for the admin inbox.
func (h *ContactHandler) HandleListContacts(c *fiber.Ctx) error {
	contacts, err := h.service.GetAllContacts(c.Context())
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		return serverError(c)
	}
	return c.JSON(contacts)
}

// HandleMarkContactRead marks a submission as read.
func (h *ContactHandler) HandleMarkContactRead(c *fiber.Ctx) error {
	contactID := c.Params("id")

	contact, err := h.service.MarkContactRead(c.Context(), contactID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Message not found",
			})
		}
		log.Printf("Error marking contact %s read: %v", contactID, err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"contact": contact,
	})
}
