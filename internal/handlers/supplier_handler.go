package handlers

import (
	"errors"
	"log"

	"medbridge/internal/repositories"
	"medbridge/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for the supplier directory.
type SupplierHandler struct {
	service *services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service: service,
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleListSuppliers)
	supplierRoutes.Get("/:id", h.HandleGetSupplier)
}

// HandleListSuppliers returns all suppliers as a bare array.
func (h *SupplierHandler) HandleListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers(c.Context())
	if err != nil {
		log.Printf("Error listing suppliers: %v", err)
		return serverError(c)
	}
	return c.JSON(suppliers)
}

// HandleGetSupplier returns a single supplier by id.
func (h *SupplierHandler) HandleGetSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	supplier, err := h.service.GetSupplierByID(c.Context(), supplierID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		log.Printf("Error getting supplier %s: %v", supplierID, err)
		return serverError(c)
	}
	return c.JSON(supplier)
}
