package handlers

import (
	"errors"
	"log"

	"medbridge/internal/repositories"
	"medbridge/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The search route must come before the id route so "search" is not
// captured as an id parameter.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
}

// HandleListProducts returns all products, optionally filtered by an
// exact category match. The response is the bare array.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	category := c.Query("category")

	products, err := h.service.GetAllProducts(c.Context(), category)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return serverError(c)
	}
	return c.JSON(products)
}

// HandleSearchProducts returns products matching the q query parameter
// as a case-insensitive substring of name, description or category.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")

	products, err := h.service.SearchProducts(c.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Search query is required",
			})
		}
		log.Printf("Error searching products for %q: %v", query, err)
		return serverError(c)
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product by id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	product, err := h.service.GetProductByID(c.Context(), productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", productID, err)
		return serverError(c)
	}
	return c.JSON(product)
}
