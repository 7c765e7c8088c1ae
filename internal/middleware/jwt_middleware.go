package middleware

import (
	"log"

	"medbridge/internal/models"
	"medbridge/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which the verified caller identity is stored for
// downstream handlers.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "user_role"
)

// AuthRequired is a Fiber middleware that verifies the bearer token
// carried in the x-auth-token header. The header holds the raw signed
// token, no "Bearer" prefix. On success the decoded id and role are
// attached to the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("x-auth-token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token, authorization denied",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token is not valid",
			})
		}

		c.Locals(LocalsUserID, claims.ID)
		c.Locals(LocalsUserRole, claims.Role)

		return c.Next()
	}
}

// AdminRequired is a Fiber middleware that gates a route to admin
// callers. It must be stacked after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalsUserRole).(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Access denied. Admin privileges required.",
			})
		}
		return c.Next()
	}
}
