// Package handlers translates HTTP requests into service calls and
// shapes responses. Reads of products and suppliers return the bare
// entity or array; auth and contact responses use a
// {success, ...} envelope. Every failure is {success:false, message}.
package handlers

import "github.com/gofiber/fiber/v2"

// serverError writes the generic 500 response. Store and runtime
// faults are logged at the call site and never leaked to the caller.
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error",
	})
}
