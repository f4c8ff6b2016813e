package utils

import (
	"social-downloader-go/models"

	"github.com/gofiber/fiber/v2"
)

// Fail writes the standard failure envelope used by the API endpoints
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.FailureResponse{
		Success: false,
		Error:   message,
	})
}

// NotFound writes the bare error body used by file serving
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: message,
	})
}
