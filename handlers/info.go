package handlers

import (
	"context"
	"log"

	"social-downloader-go/config"
	"social-downloader-go/models"
	"social-downloader-go/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleInfo handles POST /api/info
// Probes the URL and returns metadata, detected content type, available
// qualities and the format menu. Probe failures are reported inside the
// envelope with HTTP 200.
func HandleInfo(c *fiber.Ctx) error {
	var req models.InfoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "URL is required")
	}

	if req.URL == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "URL is required")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), config.ProbeTimeout)
	defer cancel()

	result := downloader.GetInfo(ctx, req.URL)
	if !result.Success {
		log.Printf("[Info] Probe failed for %s: %s\n", req.URL, result.Error)
	}

	return c.JSON(result)
}
