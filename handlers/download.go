package handlers

import (
	"context"
	"log"

	"social-downloader-go/config"
	"social-downloader-go/models"
	"social-downloader-go/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleDownload handles POST /api/download
// Downloads the media at the requested quality/format synchronously and
// returns the result envelope. Logical failures keep HTTP 200.
func HandleDownload(c *fiber.Ctx) error {
	var req models.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "URL is required")
	}

	if req.URL == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "URL is required")
	}

	// Defaults
	if req.Quality == "" {
		req.Quality = "highest"
	}
	if req.Format == "" {
		req.Format = "mp4"
	}
	if req.DownloadType == "" {
		req.DownloadType = models.ContentVideo
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), config.DownloadTimeout)
	defer cancel()

	log.Printf("[Download] %s quality=%s format=%s type=%s\n", req.URL, req.Quality, req.Format, req.DownloadType)

	result := downloader.Download(ctx, req.URL, req.Quality, req.Format, req.DownloadType)
	if !result.Success {
		log.Printf("[Download] Failed for %s: %s\n", req.URL, result.Error)
	} else {
		log.Printf("[Download] Completed: %s (%s)\n", result.Filename, result.FilesizeReadable)
	}

	return c.JSON(result)
}
