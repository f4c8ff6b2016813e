package handlers

import (
	"net/url"
	"os"
	"path/filepath"

	"social-downloader-go/config"
	"social-downloader-go/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleFile handles GET /api/file/:filename
// Streams a file from the download directory as an attachment. Every
// retrieval failure, including rejected names, responds 404.
func HandleFile(c *fiber.Ctx) error {
	filename, err := url.PathUnescape(c.Params("filename"))
	if err != nil {
		return utils.NotFound(c, "File not found")
	}

	// Reject path traversal attempts
	if !utils.ValidateFilename(filename) {
		return utils.NotFound(c, "File not found")
	}

	filePath := filepath.Join(config.DownloadDir, filename)
	if _, err := os.Stat(filePath); err != nil {
		return utils.NotFound(c, "File not found")
	}

	return c.Download(filePath, filename)
}
