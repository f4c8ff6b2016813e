package handlers

import "github.com/gofiber/fiber/v2"

// HandleHome handles GET /
func HandleHome(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>Social Media Downloader API</h1><p>Server is running!</p>")
}
