package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"social-downloader-go/config"
	"social-downloader-go/handlers"
	"social-downloader-go/services"
	"social-downloader-go/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jaevor/go-nanoid"
)

func main() {
	// Create download directory
	if err := os.MkdirAll(config.DownloadDir, 0755); err != nil {
		log.Fatalf("Failed to create download directory: %v", err)
	}

	// Start cleanup scheduler
	cleanupCron := utils.StartCleanupScheduler()
	defer cleanupCron.Stop()

	// Wire the extraction service
	extractor := services.NewYtdlpExtractor(config.DownloadDir)
	handlers.Init(services.NewDownloader(extractor, config.DownloadDir))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:       "Social Media Downloader",
		ServerHeader:  "social-downloader-go",
		CaseSensitive: true,
		StrictRouting: false,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: newRequestID(),
	}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept",
	}))

	// Status page
	app.Get("/", handlers.HandleHome)

	// API routes
	api := app.Group("/api")
	api.Post("/info", handlers.HandleInfo)
	api.Post("/download", handlers.HandleDownload)
	api.Get("/file/:filename", handlers.HandleFile)

	// Health check
	app.Get("/health", handlers.HandleHealth)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v\n", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%d", config.Port)
	log.Println("Social Media Downloader Server")
	log.Printf("Download directory: %s\n", config.DownloadDir)
	log.Printf("Starting server on http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newRequestID() func() string {
	gen, err := nanoid.Standard(config.RequestIDLength)
	if err != nil {
		panic(err)
	}
	return gen
}
