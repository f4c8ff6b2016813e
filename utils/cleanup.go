package utils

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"social-downloader-go/config"

	"github.com/robfig/cron/v3"
)

// StartCleanupScheduler starts the cleanup cron job
func StartCleanupScheduler() *cron.Cron {
	c := cron.New()

	// Run cleanup every hour
	c.AddFunc(config.CleanupInterval, func() {
		CleanupOldDownloads()
	})

	c.Start()

	// Run cleanup on startup
	go CleanupOldDownloads()

	log.Println("[Cleanup] Scheduler started")
	return c
}

// CleanupOldDownloads removes files older than MaxFileAge from the
// download directory
func CleanupOldDownloads() {
	entries, err := os.ReadDir(config.DownloadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Cleanup] Error reading download directory: %v\n", err)
		}
		return
	}

	now := time.Now()
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		age := now.Sub(info.ModTime())
		if age > config.MaxFileAge {
			if err := os.Remove(filepath.Join(config.DownloadDir, entry.Name())); err == nil {
				deleted++
				log.Printf("[Cleanup] Deleted old file: %s (age: %v)\n", entry.Name(), age.Round(time.Minute))
			}
		}
	}

	if deleted > 0 {
		log.Printf("[Cleanup] Finished. Deleted %d files\n", deleted)
	}
}
