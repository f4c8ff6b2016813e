package config

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload" // Auto-load .env file
)

const (
	// Server
	DefaultPort = 5000

	// Storage
	DefaultDownloadDir = "downloads"

	// External extractor
	DefaultYtdlpBinary = "yt-dlp"
	ProbeTimeout       = 60 * time.Second
	DownloadTimeout    = 30 * time.Minute

	// Audio extraction bitrate passed to yt-dlp's postprocessor
	AudioQuality = "320K"

	// Description is cut to this many characters in info responses
	DescriptionLimit = 200

	// Cleanup
	CleanupInterval = "0 * * * *" // Every hour
	MaxFileAge      = 24 * time.Hour

	// Request ID
	RequestIDLength = 21
)

// Environment overrides
var (
	Port        = getEnvInt("PORT", DefaultPort)
	DownloadDir = getEnv("DOWNLOAD_DIR", DefaultDownloadDir)
	YtdlpBinary = getEnv("YTDLP_BINARY", DefaultYtdlpBinary)
	YtdlpProxy  = os.Getenv("YTDLP_PROXY")
)

// Quality buckets ordered best to worst. Both quality listing and
// height-to-bucket matching depend on this order.
var QualityOrder = []string{"8k", "4k", "2k", "1080p", "720p", "480p", "360p", "240p", "144p"}

// Minimum pixel height per bucket (>= comparison, highest threshold wins)
var QualityToHeight = map[string]int{
	"8k":    4320,
	"4k":    2160,
	"2k":    1440,
	"1080p": 1080,
	"720p":  720,
	"480p":  480,
	"360p":  360,
	"240p":  240,
	"144p":  144,
}

// Display labels for quality buckets
var QualityLabels = map[string]string{
	"8k":    "8K Ultra HD (4320p)",
	"4k":    "4K Ultra HD (2160p)",
	"2k":    "2K QHD (1440p)",
	"1080p": "Full HD (1080p)",
	"720p":  "HD (720p)",
	"480p":  "SD (480p)",
	"360p":  "360p",
	"240p":  "240p",
	"144p":  "144p",
}

// Extensions probed when the predicted output file is missing, in
// priority order (first match wins)
var FallbackExtensions = []string{"mp4", "webm", "mkv", "mp3", "m4a", "wav", "jpg", "png", "webp"}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
