package services

import "social-downloader-go/models"

// AvailableFormats returns the output-format menu for a content type.
// The menu is a fixed offer, not probed against real availability.
func AvailableFormats(contentType string) *models.FormatCatalog {
	switch contentType {
	case models.ContentPhoto:
		return &models.FormatCatalog{
			Type: models.ContentPhoto,
			Formats: []models.FormatOption{
				{Value: "jpg", Label: "JPG (Recommended)", Available: true},
				{Value: "png", Label: "PNG (High Quality)", Available: true},
				{Value: "webp", Label: "WebP", Available: true},
			},
		}
	case models.ContentAudio:
		return &models.FormatCatalog{
			Type: models.ContentAudio,
			Formats: []models.FormatOption{
				{Value: "mp3", Label: "MP3 (Recommended)", Available: true},
				{Value: "m4a", Label: "M4A", Available: true},
				{Value: "wav", Label: "WAV (Lossless)", Available: true},
			},
		}
	}

	// Video offers both container axes; the caller picks one depending
	// on download_type
	return &models.FormatCatalog{
		Type: models.ContentVideo,
		VideoFormats: []models.FormatOption{
			{Value: "mp4", Label: "MP4 (Recommended)", Available: true},
			{Value: "webm", Label: "WebM", Available: true},
			{Value: "mkv", Label: "MKV", Available: true},
		},
		AudioFormats: []models.FormatOption{
			{Value: "mp3", Label: "MP3 (Recommended)", Available: true},
			{Value: "m4a", Label: "M4A", Available: true},
			{Value: "wav", Label: "WAV", Available: true},
		},
	}
}
