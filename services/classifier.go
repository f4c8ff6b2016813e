package services

import (
	"strings"

	"social-downloader-go/config"
	"social-downloader-go/models"
)

// URL substrings that mark a photo page
var photoURLMarkers = []string{"/photo/", "/image/", ".jpg", ".png", ".jpeg", ".webp"}

// DetectContentType classifies a probed media page as video, audio or photo.
// The check order is significant: declared type first, then URL markers,
// then the codec inventory of the format list.
func DetectContentType(info *models.MediaInfo) string {
	if info.Type == "image" {
		return models.ContentPhoto
	}

	pageURL := info.WebpageURL
	if pageURL == "" {
		pageURL = info.URL
	}
	pageURL = strings.ToLower(pageURL)
	for _, marker := range photoURLMarkers {
		if strings.Contains(pageURL, marker) {
			return models.ContentPhoto
		}
	}

	hasVideo := false
	hasAudio := false
	for _, f := range info.Formats {
		if f.VCodec != "" && f.VCodec != "none" {
			hasVideo = true
		}
		if f.ACodec != "" && f.ACodec != "none" {
			hasAudio = true
		}
	}

	if !hasVideo && !hasAudio {
		return models.ContentPhoto
	}
	if !hasVideo {
		return models.ContentAudio
	}

	// Silent clips with no known duration are treated as GIF-style images
	if (info.Duration == nil || *info.Duration == 0) && !hasAudio {
		return models.ContentPhoto
	}

	return models.ContentVideo
}

// HeightToQuality maps a pixel height to its quality bucket, or "" when
// the height is below the smallest bucket.
func HeightToQuality(height int) string {
	for _, quality := range config.QualityOrder {
		if height >= config.QualityToHeight[quality] {
			return quality
		}
	}
	return ""
}

// QualityLabel returns the display label for a quality bucket
func QualityLabel(quality string) string {
	if label, ok := config.QualityLabels[quality]; ok {
		return label
	}
	return quality
}

// ListAvailableQualities buckets every video format by height and emits one
// entry per bucket in best-to-worst order. The first format seen for a
// bucket keeps its file size; later formats never overwrite it.
func ListAvailableQualities(info *models.MediaInfo) []models.QualityOption {
	seen := make(map[string]int64)
	for _, f := range info.Formats {
		if f.Height == 0 || f.VCodec == "none" {
			continue
		}
		quality := HeightToQuality(f.Height)
		if quality == "" {
			continue
		}
		if _, ok := seen[quality]; ok {
			continue
		}
		size := f.Filesize
		if size == 0 {
			size = f.FilesizeApprox
		}
		seen[quality] = size
	}

	var result []models.QualityOption
	for _, quality := range config.QualityOrder {
		size, ok := seen[quality]
		if !ok {
			continue
		}
		result = append(result, models.QualityOption{
			Value:     quality,
			Label:     QualityLabel(quality),
			Available: true,
			Filesize:  size,
		})
	}
	return result
}
