package services

import (
	"os"
	"path/filepath"
	"strings"

	"social-downloader-go/config"
	"social-downloader-go/models"
	"social-downloader-go/utils"
)

// NormalizeInfo shapes a probed MediaInfo into the info envelope
func NormalizeInfo(info *models.MediaInfo) *models.InfoResponse {
	contentType := DetectContentType(info)

	title := info.Title
	if title == "" {
		title = "Unknown"
	}
	uploader := info.Uploader
	if uploader == "" {
		uploader = "Unknown"
	}
	platform := info.ExtractorKey
	if platform == "" {
		platform = "Unknown"
	}

	return &models.InfoResponse{
		Success:            true,
		Title:              title,
		Thumbnail:          info.Thumbnail,
		Duration:           info.Duration,
		Platform:           platform,
		Uploader:           uploader,
		ViewCount:          info.ViewCount,
		ContentType:        contentType,
		AvailableQualities: ListAvailableQualities(info),
		AvailableFormats:   AvailableFormats(contentType),
		Description:        truncate(info.Description, config.DescriptionLimit),
		Width:              info.Width,
		Height:             info.Height,
	}
}

// NormalizeDownload locates the downloaded file and shapes the download
// envelope. predictedPath is where the extractor expects the file; when it
// is missing the same base path is probed with the fallback extensions.
func NormalizeDownload(info *models.MediaInfo, downloadType, formatType, predictedPath string) *models.DownloadResponse {
	path := predictedPath
	if downloadType == models.ContentAudio {
		// The prediction carries the pre-transcode extension; the audio
		// postprocessor rewrites it after download
		path = replaceExt(path, formatType)
	}

	if fi, err := os.Stat(path); err == nil {
		if fi.Size() == 0 {
			return &models.DownloadResponse{Error: "Downloaded file is empty. Try a different quality."}
		}
		return downloadSuccess(info, path, fi.Size())
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range config.FallbackExtensions {
		candidate := base + "." + ext
		if fi, err := os.Stat(candidate); err == nil {
			return downloadSuccess(info, candidate, fi.Size())
		}
	}

	return &models.DownloadResponse{Error: "Could not find downloaded file."}
}

// NormalizeDownloadError maps an extraction failure to the download
// envelope, substituting a friendlier message for availability errors.
func NormalizeDownloadError(err error) *models.DownloadResponse {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unavailable") || strings.Contains(msg, "not available") {
		return &models.DownloadResponse{Error: "This quality is not available. Please try a lower quality."}
	}
	return &models.DownloadResponse{Error: err.Error()}
}

func downloadSuccess(info *models.MediaInfo, path string, size int64) *models.DownloadResponse {
	return &models.DownloadResponse{
		Success:          true,
		Title:            info.Title,
		Filename:         filepath.Base(path),
		Filepath:         path,
		Platform:         info.ExtractorKey,
		Filesize:         size,
		FilesizeReadable: utils.FormatFileSize(size),
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
