package services

import (
	"fmt"

	"social-downloader-go/config"
	"social-downloader-go/models"
)

// DownloadOptions is the option set handed to the extractor for a download.
// The zero value is a plain passthrough with no format directives.
type DownloadOptions struct {
	FormatSelector    string
	MergeOutputFormat string
	ExtractAudio      bool
	AudioFormat       string
	AudioQuality      string
}

// BuildDownloadOptions builds the extractor options for a requested
// quality, output format and download type.
func BuildDownloadOptions(quality, formatType, downloadType string) DownloadOptions {
	switch downloadType {
	case models.ContentPhoto:
		// Photos need no stream selection or transcoding
		return DownloadOptions{}
	case models.ContentAudio:
		return DownloadOptions{
			FormatSelector: "bestaudio/best",
			ExtractAudio:   true,
			AudioFormat:    formatType,
			AudioQuality:   config.AudioQuality,
		}
	}

	opts := DownloadOptions{MergeOutputFormat: formatType}
	if height, ok := config.QualityToHeight[quality]; ok {
		opts.FormatSelector = fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", height, height)
	} else {
		// "highest" and anything unrecognized select the unconstrained best
		opts.FormatSelector = "bestvideo+bestaudio/best"
	}
	return opts
}
