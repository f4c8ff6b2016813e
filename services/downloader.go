package services

import (
	"context"
	"path/filepath"

	"social-downloader-go/models"
	"social-downloader-go/utils"
)

// Downloader orchestrates probes and downloads against the extractor and
// shapes results for the API. Failures never escape as errors; every call
// returns a complete response envelope.
type Downloader struct {
	extractor   Extractor
	downloadDir string
}

// NewDownloader creates a Downloader writing into downloadDir
func NewDownloader(extractor Extractor, downloadDir string) *Downloader {
	return &Downloader{extractor: extractor, downloadDir: downloadDir}
}

// GetInfo probes a URL and returns its metadata envelope
func (d *Downloader) GetInfo(ctx context.Context, url string) *models.InfoResponse {
	info, err := d.extractor.Probe(ctx, url)
	if err != nil {
		return &models.InfoResponse{Error: err.Error()}
	}
	return NormalizeInfo(info)
}

// Download fetches media at the requested quality/format and returns the
// download envelope
func (d *Downloader) Download(ctx context.Context, url, quality, formatType, downloadType string) *models.DownloadResponse {
	opts := BuildDownloadOptions(quality, formatType, downloadType)

	info, err := d.extractor.Fetch(ctx, url, opts)
	if err != nil {
		return NormalizeDownloadError(err)
	}

	return NormalizeDownload(info, downloadType, formatType, d.predictFilename(info))
}

// predictFilename returns the path the extractor reports for the download,
// or a best-effort guess from the title when it reports none. A wrong guess
// is recovered by the fallback search in NormalizeDownload.
func (d *Downloader) predictFilename(info *models.MediaInfo) string {
	if info.Filename != "" {
		return info.Filename
	}

	ext := info.Ext
	if ext == "" {
		ext = "mp4"
	}
	title := utils.SanitizeFilename(info.Title)
	if title == "" {
		title = "output"
	}
	return filepath.Join(d.downloadDir, title+"."+ext)
}
