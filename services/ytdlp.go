package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"social-downloader-go/config"
	"social-downloader-go/models"
)

// Extractor is the external extraction collaborator. Probe fetches metadata
// only; Fetch additionally materializes the media on disk.
type Extractor interface {
	Probe(ctx context.Context, url string) (*models.MediaInfo, error)
	Fetch(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error)
}

// YtdlpExtractor shells out to the yt-dlp binary
type YtdlpExtractor struct {
	Binary      string
	DownloadDir string
	Proxy       string
}

// NewYtdlpExtractor creates an extractor writing into downloadDir
func NewYtdlpExtractor(downloadDir string) *YtdlpExtractor {
	return &YtdlpExtractor{
		Binary:      config.YtdlpBinary,
		DownloadDir: downloadDir,
		Proxy:       config.YtdlpProxy,
	}
}

// Probe fetches metadata for a URL without downloading
func (y *YtdlpExtractor) Probe(ctx context.Context, url string) (*models.MediaInfo, error) {
	args := []string{"-J", "--no-playlist", "--no-warnings"}
	args = y.appendCommon(args, url)
	return y.run(ctx, args)
}

// Fetch downloads the media described by opts and returns its metadata.
// The output template and filename restriction are fixed here so the
// predicted path stays derivable from the title.
func (y *YtdlpExtractor) Fetch(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error) {
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--print-json",
		"-o", filepath.Join(y.DownloadDir, "%(title)s.%(ext)s"),
		"--restrict-filenames",
	}
	if opts.FormatSelector != "" {
		args = append(args, "-f", opts.FormatSelector)
	}
	if opts.MergeOutputFormat != "" {
		args = append(args, "--merge-output-format", opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		args = append(args, "-x", "--audio-format", opts.AudioFormat, "--audio-quality", opts.AudioQuality)
	}
	args = y.appendCommon(args, url)
	return y.run(ctx, args)
}

func (y *YtdlpExtractor) appendCommon(args []string, url string) []string {
	if y.Proxy != "" {
		args = append(args, "--proxy", y.Proxy)
	}
	return append(args, url)
}

func (y *YtdlpExtractor) run(ctx context.Context, args []string) (*models.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, y.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// yt-dlp reports the reason (geo-block, removed content, format
		// unavailable) on stderr; surface that over the exit status
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("yt-dlp: %s", msg)
	}

	var info models.MediaInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return &info, nil
}
