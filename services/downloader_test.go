package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"social-downloader-go/models"
)

// fakeExtractor stubs the external extraction service
type fakeExtractor struct {
	probeFunc func(ctx context.Context, url string) (*models.MediaInfo, error)
	fetchFunc func(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error)
}

func (f *fakeExtractor) Probe(ctx context.Context, url string) (*models.MediaInfo, error) {
	return f.probeFunc(ctx, url)
}

func (f *fakeExtractor) Fetch(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error) {
	return f.fetchFunc(ctx, url, opts)
}

func TestDownloader_GetInfo(t *testing.T) {
	fake := &fakeExtractor{
		probeFunc: func(ctx context.Context, url string) (*models.MediaInfo, error) {
			return &models.MediaInfo{
				Title:        "Probe Result",
				ExtractorKey: "Tiktok",
				Duration:     duration(30),
				Formats:      []models.Format{{VCodec: "avc1", ACodec: "mp4a", Height: 720}},
			}, nil
		},
	}
	d := NewDownloader(fake, t.TempDir())

	resp := d.GetInfo(context.Background(), "https://example.com/watch?v=1")

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.Title != "Probe Result" || resp.Platform != "Tiktok" {
		t.Errorf("metadata = %q/%q", resp.Title, resp.Platform)
	}
	if resp.ContentType != models.ContentVideo {
		t.Errorf("ContentType = %q", resp.ContentType)
	}
}

func TestDownloader_GetInfo_ProbeFailure(t *testing.T) {
	fake := &fakeExtractor{
		probeFunc: func(ctx context.Context, url string) (*models.MediaInfo, error) {
			return nil, errors.New("yt-dlp: Unsupported URL")
		},
	}
	d := NewDownloader(fake, t.TempDir())

	resp := d.GetInfo(context.Background(), "https://example.com/nope")

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Error != "yt-dlp: Unsupported URL" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestDownloader_Download(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeExtractor{
		fetchFunc: func(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error) {
			if opts.FormatSelector != "bestvideo[height<=720]+bestaudio/best[height<=720]" {
				t.Errorf("FormatSelector = %q", opts.FormatSelector)
			}
			path := writeFile(t, dir, "My_Clip.mp4", 1024)
			return &models.MediaInfo{Title: "My Clip", ExtractorKey: "Youtube", Filename: path}, nil
		},
	}
	d := NewDownloader(fake, dir)

	resp := d.Download(context.Background(), "https://example.com/watch?v=1", "720p", "mp4", models.ContentVideo)

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.Filename != "My_Clip.mp4" {
		t.Errorf("Filename = %q", resp.Filename)
	}
	if resp.Filesize != 1024 || resp.FilesizeReadable != "1.0 KB" {
		t.Errorf("size = %d (%q)", resp.Filesize, resp.FilesizeReadable)
	}
}

func TestDownloader_Download_PredictsFromTitle(t *testing.T) {
	// When the extractor does not report a filename the path is derived
	// from the sanitized title
	dir := t.TempDir()
	fake := &fakeExtractor{
		fetchFunc: func(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error) {
			writeFile(t, dir, "Some_Clip.mp4", 512)
			return &models.MediaInfo{Title: "Some Clip", Ext: "mp4"}, nil
		},
	}
	d := NewDownloader(fake, dir)

	resp := d.Download(context.Background(), "https://example.com/watch?v=1", "highest", "mp4", models.ContentVideo)

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.Filepath != filepath.Join(dir, "Some_Clip.mp4") {
		t.Errorf("Filepath = %q", resp.Filepath)
	}
}

func TestDownloader_Download_FetchFailure(t *testing.T) {
	fake := &fakeExtractor{
		fetchFunc: func(ctx context.Context, url string, opts DownloadOptions) (*models.MediaInfo, error) {
			return nil, errors.New("yt-dlp: ERROR: Requested format is not available")
		},
	}
	d := NewDownloader(fake, t.TempDir())

	resp := d.Download(context.Background(), "https://example.com/watch?v=1", "8k", "mp4", models.ContentVideo)

	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Error != "This quality is not available. Please try a lower quality." {
		t.Errorf("error = %q", resp.Error)
	}
}
