package models

// Content types
const (
	ContentVideo = "video"
	ContentAudio = "audio"
	ContentPhoto = "photo"
)

// MediaInfo is the structured result of probing a URL with yt-dlp.
// Field names follow yt-dlp's JSON output.
type MediaInfo struct {
	Type         string   `json:"_type,omitempty"`
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Duration     *float64 `json:"duration,omitempty"`
	ExtractorKey string   `json:"extractor_key,omitempty"`
	Uploader     string   `json:"uploader,omitempty"`
	ViewCount    *int64   `json:"view_count,omitempty"`
	Description  string   `json:"description,omitempty"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	Ext          string   `json:"ext,omitempty"`
	WebpageURL   string   `json:"webpage_url,omitempty"`
	URL          string   `json:"url,omitempty"`
	Filename     string   `json:"_filename,omitempty"`
	Formats      []Format `json:"formats,omitempty"`
}

// Format is one encoding option for a resource. Codec values follow the
// yt-dlp convention: empty means unknown, "none" means the track is absent.
type Format struct {
	FormatID       string `json:"format_id,omitempty"`
	Ext            string `json:"ext,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	VCodec         string `json:"vcodec,omitempty"`
	ACodec         string `json:"acodec,omitempty"`
	Filesize       int64  `json:"filesize,omitempty"`
	FilesizeApprox int64  `json:"filesize_approx,omitempty"`
}

// InfoRequest is the body of POST /api/info
type InfoRequest struct {
	URL string `json:"url"`
}

// DownloadRequest is the body of POST /api/download
type DownloadRequest struct {
	URL          string `json:"url"`
	Quality      string `json:"quality"`       // bucket name or "highest"
	Format       string `json:"format"`        // output container/codec
	DownloadType string `json:"download_type"` // video, audio or photo
}

// QualityOption is one entry in the available-qualities list
type QualityOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Filesize  int64  `json:"filesize,omitempty"`
}

// FormatOption is one entry in the format menu
type FormatOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// FormatCatalog is the format menu for a content type. Photo and audio
// fill Formats; video fills both container axes.
type FormatCatalog struct {
	Type         string         `json:"type"`
	Formats      []FormatOption `json:"formats,omitempty"`
	VideoFormats []FormatOption `json:"video_formats,omitempty"`
	AudioFormats []FormatOption `json:"audio_formats,omitempty"`
}

// InfoResponse is returned by POST /api/info. Failures set Success=false
// and Error; the HTTP status stays 200.
type InfoResponse struct {
	Success            bool            `json:"success"`
	Error              string          `json:"error,omitempty"`
	Title              string          `json:"title,omitempty"`
	Thumbnail          string          `json:"thumbnail,omitempty"`
	Duration           *float64        `json:"duration,omitempty"`
	Platform           string          `json:"platform,omitempty"`
	Uploader           string          `json:"uploader,omitempty"`
	ViewCount          *int64          `json:"view_count,omitempty"`
	ContentType        string          `json:"content_type,omitempty"`
	AvailableQualities []QualityOption `json:"available_qualities,omitempty"`
	AvailableFormats   *FormatCatalog  `json:"available_formats,omitempty"`
	Description        string          `json:"description,omitempty"`
	Width              int             `json:"width,omitempty"`
	Height             int             `json:"height,omitempty"`
}

// DownloadResponse is returned by POST /api/download
type DownloadResponse struct {
	Success          bool   `json:"success"`
	Error            string `json:"error,omitempty"`
	Title            string `json:"title,omitempty"`
	Filename         string `json:"filename,omitempty"`
	Filepath         string `json:"filepath,omitempty"`
	Platform         string `json:"platform,omitempty"`
	Filesize         int64  `json:"filesize,omitempty"`
	FilesizeReadable string `json:"filesize_readable,omitempty"`
}

// FailureResponse is the generic failure envelope for API endpoints
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorResponse is the bare error body used by file serving
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse for health check
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
