package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters outside yt-dlp's restricted filename alphabet
	restrictedChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	// Runs of replacement underscores
	multipleUnderscores = regexp.MustCompile(`_+`)
)

// SanitizeFilename approximates yt-dlp's --restrict-filenames output so a
// predicted path can be derived from a media title.
func SanitizeFilename(name string) string {
	// Replace disallowed characters with underscore
	name = restrictedChars.ReplaceAllString(name, "_")
	// Collapse repeated underscores
	name = multipleUnderscores.ReplaceAllString(name, "_")
	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")
	// Limit length
	if len(name) > 200 {
		name = name[:200]
	}
	return name
}
