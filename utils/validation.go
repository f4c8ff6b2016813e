package utils

import "strings"

// ValidateFilename rejects names that could escape the download directory
func ValidateFilename(filename string) bool {
	if filename == "" {
		return false
	}
	if strings.Contains(filename, "..") {
		return false
	}
	if strings.ContainsAny(filename, `/\`) {
		return false
	}
	return true
}
