package middleware

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Input validation and sanitization utilities

// ValidateSessionID checks that id is a canonical UUID.
func ValidateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return fmt.Errorf("invalid session ID format")
	}
	return nil
}

// SanitizeFileName reduces an uploaded file name to its base name and
// rejects names that are empty or traverse directories.
func SanitizeFileName(name string) (string, error) {
	name = SanitizeString(name)
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("invalid file name")
	}
	if len(base) > 255 {
		return "", fmt.Errorf("file name too long")
	}
	return base, nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 200 {
		return 200 // the history never holds more
	}
	return limit
}
