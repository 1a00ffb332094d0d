package errors

import (
	"strings"
	"unicode"
)

// ValidatePathSegment validates a league or season value before it is
// placed in a request URL or a cache filename.
//
// Empty values are allowed; the API answers those itself. Rejected input:
//   - Control characters and null bytes
//   - Path separators (/ and \)
//   - Parent directory references (..)
//   - More than 128 characters
func ValidatePathSegment(field, value string) error {
	if len(value) > 128 {
		return New(ErrCodeInvalidInput, "%s too long (max 128 characters)", field)
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return New(ErrCodeInvalidInput, "%s contains invalid characters: %q", field, pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme")
	}

	return nil
}
