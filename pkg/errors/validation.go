package errors

import (
	"unicode"
)

// maxItemIDLength bounds item IDs to keep log lines and JSON keys sane.
const maxItemIDLength = 256

// ValidateItemID validates a layout item ID.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// IDs are otherwise opaque to the engine; callers may use any naming
// scheme (UUIDs, slugs, widget paths) that satisfies these rules.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}

	if len(id) > maxItemIDLength {
		return New(ErrCodeInvalidItem, "item id too long (max %d characters)", maxItemIDLength)
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains control characters")
		}
	}

	return nil
}

// ValidateColumns validates a grid column count.
func ValidateColumns(columns int) error {
	if columns < 1 {
		return New(ErrCodeInvalidInput, "column count must be positive, got %d", columns)
	}
	return nil
}

// ValidatePath validates a layout file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
