package errors

import (
	"strings"
	"unicode"
)

// ValidateGalleryID validates a gallery identifier for safety.
// Gallery IDs appear in URL paths, cache keys, and store lookups, so the
// rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateGalleryID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGallery, "gallery id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidGallery, "gallery id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGallery, "gallery id contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidGallery, "gallery id contains path characters")
	}

	return nil
}

// ValidateThemeName validates a theme name or theme file path.
// Theme names must be simple identifiers; file-based themes are
// distinguished by the .toml suffix and validated as relative paths.
func ValidateThemeName(name string) error {
	if name == "" {
		return nil // empty means "use the default"
	}

	if strings.Contains(name, "\x00") {
		return New(ErrCodeInvalidTheme, "theme name contains null byte")
	}

	if strings.HasSuffix(name, ".toml") {
		if strings.Contains(name, "..") {
			return New(ErrCodeInvalidTheme, "theme path cannot contain traversal sequences")
		}
		return nil
	}

	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' {
			return New(ErrCodeInvalidTheme, "theme name must be lowercase letters, digits, and dashes: %q", name)
		}
	}
	return nil
}
