package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// layoutNameRegex matches safe layout names: letters, digits, dash,
// underscore and dot, starting with an alphanumeric.
var layoutNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateLayoutName validates a stored-layout name for safety and
// correctness. Layout names become file names and store keys, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLayout, "layout name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidLayout, "layout name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayout, "layout name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidLayout, "layout name cannot contain path sequences")
	}
	if !layoutNameRegex.MatchString(name) {
		return New(ErrCodeInvalidLayout, "invalid layout name: %q", name)
	}
	return nil
}

// widgetTypeRegex matches widget type identifiers from the catalog.
var widgetTypeRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateWidgetType validates a widget type identifier.
// Types are lowercase slugs defined by the widget catalog.
func ValidateWidgetType(typ string) error {
	if typ == "" {
		return New(ErrCodeInvalidWidget, "widget type cannot be empty")
	}
	if len(typ) > 64 {
		return New(ErrCodeInvalidWidget, "widget type too long (max 64 characters)")
	}
	if !widgetTypeRegex.MatchString(typ) {
		return New(ErrCodeInvalidWidget, "invalid widget type: %q", typ)
	}
	return nil
}

// ValidateBounds validates grid dimensions supplied by a caller.
// Both axes must be positive and small enough that occupancy grids stay
// cheap to rebuild per call.
func ValidateBounds(cols, maxRows int) error {
	const maxAxis = 1000
	if cols < 1 || maxRows < 1 {
		return New(ErrCodeInvalidBounds, "grid bounds must be positive, got %dx%d", cols, maxRows)
	}
	if cols > maxAxis || maxRows > maxAxis {
		return New(ErrCodeInvalidBounds, "grid bounds too large (max %d per axis)", maxAxis)
	}
	return nil
}
