package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateAreas validates the area sequence used to size bubbles.
// The sequence must be non-empty; individual values are intentionally not
// range-checked (a zero area is tolerated and yields a zero radius), but the
// total must be a positive finite number so the area-weighted centroid is
// defined.
func ValidateAreas(areas []float64) error {
	if len(areas) == 0 {
		return New(ErrCodeInvalidInput, "areas cannot be empty")
	}

	total := 0.0
	for _, a := range areas {
		total += a
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return New(ErrCodeDegenerateGeometry, "total area must be positive and finite, got %v", total)
	}

	return nil
}

// ValidateSpacing validates the minimum gap between bubble outlines.
// Spacing must be finite: an infinite value would poison grid placement
// with NaN positions.
func ValidateSpacing(spacing float64) error {
	if spacing < 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return New(ErrCodeInvalidSpacing, "spacing must be a non-negative finite number, got %v", spacing)
	}
	return nil
}

// ValidateColumnName validates a dataset column name.
// Column names come from user input (flags, config files, API requests) and
// must be printable without path-like characters.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidColumn, "column name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidColumn, "column name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColumn, "column name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidColumn, "column name cannot contain path separators")
	}

	return nil
}

// ValidateOutputFilename validates an output filename for safety.
// It ensures the filename is a simple basename without traversal sequences.
func ValidateOutputFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "output filename cannot be empty")
	}

	if strings.Contains(filename, "\x00") {
		return New(ErrCodeInvalidInput, "output filename contains invalid characters")
	}

	if strings.Contains(filename, "..") {
		return New(ErrCodeInvalidInput, "output filename cannot contain path traversal sequences (..)")
	}

	return nil
}
