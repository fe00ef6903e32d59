package application

import (
	"fmt"
	"regexp"
	"strings"

	"noted/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderID" -> "folder ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noteID":   "note ID",
		"folderID": "folder ID",
		"sourceID": "source ID",
		"targetID": "target ID",
		"name":     "name",
		"color":    "color",
		"icon":     "icon",
		"username": "username",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateRef parses a note or folder reference and checks its kind.
// KindUnknown accepts either kind.
func ValidateRef(fieldName, value string, expected domain.Kind) (domain.Ref, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return domain.Ref{}, err
	}

	ref, err := domain.ParseRef(value)
	if err != nil {
		return domain.Ref{}, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), value),
		}
	}

	if expected != domain.KindUnknown && ref.Kind != expected {
		return domain.Ref{}, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s, got: %s", expected, value),
		}
	}
	return ref, nil
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor accepts #RGB and #RRGGBB colors
func ValidateColor(fieldName, value string) error {
	if !hexColor.MatchString(strings.TrimSpace(value)) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected a hex color like #3B82F6, got: %s", value),
		}
	}
	return nil
}
