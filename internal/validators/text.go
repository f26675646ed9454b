package validators

import (
	"strings"
	"unicode/utf8"
)

// LengthBetween counts runes, so accented names are measured as typed.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// TrimOptional trims a nullable string; blank values become nil.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
