package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text is Coalesce for optional form strings: a nil or blank value keeps
// fallback, anything else is trimmed.
func Text(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	if s := strings.TrimSpace(*ptr); s != "" {
		return s
	}
	return fallback
}
