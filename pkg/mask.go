package pkg

import "strings"

// MaskKey hides a product key for display. Only keys longer than eight
// characters keep their last four visible.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}

	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
