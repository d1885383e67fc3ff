package file

import (
	"path/filepath"
	"strings"
)

// Extension returns the lowercased extension of the base name, including the dot.
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filepath.Base(filename)))
}

// IsAllowed reports whether filename carries one of the allowed extensions
// (given without dots, e.g. "png").
func IsAllowed(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(Extension(filename), ".")
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
