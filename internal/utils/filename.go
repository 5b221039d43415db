package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var filenameRe = regexp.MustCompile(`[^a-z0-9.-]`)

// SanitizeFilename keeps only the base name's extension-safe characters so
// uploaded names can sit on disk under a public path.
func SanitizeFilename(name string) string {
	base := strings.ToLower(filepath.Base(name))
	base = filenameRe.ReplaceAllString(base, "")
	base = strings.Trim(base, ".")
	if base == "" {
		return "file"
	}
	return base
}
