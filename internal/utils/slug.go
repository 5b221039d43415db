package utils

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify turns a title into a URL-safe slug: lowercase, strip everything
// outside word/space/hyphen, collapse whitespace/underscore/hyphen runs to
// a single hyphen, trim hyphens. A title that reduces to nothing falls back
// to "untitled" so two emoji-only titles cannot collide on the empty slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
