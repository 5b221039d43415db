package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":          "hello-world",
		"  Leading and trailing ": "leading-and-trailing",
		"under_scores_and  runs": "under-scores-and-runs",
		"--Already-Hyphenated--": "already-hyphenated",
		"Go 1.24 Release Notes":  "go-124-release-notes",
		"日本語タイトル":                "untitled",
		"!!!":                    "untitled",
		"":                       "untitled",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]+$`)
	titles := []string{
		"Hello, World!",
		"What's New in MongoDB 8?",
		"C++ vs. Go: a field report",
		"   spaced\tout\ntitle   ",
		"MiXeD CaSe TiTlE",
	}
	for _, title := range titles {
		s := Slugify(title)
		assert.Regexp(t, valid, s)
		assert.NotEqual(t, byte('-'), s[0])
		assert.NotEqual(t, byte('-'), s[len(s)-1])
	}
}
