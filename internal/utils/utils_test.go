package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t,
		[]string{"go", "mongodb", "web"},
		NormalizeTags([]string{" Go ", "MongoDB", "go", "", "web"}))

	// single CSV element
	assert.Equal(t,
		[]string{"go", "fiber", "mongo"},
		NormalizeTags([]string{"Go, Fiber , mongo"}))

	assert.Empty(t, NormalizeTags([]string{"", "  "}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "a b", StripHTML("a\n\t  b"))
	assert.Equal(t, "", StripHTML("<br/><img src=\"x.png\"/>"))
	assert.Equal(t, "plain", StripHTML("plain"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "photo1.png", SanitizeFilename("Photo 1.PNG"))
	assert.Equal(t, "a-b.jpeg", SanitizeFilename("../../a-b.jpeg"))
	assert.Equal(t, "file", SanitizeFilename("日本語"))
	assert.Equal(t, "x.gif", SanitizeFilename("x.gif"))
}
