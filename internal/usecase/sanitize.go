package usecase

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Post and comment bodies are stored as plain text: all markup is removed
// and the entities bluemonday escapes are decoded again.
var plainText = bluemonday.StrictPolicy()

const maxSanitizePasses = 8

// sanitizeText repeats strip-then-decode until the text is stable, so
// entity-escaped markup cannot come back as live markup after decoding.
func sanitizeText(s string) string {
	out := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(plainText.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: keep the escaped form.
	return strings.TrimSpace(plainText.Sanitize(out))
}
