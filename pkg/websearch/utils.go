package websearch

import (
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// cleanHTML removes HTML tags and decodes HTML entities
func cleanHTML(html string) string {
	// Remove HTML tags
	text := tagRegex.ReplaceAllString(html, "")

	// Decode common HTML entities
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&nbsp;", " ")

	// Trim whitespace
	text = strings.TrimSpace(text)

	return text
}
