package websearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRedirectURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uddg redirect wrapper",
			input:    "https://duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage",
			expected: "https://example.com/page",
		},
		{
			name:     "protocol relative uddg wrapper",
			input:    "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2F",
			expected: "https://example.com/",
		},
		{
			name:     "uddg with extra parameters",
			input:    "https://duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa%3Fb%3Dc&rut=abc123",
			expected: "https://example.com/a?b=c",
		},
		{
			name:     "kl fallback parameter",
			input:    "https://duckduckgo.com/l/?kl=https%3A%2F%2Fexample.org%2F",
			expected: "https://example.org/",
		},
		{
			name:     "plain url passes through",
			input:    "https://example.com/direct",
			expected: "https://example.com/direct",
		},
		{
			name:     "protocol relative without wrapper is normalized",
			input:    "//example.com/path",
			expected: "https://example.com/path",
		},
		{
			name:     "unparseable input returned unchanged",
			input:    "https://example.com/%zz",
			expected: "https://example.com/%zz",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeRedirectURL(tt.input))
		})
	}
}
