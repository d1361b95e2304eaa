package websearch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVqdToken(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "double quoted",
			html:     `<script>var params = {vqd="4-123456789012345678901234567890"};</script>`,
			expected: "4-123456789012345678901234567890",
		},
		{
			name:     "single quoted",
			html:     `<script>var vqd='4-987654321';</script>`,
			expected: "4-987654321",
		},
		{
			name:     "bare in query string",
			html:     `<img src="/i.js?q=test&vqd=4-55555&o=json">`,
			expected: "4-55555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractVqdToken(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestExtractVqdTokenMissing(t *testing.T) {
	_, err := ExtractVqdToken("<html><body>no token anywhere</body></html>")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, EngineDuckDuckGo, upstreamErr.Engine)
}
