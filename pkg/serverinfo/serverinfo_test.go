package serverinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Equal(t, Version, info["version"])
	assert.NotEmpty(t, info["go_version"])
	assert.NotEmpty(t, info["os"])

	memStats, ok := info["memory_stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, memStats, "alloc_mb")

	uptime, ok := info["uptime_seconds"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uptime, 0.0)
}
