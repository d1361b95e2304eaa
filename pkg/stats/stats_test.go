package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	manager, err := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	require.NoError(t, err)

	require.NoError(t, manager.RecordRequest("search", 100*time.Millisecond, false))
	require.NoError(t, manager.RecordRequest("search", 300*time.Millisecond, true))
	require.NoError(t, manager.RecordRequest("images", 50*time.Millisecond, false))

	session := manager.GetSessionStats()
	require.Contains(t, session.Endpoints, "search")
	require.Contains(t, session.Endpoints, "images")

	search := session.Endpoints["search"]
	assert.Equal(t, 2, search.CallCount)
	assert.Equal(t, 1, search.ErrorCount)
	assert.Equal(t, 400*time.Millisecond, search.TotalExecutionTime)
	assert.Equal(t, 200*time.Millisecond, search.AverageExecutionTime)

	images := session.Endpoints["images"]
	assert.Equal(t, 1, images.CallCount)
	assert.Equal(t, 0, images.ErrorCount)
}

func TestPersistenceAcrossManagers(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.json")

	first, err := NewStatsManager(statsFile)
	require.NoError(t, err)
	require.NoError(t, first.RecordRequest("search", 100*time.Millisecond, false))

	// A fresh manager should pick up the persisted totals but start with an
	// empty session
	second, err := NewStatsManager(statsFile)
	require.NoError(t, err)

	persistent := second.GetPersistentStats()
	require.Contains(t, persistent.Endpoints, "search")
	assert.Equal(t, 1, persistent.Endpoints["search"].CallCount)

	assert.Empty(t, second.GetSessionStats().Endpoints)
}

func TestResetSessionStats(t *testing.T) {
	manager, err := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	require.NoError(t, err)

	require.NoError(t, manager.RecordRequest("search", time.Millisecond, false))
	manager.ResetSessionStats()

	assert.Empty(t, manager.GetSessionStats().Endpoints)
	assert.Contains(t, manager.GetPersistentStats().Endpoints, "search")
}

func TestGetSessionStatsReturnsCopy(t *testing.T) {
	manager, err := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	require.NoError(t, err)

	require.NoError(t, manager.RecordRequest("search", time.Millisecond, false))

	snapshot := manager.GetSessionStats()
	snapshot.Endpoints["search"].CallCount = 99

	assert.Equal(t, 1, manager.GetSessionStats().Endpoints["search"].CallCount)
}

func TestFormatStats(t *testing.T) {
	manager, err := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	require.NoError(t, err)

	require.NoError(t, manager.RecordRequest("videos", 20*time.Millisecond, true))

	text := FormatStats(manager.GetSessionStats(), manager.GetPersistentStats())
	assert.Contains(t, text, "videos")
	assert.Contains(t, text, "Current Session Statistics")
	assert.Contains(t, text, "All-Time Statistics")
}
