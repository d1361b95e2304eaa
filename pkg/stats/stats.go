package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// EndpointStats represents statistics for a single endpoint or tool
type EndpointStats struct {
	Name                 string        `json:"name"`
	CallCount            int           `json:"call_count"`
	ErrorCount           int           `json:"error_count"`
	TotalExecutionTime   time.Duration `json:"total_execution_time"`
	AverageExecutionTime time.Duration `json:"average_execution_time"`
	LastUsed             time.Time     `json:"last_used"`
}

// SessionStats represents statistics for the current session
type SessionStats struct {
	StartTime time.Time                 `json:"start_time"`
	Endpoints map[string]*EndpointStats `json:"endpoints"`
}

// PersistentStats represents statistics persisted across all sessions
type PersistentStats struct {
	FirstRecorded time.Time                 `json:"first_recorded"`
	LastUpdated   time.Time                 `json:"last_updated"`
	Endpoints     map[string]*EndpointStats `json:"endpoints"`
}

// StatsManager manages endpoint usage statistics
type StatsManager struct {
	sessionStats    *SessionStats
	persistentStats *PersistentStats
	statsFilePath   string
	mutex           sync.RWMutex
}

// NewStatsManager creates a new StatsManager
func NewStatsManager(statsFilePath string) (*StatsManager, error) {
	manager := &StatsManager{
		sessionStats: &SessionStats{
			StartTime: time.Now(),
			Endpoints: make(map[string]*EndpointStats),
		},
		persistentStats: &PersistentStats{
			FirstRecorded: time.Now(),
			LastUpdated:   time.Now(),
			Endpoints:     make(map[string]*EndpointStats),
		},
		statsFilePath: statsFilePath,
	}

	// Create the directory if it doesn't exist
	dir := filepath.Dir(statsFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for stats file: %v", err)
	}

	// Load persistent stats if they exist
	if _, err := os.Stat(statsFilePath); err == nil {
		data, err := os.ReadFile(statsFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read stats file: %v", err)
		}

		if err := json.Unmarshal(data, &manager.persistentStats); err != nil {
			return nil, fmt.Errorf("failed to parse stats file: %v", err)
		}
	}

	return manager, nil
}

// RecordRequest records statistics for a single handled request
func (m *StatsManager) RecordRequest(name string, executionTime time.Duration, failed bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	update := func(stats map[string]*EndpointStats) {
		entry, ok := stats[name]
		if !ok {
			entry = &EndpointStats{Name: name}
			stats[name] = entry
		}

		entry.CallCount++
		if failed {
			entry.ErrorCount++
		}
		entry.TotalExecutionTime += executionTime
		entry.AverageExecutionTime = entry.TotalExecutionTime / time.Duration(entry.CallCount)
		entry.LastUsed = time.Now()
	}

	update(m.sessionStats.Endpoints)
	update(m.persistentStats.Endpoints)
	m.persistentStats.LastUpdated = time.Now()

	// Save persistent stats to file
	return m.savePersistentStats()
}

// GetSessionStats returns statistics for the current session
func (m *StatsManager) GetSessionStats() *SessionStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Create a deep copy to avoid race conditions
	stats := &SessionStats{
		StartTime: m.sessionStats.StartTime,
		Endpoints: make(map[string]*EndpointStats),
	}

	for name, entry := range m.sessionStats.Endpoints {
		entryCopy := *entry
		stats.Endpoints[name] = &entryCopy
	}

	return stats
}

// GetPersistentStats returns statistics persisted across all sessions
func (m *StatsManager) GetPersistentStats() *PersistentStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Create a deep copy to avoid race conditions
	stats := &PersistentStats{
		FirstRecorded: m.persistentStats.FirstRecorded,
		LastUpdated:   m.persistentStats.LastUpdated,
		Endpoints:     make(map[string]*EndpointStats),
	}

	for name, entry := range m.persistentStats.Endpoints {
		entryCopy := *entry
		stats.Endpoints[name] = &entryCopy
	}

	return stats
}

// ResetSessionStats resets the session statistics
func (m *StatsManager) ResetSessionStats() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessionStats = &SessionStats{
		StartTime: time.Now(),
		Endpoints: make(map[string]*EndpointStats),
	}
}

// savePersistentStats saves persistent stats to file
func (m *StatsManager) savePersistentStats() error {
	data, err := json.MarshalIndent(m.persistentStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	if err := os.WriteFile(m.statsFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}

// FormatStats formats statistics as a string
func FormatStats(sessionStats *SessionStats, persistentStats *PersistentStats) string {
	result := "Endpoint Usage Statistics\n\n"

	// Session stats
	result += "Current Session Statistics:\n"
	result += fmt.Sprintf("Session started: %s\n", sessionStats.StartTime.Format(time.RFC3339))
	result += fmt.Sprintf("Session duration: %s\n\n", time.Since(sessionStats.StartTime).Round(time.Second))
	result += formatEndpointTable(sessionStats.Endpoints, "No requests handled in this session.\n")

	// Persistent stats
	result += "\nAll-Time Statistics:\n"
	result += fmt.Sprintf("First recorded: %s\n", persistentStats.FirstRecorded.Format(time.RFC3339))
	result += fmt.Sprintf("Last updated: %s\n\n", persistentStats.LastUpdated.Format(time.RFC3339))
	result += formatEndpointTable(persistentStats.Endpoints, "No requests handled across all sessions.\n")

	return result
}

func formatEndpointTable(endpoints map[string]*EndpointStats, empty string) string {
	if len(endpoints) == 0 {
		return empty
	}

	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	result := "Endpoint              | Calls | Errors | Avg Time  | Total Time\n"
	result += "----------------------|-------|--------|-----------|------------\n"

	for _, name := range names {
		entry := endpoints[name]
		result += fmt.Sprintf("%-22s| %5d | %6d | %9s | %10s\n",
			entry.Name,
			entry.CallCount,
			entry.ErrorCount,
			entry.AverageExecutionTime.Round(time.Millisecond).String(),
			entry.TotalExecutionTime.Round(time.Millisecond).String())
	}

	return result
}
