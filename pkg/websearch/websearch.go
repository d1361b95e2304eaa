package websearch

import (
	"context"
	"fmt"
	"strings"
)

// DefaultMaxResults is used when a caller does not ask for a specific count
const DefaultMaxResults = 10

// MaxResults is the hard ceiling on the number of results per request
const MaxResults = 20

// ClampLimit normalizes a requested result count into the allowed range
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxResults {
		return MaxResults
	}
	return limit
}

// Search performs a web search against the selected engine and returns at
// most limit normalized results in document order.
func (c *Client) Search(ctx context.Context, query string, limit int, engine string) ([]SearchResult, error) {
	switch strings.ToLower(engine) {
	case EngineDuckDuckGo, "":
		return c.searchDuckDuckGo(ctx, query, limit)
	case EngineGoogle:
		return c.searchGoogle(ctx, query, limit)
	case EngineBing:
		return c.searchBing(ctx, query, limit)
	default:
		return nil, fmt.Errorf("unsupported search engine: %s", engine)
	}
}

// SupportedEngines lists the engines accepted by Search
func SupportedEngines() []string {
	return []string{EngineDuckDuckGo, EngineGoogle, EngineBing}
}

// IsSupportedEngine reports whether name is a known engine
func IsSupportedEngine(name string) bool {
	switch strings.ToLower(name) {
	case EngineDuckDuckGo, EngineGoogle, EngineBing:
		return true
	}
	return false
}
