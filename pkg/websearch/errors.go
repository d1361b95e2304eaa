package websearch

import "fmt"

// UpstreamError indicates that a search engine answered with a non-success
// status, or that a required step (such as acquiring a vqd token) failed.
type UpstreamError struct {
	Engine     string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Engine, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Engine, e.Message)
}
