package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client issues search requests against the configured engines. Each call is
// independent and stateless; the client holds no per-query state beyond the
// underlying HTTP connection pool.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new search client. A nil config falls back to the
// environment-driven defaults from GetConfig.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = GetConfig()
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout) * time.Second,
		},
	}
}

// fetch performs a GET request with the given headers and returns the raw
// response body. A non-2xx status is reported as an UpstreamError.
func (c *Client) fetch(ctx context.Context, engine, reqURL string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	// Set headers to mimic a browser
	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Engine: engine, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Engine: engine, StatusCode: resp.StatusCode, Message: resp.Status}
	}

	return string(body), nil
}

// browserHeaders returns the extra header set Google and Bing expect before
// they serve the regular HTML result page instead of a bot challenge.
func browserHeaders() map[string]string {
	return map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Sec-Fetch-Dest":  "document",
		"Sec-Fetch-Mode":  "navigate",
		"Sec-Fetch-Site":  "none",
		"Sec-Fetch-User":  "?1",
	}
}
