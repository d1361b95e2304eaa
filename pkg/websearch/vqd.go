package websearch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
)

// DuckDuckGo's image and video APIs require a vqd token that is embedded in
// the HTML front-end. The token shows up in two textual forms: quoted
// (vqd="..." or vqd='...') and bare (vqd=... terminated by & or a quote).
var vqdPatterns = []*regexp.Regexp{
	regexp.MustCompile(`vqd=["']([^"']+)["']`),
	regexp.MustCompile(`vqd=([^&"'\s]+)`),
}

// ExtractVqdToken scans a DuckDuckGo HTML page for a vqd token assignment.
// An empty token is an error: without it the image/video API rejects the
// query, so the whole search fails as a unit.
func ExtractVqdToken(html string) (string, error) {
	for _, pattern := range vqdPatterns {
		if match := pattern.FindStringSubmatch(html); len(match) >= 2 && match[1] != "" {
			return match[1], nil
		}
	}
	return "", &UpstreamError{Engine: EngineDuckDuckGo, Message: "no vqd token found in response"}
}

// fetchVqdToken issues a plain query against the DuckDuckGo front-end and
// extracts the vqd token required by the JSON APIs. The token is scoped to
// this one query and is never cached.
func (c *Client) fetchVqdToken(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("iax", "images")
	params.Add("ia", "images")

	reqURL := fmt.Sprintf("%s?%s", c.config.DuckDuckGoURL, params.Encode())
	body, err := c.fetch(ctx, EngineDuckDuckGo, reqURL, nil)
	if err != nil {
		return "", err
	}

	return ExtractVqdToken(body)
}
