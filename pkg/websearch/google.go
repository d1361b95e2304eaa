package websearch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
)

// googleResultPatterns is the ordered list of layouts we know how to read.
// Google ships several DOM variants depending on client hints and rolls them
// over without notice, so every pattern here is expected to stop matching at
// some point; the chain is tried top to bottom until the quota is filled.
var googleResultPatterns = []*regexp.Regexp{
	// Current desktop layout: anchor wrapping an h3 heading
	regexp.MustCompile(`(?s)<a href="(https?://[^"]+)"[^>]*>\s*<h3[^>]*>(.*?)</h3>`),
	// yuRUbf container layout
	regexp.MustCompile(`(?s)<div class="yuRUbf"[^>]*><a href="([^"]+)"[^>]*>.*?<h3[^>]*>(.*?)</h3>`),
	// Classic desktop layout: heading wrapping the anchor
	regexp.MustCompile(`(?s)<h3[^>]*><a href="([^"]+)"[^>]*>(.*?)</a></h3>`),
	// No-JS mobile layout with BNeawe title divs
	regexp.MustCompile(`(?s)<a href="([^"]+)"[^>]*><div class="BNeawe[^"]*">(.*?)</div>`),
	// Redirect wrapper; the href needs a second decode step to pull out q
	regexp.MustCompile(`(?s)<a href="(/url\?q=[^"]+)"[^>]*>(.*?)</a>`),
}

// searchGoogle performs a web search by scraping the Google HTML result page
func (c *Client) searchGoogle(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", limit+5))

	reqURL := fmt.Sprintf("%s?%s", c.config.GoogleURL, params.Encode())
	body, err := c.fetch(ctx, EngineGoogle, reqURL, browserHeaders())
	if err != nil {
		return nil, err
	}

	results := ExtractGoogleResults(body, limit)
	log.Printf("[WebSearch] Google returned %d results for %q", len(results), query)

	return results, nil
}

// ExtractGoogleResults extracts search results from a Google HTML result
// page. Patterns are applied in order until the limit is reached; candidates
// pointing back at Google's own search or cache pages are skipped, and
// duplicate destinations are suppressed.
func ExtractGoogleResults(html string, limit int) []SearchResult {
	results := []SearchResult{}
	seen := make(map[string]bool)

	for _, pattern := range googleResultPatterns {
		if len(results) >= limit {
			break
		}

		for _, match := range pattern.FindAllStringSubmatch(html, -1) {
			if len(match) < 3 {
				continue
			}

			resultURL := resolveGoogleURL(match[1])
			title := cleanHTML(match[2])

			if title == "" || resultURL == "" {
				continue
			}
			if isGoogleInternalURL(resultURL) {
				continue
			}
			if seen[resultURL] {
				continue
			}
			seen[resultURL] = true

			results = append(results, SearchResult{
				Title: title,
				URL:   resultURL,
			})

			if len(results) >= limit {
				break
			}
		}
	}

	return results
}

// resolveGoogleURL unwraps Google's /url?q= redirect and then runs the
// generic redirect decoder over whatever is left
func resolveGoogleURL(raw string) string {
	raw = strings.ReplaceAll(raw, "&amp;", "&")

	if strings.HasPrefix(raw, "/url?") {
		params, err := url.ParseQuery(strings.SplitN(raw, "?", 2)[1])
		if err == nil && params.Get("q") != "" {
			raw = params.Get("q")
		}
	}

	return DecodeRedirectURL(raw)
}

// isGoogleInternalURL reports whether a candidate points back at Google's own
// search, redirect, or cache pages rather than at an actual result
func isGoogleInternalURL(resultURL string) bool {
	if strings.HasPrefix(resultURL, "/") || strings.HasPrefix(resultURL, "#") {
		return true
	}
	lowered := strings.ToLower(resultURL)
	return strings.Contains(lowered, "google.com/search") ||
		strings.Contains(lowered, "google.com/url") ||
		strings.Contains(lowered, "google.com/imgres") ||
		strings.Contains(lowered, "webcache.googleusercontent.com")
}
