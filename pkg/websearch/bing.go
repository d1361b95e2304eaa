package websearch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
)

// bingResultPatterns is the ordered fallback chain for Bing's HTML layouts.
// Like Google, Bing rearranges its markup regularly; the first pattern tracks
// the layout observed most recently and the rest cover older variants.
var bingResultPatterns = []*regexp.Regexp{
	// Standard algo result: li.b_algo with an h2-wrapped anchor
	regexp.MustCompile(`(?s)<li class="b_algo"[^>]*>.*?<h2[^>]*><a href="([^"]+)"[^>]*>(.*?)</a></h2>`),
	// Title block variant
	regexp.MustCompile(`(?s)<div class="b_title"[^>]*><h2[^>]*><a href="([^"]+)"[^>]*>(.*?)</a>`),
	// Bare h2-wrapped anchors
	regexp.MustCompile(`(?s)<h2[^>]*><a href="([^"]+)"[^>]*>(.*?)</a></h2>`),
	// Most general form: any anchor inside an h2
	regexp.MustCompile(`(?s)<h2[^>]*>.*?<a[^>]*href="([^"]+)"[^>]*>(.*?)</a>.*?</h2>`),
}

// searchBing performs a web search by scraping the Bing HTML result page
func (c *Client) searchBing(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("count", fmt.Sprintf("%d", limit))

	reqURL := fmt.Sprintf("%s?%s", c.config.BingURL, params.Encode())
	body, err := c.fetch(ctx, EngineBing, reqURL, browserHeaders())
	if err != nil {
		return nil, err
	}

	results := ExtractBingResults(body, limit)
	log.Printf("[WebSearch] Bing returned %d results for %q", len(results), query)

	return results, nil
}

// ExtractBingResults extracts search results from a Bing HTML result page.
// Patterns are applied in order until the limit is reached; links back to
// Bing's own search pages or Microsoft properties are skipped, and duplicate
// destinations are suppressed.
func ExtractBingResults(html string, limit int) []SearchResult {
	results := []SearchResult{}
	seen := make(map[string]bool)

	for _, pattern := range bingResultPatterns {
		if len(results) >= limit {
			break
		}

		for _, match := range pattern.FindAllStringSubmatch(html, -1) {
			if len(match) < 3 {
				continue
			}

			resultURL := DecodeRedirectURL(strings.ReplaceAll(match[1], "&amp;", "&"))
			title := cleanHTML(match[2])

			if title == "" || resultURL == "" {
				continue
			}
			if isBingInternalURL(resultURL) {
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

// isBingInternalURL reports whether a candidate points back at Bing's own
// search pages or at Microsoft navigation links rather than at a result
func isBingInternalURL(resultURL string) bool {
	if strings.HasPrefix(resultURL, "/") || strings.HasPrefix(resultURL, "#") {
		return true
	}
	lowered := strings.ToLower(resultURL)
	return strings.Contains(lowered, "bing.com/search") ||
		strings.Contains(lowered, "bing.com/ck/") ||
		strings.Contains(lowered, "bing.com/images/search") ||
		strings.Contains(lowered, "go.microsoft.com") ||
		strings.Contains(lowered, "microsoft.com/en-us/bing")
}
