package websearch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// searchDuckDuckGo performs a web search using the DuckDuckGo lite HTML front-end
func (c *Client) searchDuckDuckGo(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Add("q", query)

	reqURL := fmt.Sprintf("%s?%s", c.config.DuckDuckGoLiteURL, params.Encode())
	body, err := c.fetch(ctx, EngineDuckDuckGo, reqURL, map[string]string{
		"Referer": "https://duckduckgo.com/",
	})
	if err != nil {
		return nil, err
	}

	results := ExtractDuckDuckGoResults(body, limit)
	log.Printf("[WebSearch] DuckDuckGo returned %d results for %q", len(results), query)

	return results, nil
}

// ExtractDuckDuckGoResults extracts search results from the DuckDuckGo lite
// HTML page. Result links are anchors carrying the result__a class; the href
// is a redirect wrapper that gets decoded before it is returned.
func ExtractDuckDuckGoResults(html string, limit int) []SearchResult {
	results := []SearchResult{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return results
	}

	doc.Find("a.result__a").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}

		title := strings.TrimSpace(s.Text())
		if title == "" {
			return true
		}

		results = append(results, SearchResult{
			Title: title,
			URL:   DecodeRedirectURL(href),
		})

		return len(results) < limit
	})

	return results
}
