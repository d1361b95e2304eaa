package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
)

// SearchVideos performs a video search via DuckDuckGo's JSON API using the
// same two-step vqd token protocol as image search.
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) (*VideoSearchResults, error) {
	vqd, err := c.fetchVqdToken(ctx, query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("l", "us-en")
	params.Add("o", "json")
	params.Add("q", query)
	params.Add("vqd", vqd)

	reqURL := fmt.Sprintf("%s?%s", c.config.DuckDuckGoVideoURL, params.Encode())
	body, err := c.fetch(ctx, EngineDuckDuckGo, reqURL, map[string]string{
		"Referer": "https://duckduckgo.com/",
	})
	if err != nil {
		return nil, err
	}

	results, err := ExtractVideoResults([]byte(body), limit)
	if err != nil {
		return nil, err
	}

	log.Printf("[WebSearch] Video search returned %d results for %q", len(results), query)

	return &VideoSearchResults{Vqd: vqd, Results: results}, nil
}

// ExtractVideoResults maps the video API's JSON result array onto normalized
// video records. Destination and embed URLs pass through the redirect
// decoder; the thumbnail falls back through large, medium, small.
func ExtractVideoResults(payload []byte, limit int) ([]VideoResult, error) {
	var response duckDuckGoVideoResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("error parsing video response: %w", err)
	}

	results := []VideoResult{}
	for _, item := range response.Results {
		if len(results) >= limit {
			break
		}

		thumbnail := item.Images.Large
		if thumbnail == "" {
			thumbnail = item.Images.Medium
		}
		if thumbnail == "" {
			thumbnail = item.Images.Small
		}

		results = append(results, VideoResult{
			Title:       item.Title,
			URL:         DecodeRedirectURL(item.Content),
			Description: item.Description,
			EmbedURL:    DecodeRedirectURL(item.EmbedURL),
			Thumbnail:   thumbnail,
			Duration:    item.Duration,
			Published:   item.Published,
			Publisher:   item.Publisher,
			Uploader:    item.Uploader,
		})
	}

	return results, nil
}
