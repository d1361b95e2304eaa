package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
)

// SearchImages performs an image search via DuckDuckGo's JSON API. This is a
// two-step protocol: first a vqd token is scraped from the HTML front-end,
// then the token is passed as a query parameter on the API call. A missing
// token fails the whole search; there is no retry.
func (c *Client) SearchImages(ctx context.Context, query string, limit int) (*ImageSearchResults, error) {
	vqd, err := c.fetchVqdToken(ctx, query)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("l", "us-en")
	params.Add("o", "json")
	params.Add("q", query)
	params.Add("vqd", vqd)
	params.Add("f", ",,,")
	params.Add("p", "1")

	reqURL := fmt.Sprintf("%s?%s", c.config.DuckDuckGoImageURL, params.Encode())
	body, err := c.fetch(ctx, EngineDuckDuckGo, reqURL, map[string]string{
		"Referer": "https://duckduckgo.com/",
	})
	if err != nil {
		return nil, err
	}

	results, err := ExtractImageResults([]byte(body), limit)
	if err != nil {
		return nil, err
	}

	log.Printf("[WebSearch] Image search returned %d results for %q", len(results), query)

	return &ImageSearchResults{Vqd: vqd, Results: results}, nil
}

// ExtractImageResults maps the image API's JSON result array onto normalized
// image records. Destination URLs pass through the redirect decoder.
func ExtractImageResults(payload []byte, limit int) ([]ImageResult, error) {
	var response duckDuckGoImageResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("error parsing image response: %w", err)
	}

	results := []ImageResult{}
	for _, item := range response.Results {
		if len(results) >= limit {
			break
		}

		results = append(results, ImageResult{
			Title:     item.Title,
			URL:       DecodeRedirectURL(item.URL),
			Image:     item.Image,
			Thumbnail: item.Thumbnail,
			Height:    item.Height,
			Width:     item.Width,
			Source:    item.Source,
		})
	}

	return results, nil
}
