package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
)

// maxRelatedTopics caps the related list regardless of how many topics the
// Instant Answer API returns
const maxRelatedTopics = 10

// SearchAnswers queries the DuckDuckGo Instant Answer API and returns an
// optional abstract plus up to ten related results
func (c *Client) SearchAnswers(ctx context.Context, query string) (*AnswerResult, []SearchResult, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("no_html", "1")
	params.Add("skip_disambig", "1")

	reqURL := fmt.Sprintf("%s?%s", c.config.DuckDuckGoAPIURL, params.Encode())
	body, err := c.fetch(ctx, EngineDuckDuckGo, reqURL, nil)
	if err != nil {
		return nil, nil, err
	}

	answer, related, err := ExtractInstantAnswer([]byte(body))
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[WebSearch] Instant answer for %q: abstract=%v, %d related topics",
		query, answer != nil, len(related))

	return answer, related, nil
}

// ExtractInstantAnswer parses an Instant Answer JSON payload. The abstract is
// only produced when the payload carries abstract text. Related results are
// flattened from the two-level topic tree: topics with a direct text/URL pair
// are taken as-is, container topics are expanded one level, and the combined
// list preserves document order and stops at ten entries.
func ExtractInstantAnswer(payload []byte) (*AnswerResult, []SearchResult, error) {
	var response DuckDuckGoResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, nil, fmt.Errorf("error parsing instant answer response: %w", err)
	}

	var answer *AnswerResult
	if response.AbstractText != "" {
		answer = &AnswerResult{
			Abstract:       response.AbstractText,
			AbstractSource: response.AbstractSource,
			AbstractURL:    response.AbstractURL,
		}
	}

	related := []SearchResult{}
	for _, topic := range response.RelatedTopics {
		if len(related) >= maxRelatedTopics {
			break
		}

		if topic.Text != "" && topic.FirstURL != "" {
			related = append(related, SearchResult{
				Title: topic.Text,
				URL:   topic.FirstURL,
			})
			continue
		}

		// Container topic: expand one level, still subject to the cap
		for _, child := range topic.Topics {
			if len(related) >= maxRelatedTopics {
				break
			}
			if child.Text != "" && child.FirstURL != "" {
				related = append(related, SearchResult{
					Title: child.Text,
					URL:   child.FirstURL,
				})
			}
		}
	}

	return answer, related, nil
}
