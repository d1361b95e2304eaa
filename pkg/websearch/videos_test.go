package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const videoAPIFixture = `{
	"results": [
		{
			"title": "Go Concurrency Patterns",
			"content": "https://www.youtube.com/watch?v=f6kdp27TYZs",
			"description": "Rob Pike's talk on concurrency",
			"duration": "51:27",
			"embed_url": "https://www.youtube.com/embed/f6kdp27TYZs",
			"published": "2012-07-05T00:00:00",
			"publisher": "YouTube",
			"uploader": "Google Developers",
			"images": {
				"large": "https://tn.example.com/large.jpg",
				"medium": "https://tn.example.com/medium.jpg",
				"small": "https://tn.example.com/small.jpg"
			}
		},
		{
			"title": "No Large Thumbnail",
			"content": "https://example.com/video2",
			"duration": "10:00",
			"publisher": "Example",
			"images": {
				"medium": "https://tn.example.com/medium2.jpg",
				"small": "https://tn.example.com/small2.jpg"
			}
		},
		{
			"title": "Small Only",
			"content": "https://example.com/video3",
			"images": {
				"small": "https://tn.example.com/small3.jpg"
			}
		}
	]
}`

func TestExtractVideoResults(t *testing.T) {
	results, err := ExtractVideoResults([]byte(videoAPIFixture), 10)
	require.NoError(t, err)

	require.Len(t, results, 3)
	first := results[0]
	assert.Equal(t, "Go Concurrency Patterns", first.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=f6kdp27TYZs", first.URL)
	assert.Equal(t, "Rob Pike's talk on concurrency", first.Description)
	assert.Equal(t, "https://www.youtube.com/embed/f6kdp27TYZs", first.EmbedURL)
	assert.Equal(t, "51:27", first.Duration)
	assert.Equal(t, "YouTube", first.Publisher)
	assert.Equal(t, "Google Developers", first.Uploader)

	// Thumbnail prefers large, then medium, then small
	assert.Equal(t, "https://tn.example.com/large.jpg", results[0].Thumbnail)
	assert.Equal(t, "https://tn.example.com/medium2.jpg", results[1].Thumbnail)
	assert.Equal(t, "https://tn.example.com/small3.jpg", results[2].Thumbnail)
}

func TestExtractVideoResultsLimit(t *testing.T) {
	results, err := ExtractVideoResults([]byte(videoAPIFixture), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestExtractVideoResultsInvalidJSON(t *testing.T) {
	_, err := ExtractVideoResults([]byte("nope"), 10)
	assert.Error(t, err)
}

func TestSearchVideos(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/front", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`vqd="4-video-token"`))
	})
	mux.HandleFunc("/v.js", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4-video-token", r.URL.Query().Get("vqd"))
		w.Write([]byte(videoAPIFixture))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := NewClient(&Config{
		DuckDuckGoURL:      ts.URL + "/front",
		DuckDuckGoVideoURL: ts.URL + "/v.js",
		UserAgent:          "test-agent",
		FetchTimeout:       5,
	})

	videos, err := client.SearchVideos(context.Background(), "go concurrency", 10)
	require.NoError(t, err)

	assert.Equal(t, "4-video-token", videos.Vqd)
	require.Len(t, videos.Results, 3)
}
