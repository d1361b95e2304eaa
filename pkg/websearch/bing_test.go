package websearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bingAlgoFixture = `
<html><body><ol id="b_results">
<li class="b_algo"><h2><a href="https://example.com/alpha">Alpha Result</a></h2><p>snippet</p></li>
<li class="b_algo"><h2><a href="https://www.bing.com/search?q=related">Related searches</a></h2></li>
<li class="b_algo"><h2><a href="https://example.com/beta">Beta &amp; Gamma</a></h2><p>snippet</p></li>
<li class="b_algo"><h2><a href="https://example.com/alpha">Alpha Again</a></h2></li>
<li class="b_algo"><h2><a href="https://go.microsoft.com/fwlink/?LinkId=1">Privacy</a></h2></li>
<li class="b_algo"><h2><a href="https://example.com/delta">Delta Result</a></h2></li>
</ol></body></html>`

func TestExtractBingResults(t *testing.T) {
	results := ExtractBingResults(bingAlgoFixture, 10)

	require.Len(t, results, 3)
	assert.Equal(t, "Alpha Result", results[0].Title)
	assert.Equal(t, "https://example.com/alpha", results[0].URL)
	assert.Equal(t, "Beta & Gamma", results[1].Title)
	assert.Equal(t, "https://example.com/beta", results[1].URL)
	assert.Equal(t, "Delta Result", results[2].Title)
	assert.Equal(t, "https://example.com/delta", results[2].URL)
}

func TestExtractBingResultsLimit(t *testing.T) {
	results := ExtractBingResults(bingAlgoFixture, 1)

	require.Len(t, results, 1)
	assert.Equal(t, "https://example.com/alpha", results[0].URL)
}

func TestExtractBingResultsTitleBlockVariant(t *testing.T) {
	html := `<div class="b_title"><h2><a href="https://example.com/title-block">Title Block Result</a></h2></div>`

	results := ExtractBingResults(html, 10)

	require.Len(t, results, 1)
	assert.Equal(t, "Title Block Result", results[0].Title)
	assert.Equal(t, "https://example.com/title-block", results[0].URL)
}

func TestExtractBingResultsEntityEscapedURL(t *testing.T) {
	html := `<h2><a href="https://example.com/page?a=1&amp;b=2">Escaped Query</a></h2>`

	results := ExtractBingResults(html, 10)

	require.Len(t, results, 1)
	assert.Equal(t, "https://example.com/page?a=1&b=2", results[0].URL)
}

func TestExtractBingResultsEmpty(t *testing.T) {
	results := ExtractBingResults("<html><body>nothing</body></html>", 10)
	assert.Empty(t, results)
}
