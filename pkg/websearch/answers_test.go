package websearch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractInstantAnswer(t *testing.T) {
	payload := []byte(`{
		"AbstractText": "Go is a statically typed, compiled programming language.",
		"AbstractSource": "Wikipedia",
		"AbstractURL": "https://en.wikipedia.org/wiki/Go_(programming_language)",
		"Heading": "Go (programming language)",
		"RelatedTopics": [
			{"FirstURL": "https://duckduckgo.com/c/Compiled_languages", "Text": "Compiled languages"},
			{
				"Name": "Related",
				"Topics": [
					{"FirstURL": "https://duckduckgo.com/Rob_Pike", "Text": "Rob Pike"},
					{"FirstURL": "https://duckduckgo.com/Ken_Thompson", "Text": "Ken Thompson"}
				]
			},
			{"FirstURL": "https://duckduckgo.com/Google", "Text": "Google"}
		]
	}`)

	answer, related, err := ExtractInstantAnswer(payload)
	require.NoError(t, err)

	require.NotNil(t, answer)
	assert.Equal(t, "Go is a statically typed, compiled programming language.", answer.Abstract)
	assert.Equal(t, "Wikipedia", answer.AbstractSource)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(programming_language)", answer.AbstractURL)

	// Direct topics and expanded container children keep document order
	require.Len(t, related, 4)
	assert.Equal(t, "Compiled languages", related[0].Title)
	assert.Equal(t, "Rob Pike", related[1].Title)
	assert.Equal(t, "Ken Thompson", related[2].Title)
	assert.Equal(t, "Google", related[3].Title)
}

func TestExtractInstantAnswerNoAbstract(t *testing.T) {
	payload := []byte(`{
		"AbstractText": "",
		"AbstractSource": "",
		"AbstractURL": "",
		"RelatedTopics": [
			{"FirstURL": "https://example.com/a", "Text": "A"}
		]
	}`)

	answer, related, err := ExtractInstantAnswer(payload)
	require.NoError(t, err)

	assert.Nil(t, answer)
	require.Len(t, related, 1)
	assert.Equal(t, "A", related[0].Title)
}

func TestExtractInstantAnswerTopicCap(t *testing.T) {
	topics := ""
	for i := 0; i < 15; i++ {
		if i > 0 {
			topics += ","
		}
		topics += fmt.Sprintf(`{"FirstURL": "https://example.com/%d", "Text": "Topic %d"}`, i, i)
	}
	payload := []byte(`{"AbstractText": "", "RelatedTopics": [` + topics + `]}`)

	_, related, err := ExtractInstantAnswer(payload)
	require.NoError(t, err)

	require.Len(t, related, 10)
	assert.Equal(t, "Topic 0", related[0].Title)
	assert.Equal(t, "Topic 9", related[9].Title)
}

func TestExtractInstantAnswerContainerCap(t *testing.T) {
	children := ""
	for i := 0; i < 15; i++ {
		if i > 0 {
			children += ","
		}
		children += fmt.Sprintf(`{"FirstURL": "https://example.com/%d", "Text": "Child %d"}`, i, i)
	}
	payload := []byte(`{"AbstractText": "", "RelatedTopics": [
		{"FirstURL": "https://example.com/direct", "Text": "Direct"},
		{"Name": "Container", "Topics": [` + children + `]}
	]}`)

	_, related, err := ExtractInstantAnswer(payload)
	require.NoError(t, err)

	require.Len(t, related, 10)
	assert.Equal(t, "Direct", related[0].Title)
	assert.Equal(t, "Child 8", related[9].Title)
}

func TestExtractInstantAnswerInvalidJSON(t *testing.T) {
	_, _, err := ExtractInstantAnswer([]byte("not json"))
	assert.Error(t, err)
}
