package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectMisspelledWord(t *testing.T) {
	assert.Equal(t, "search", Correct("serch"))
	assert.Equal(t, "weather", Correct("wether"))
}

func TestCorrectMultiWordQuery(t *testing.T) {
	assert.Equal(t, "search engine", Correct("serch engine"))
}

func TestCorrectKnownWordsReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Correct("search engine"))
	assert.Equal(t, "", Correct("weather"))
}

func TestCorrectUnknownGibberishReturnsEmpty(t *testing.T) {
	// Nothing in the vocabulary is close enough to suggest
	assert.Equal(t, "", Correct("xqzvvvplk"))
}

func TestCorrectLeavesOutOfVocabularyTermsAlone(t *testing.T) {
	// Proper nouns the vocabulary does not cover must not get snapped to
	// the nearest trained term ("openai" is two edits from "open")
	assert.Equal(t, "", Correct("openai"))
	assert.Equal(t, "", Correct("kubernetesctl"))
}

func TestCorrectEmptyQuery(t *testing.T) {
	assert.Equal(t, "", Correct(""))
	assert.Equal(t, "", Correct("   "))
}
