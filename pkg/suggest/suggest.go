// Package suggest produces "did you mean" corrections for search queries
// using a fuzzy spelling model trained on a term dictionary.
package suggest

import (
	"bufio"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

// EnvDictionary optionally points at a newline-delimited word list used to
// train the model in addition to the built-in terms.
const EnvDictionary = "SUGGEST_DICTIONARY"

var (
	model      *fuzzy.Model
	vocabulary map[string]bool
	modelOnce  sync.Once
)

// getModel returns the trained fuzzy model, initializing it on first use
func getModel() *fuzzy.Model {
	modelOnce.Do(func() {
		m := fuzzy.NewModel()

		// Set the model parameters
		m.SetDepth(2)     // Maximum edit distance
		m.SetThreshold(1) // Minimum frequency threshold

		vocabulary = make(map[string]bool)
		train := func(word string) {
			word = strings.ToLower(word)
			m.TrainWord(word)
			vocabulary[word] = true
		}

		for _, word := range builtinTerms() {
			train(word)
		}

		// Train with an external dictionary if one is configured
		if path := os.Getenv(EnvDictionary); path != "" {
			file, err := os.Open(path)
			if err != nil {
				log.Printf("[Suggest] Error opening dictionary %s: %v", path, err)
			} else {
				defer file.Close()

				scanner := bufio.NewScanner(file)
				for scanner.Scan() {
					word := strings.TrimSpace(scanner.Text())
					if word != "" {
						train(word)
					}
				}
				if err := scanner.Err(); err != nil {
					log.Printf("[Suggest] Error reading dictionary %s: %v", path, err)
				}
			}
		}

		log.Printf("[Suggest] Trained fuzzy model with %d words", len(vocabulary))

		model = m
	})
	return model
}

// Correct returns a corrected form of the query, or the empty string when no
// word earns a correction. Words already in the vocabulary are left alone,
// and a correction is only offered when it is a single edit away from the
// input; anything further off is treated as a term the vocabulary simply
// does not cover, not a misspelling.
func Correct(query string) string {
	m := getModel()

	words := strings.Fields(query)
	corrected := make([]string, 0, len(words))
	changed := false

	for _, word := range words {
		lower := strings.ToLower(word)
		if vocabulary[lower] {
			corrected = append(corrected, word)
			continue
		}

		suggestion := m.SpellCheck(lower)
		if suggestion != "" && suggestion != lower && fuzzy.Levenshtein(&lower, &suggestion) == 1 {
			corrected = append(corrected, suggestion)
			changed = true
			continue
		}
		corrected = append(corrected, word)
	}

	if !changed {
		return ""
	}
	return strings.Join(corrected, " ")
}

// builtinTerms is the default training vocabulary, skewed toward the
// technical queries this service mostly sees.
func builtinTerms() []string {
	return []string{
		"search", "engine", "query", "result", "results", "image", "images",
		"video", "videos", "answer", "answers", "instant", "browser",
		"internet", "website", "webpage", "online", "download", "upload",
		"server", "client", "request", "response", "network", "protocol",
		"http", "https", "html", "json", "xml", "javascript", "python",
		"golang", "java", "rust", "linux", "windows", "macos", "android",
		"docker", "kubernetes", "database", "storage", "cache", "proxy",
		"security", "password", "encryption", "firewall", "virus",
		"software", "hardware", "computer", "laptop", "phone", "tablet",
		"keyboard", "monitor", "processor", "memory", "graphics",
		"programming", "developer", "tutorial", "documentation", "example",
		"install", "update", "upgrade", "configure", "settings", "error",
		"weather", "news", "music", "movie", "recipe", "travel", "hotel",
		"restaurant", "shopping", "price", "review", "compare", "best",
		"free", "open", "source", "license", "github", "wikipedia",
		"science", "history", "mathematics", "physics", "chemistry",
		"biology", "medicine", "health", "fitness", "sports", "football",
		"language", "english", "spanish", "french", "german", "translate",
		"dictionary", "definition", "meaning", "synonym", "grammar",
	}
}
