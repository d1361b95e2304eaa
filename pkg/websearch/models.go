package websearch

// Supported search engines
const (
	EngineDuckDuckGo = "duckduckgo"
	EngineGoogle     = "google"
	EngineBing       = "bing"
)

// SearchResult represents a single web search result
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ImageResult represents a single image search result
type ImageResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Source    string `json:"source"`
}

// VideoResult represents a single video search result
type VideoResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	EmbedURL    string `json:"embed_url"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Published   string `json:"published"`
	Publisher   string `json:"publisher"`
	Uploader    string `json:"uploader"`
}

// AnswerResult represents an instant answer abstract
type AnswerResult struct {
	Abstract       string `json:"abstract"`
	AbstractSource string `json:"abstract_source"`
	AbstractURL    string `json:"abstract_url"`
}

// ImageSearchResults bundles the results of an image search together with
// the vqd token that was used to fetch them
type ImageSearchResults struct {
	Vqd     string
	Results []ImageResult
}

// VideoSearchResults bundles the results of a video search together with
// the vqd token that was used to fetch them
type VideoSearchResults struct {
	Vqd     string
	Results []VideoResult
}

// DuckDuckGoResponse represents the response from the DuckDuckGo Instant Answer API
type DuckDuckGoResponse struct {
	AbstractText   string  `json:"AbstractText"`
	AbstractSource string  `json:"AbstractSource"`
	AbstractURL    string  `json:"AbstractURL"`
	Heading        string  `json:"Heading"`
	RelatedTopics  []Topic `json:"RelatedTopics"`
	Type           string  `json:"Type"`
}

// Topic represents a related topic in a DuckDuckGo Instant Answer response.
// A topic either carries a direct Text/FirstURL pair or is a container whose
// Topics slice holds the actual entries one level down.
type Topic struct {
	FirstURL string  `json:"FirstURL"`
	Text     string  `json:"Text"`
	Name     string  `json:"Name,omitempty"`
	Topics   []Topic `json:"Topics,omitempty"`
}

// duckDuckGoImageResponse represents the response from the DuckDuckGo image API
type duckDuckGoImageResponse struct {
	Results []duckDuckGoImage `json:"results"`
}

type duckDuckGoImage struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Source    string `json:"source"`
}

// duckDuckGoVideoResponse represents the response from the DuckDuckGo video API
type duckDuckGoVideoResponse struct {
	Results []duckDuckGoVideo `json:"results"`
}

type duckDuckGoVideo struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	EmbedURL    string `json:"embed_url"`
	Published   string `json:"published"`
	Publisher   string `json:"publisher"`
	Uploader    string `json:"uploader"`
	Images      struct {
		Large  string `json:"large"`
		Medium string `json:"medium"`
		Small  string `json:"small"`
		Motion string `json:"motion"`
	} `json:"images"`
}
