package searchapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Code-Monger/SearchSpinneret/pkg/serverinfo"
	"github.com/Code-Monger/SearchSpinneret/pkg/stats"
	"github.com/Code-Monger/SearchSpinneret/pkg/suggest"
	"github.com/Code-Monger/SearchSpinneret/pkg/websearch"
	"github.com/julienschmidt/httprouter"
)

// searchResponse is the body returned by the web search endpoint
type searchResponse struct {
	Query      string                   `json:"q"`
	Engine     string                   `json:"engine"`
	Results    []websearch.SearchResult `json:"results"`
	Count      int                      `json:"count"`
	Suggestion string                   `json:"suggestion,omitempty"`
}

// answersResponse is the body returned by the instant answer endpoint
type answersResponse struct {
	Query   string                   `json:"q"`
	Answer  *websearch.AnswerResult  `json:"answer,omitempty"`
	Related []websearch.SearchResult `json:"related"`
	Count   int                      `json:"count"`
}

// imagesResponse is the body returned by the image search endpoint
type imagesResponse struct {
	Query   string                  `json:"q"`
	Vqd     string                  `json:"vqd"`
	Results []websearch.ImageResult `json:"results"`
	Count   int                     `json:"count"`
}

// videosResponse is the body returned by the video search endpoint
type videosResponse struct {
	Query   string                  `json:"q"`
	Vqd     string                  `json:"vqd"`
	Results []websearch.VideoResult `json:"results"`
	Count   int                     `json:"count"`
}

// queryParam extracts and trims the required q parameter
func queryParam(r *http.Request) (string, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		return "", &ValidationError{Message: "missing required parameter: q"}
	}
	return query, nil
}

// maxResultsParam extracts the max_results parameter, applying the default
// and clamping into the allowed range. Values that fail to parse fall back
// to the default rather than erroring.
func maxResultsParam(r *http.Request) int {
	raw := r.URL.Query().Get("max_results")
	if raw == "" {
		return websearch.DefaultMaxResults
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return websearch.DefaultMaxResults
	}
	return websearch.ClampLimit(n)
}

// handleSearch handles GET /search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := requestIDFrom(r)

	query, err := queryParam(r)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	engine := strings.ToLower(r.URL.Query().Get("engine"))
	if engine == "" {
		engine = websearch.EngineDuckDuckGo
	}
	if !websearch.IsSupportedEngine(engine) {
		writeError(w, requestID, &ValidationError{
			Message: fmt.Sprintf("unsupported search engine: %s (supported: %s)",
				engine, strings.Join(websearch.SupportedEngines(), ", ")),
		})
		return
	}

	maxResults := maxResultsParam(r)

	results, err := s.client.Search(r.Context(), query, maxResults, engine)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:      query,
		Engine:     engine,
		Results:    results,
		Count:      len(results),
		Suggestion: suggest.Correct(query),
	})
}

// handleAnswers handles GET /answers
func (s *Server) handleAnswers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := requestIDFrom(r)

	query, err := queryParam(r)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	answer, related, err := s.client.SearchAnswers(r.Context(), query)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	writeJSON(w, http.StatusOK, answersResponse{
		Query:   query,
		Answer:  answer,
		Related: related,
		Count:   len(related),
	})
}

// handleImages handles GET /images
func (s *Server) handleImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := requestIDFrom(r)

	query, err := queryParam(r)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	images, err := s.client.SearchImages(r.Context(), query, maxResultsParam(r))
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	writeJSON(w, http.StatusOK, imagesResponse{
		Query:   query,
		Vqd:     images.Vqd,
		Results: images.Results,
		Count:   len(images.Results),
	})
}

// handleVideos handles GET /videos
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := requestIDFrom(r)

	query, err := queryParam(r)
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	videos, err := s.client.SearchVideos(r.Context(), query, maxResultsParam(r))
	if err != nil {
		writeError(w, requestID, err)
		return
	}

	writeJSON(w, http.StatusOK, videosResponse{
		Query:   query,
		Vqd:     videos.Vqd,
		Results: videos.Results,
		Count:   len(videos.Results),
	})
}

// handleAPI handles GET /api, dispatching on the type parameter
func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	searchType := strings.ToLower(r.URL.Query().Get("type"))
	if searchType == "" {
		searchType = "web"
	}

	switch searchType {
	case "web":
		s.handleSearch(w, r, ps)
	case "answers":
		s.handleAnswers(w, r, ps)
	case "images":
		s.handleImages(w, r, ps)
	case "videos":
		s.handleVideos(w, r, ps)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         fmt.Sprintf("unsupported search type: %s", searchType),
			"allowed_types": []string{"web", "answers", "images", "videos"},
		})
	}
}

// handleStats handles GET /stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	manager := stats.GetStatsManager()
	if manager == nil {
		writeError(w, requestIDFrom(r), fmt.Errorf("stats manager not initialized"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":  manager.GetSessionStats(),
		"all_time": manager.GetPersistentStats(),
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"server": serverinfo.Info(),
	})
}
