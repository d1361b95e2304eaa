package websearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/Code-Monger/SearchSpinneret/pkg/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleWebSearch is the handler function for the web search tool
func HandleWebSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract query
	query, ok := arguments["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}
	query = strings.TrimSpace(query)

	// Extract number of results
	numResults := DefaultMaxResults
	if numResultsFloat, ok := arguments["max_results"].(float64); ok {
		numResults = ClampLimit(int(numResultsFloat))
	}

	// Extract search engine
	engine, _ := arguments["engine"].(string)
	if engine == "" {
		engine = EngineDuckDuckGo
	}

	// Perform the search
	results, err := NewClient(nil).Search(ctx, query, numResults, engine)
	if err != nil {
		return nil, fmt.Errorf("error performing search: %v", err)
	}

	// Format the results
	resultText := fmt.Sprintf("Search Results for '%s' using %s:\n\n", query, engine)
	for i, result := range results {
		resultText += fmt.Sprintf("%d. %s\n", i+1, result.Title)
		resultText += fmt.Sprintf("   URL: %s\n\n", result.URL)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// HandleInstantAnswer is the handler function for the instant answer tool
func HandleInstantAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	query, ok := arguments["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}
	query = strings.TrimSpace(query)

	answer, related, err := NewClient(nil).SearchAnswers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching instant answer: %v", err)
	}

	resultText := fmt.Sprintf("Instant Answer for '%s':\n\n", query)
	if answer != nil {
		resultText += fmt.Sprintf("%s\n(source: %s, %s)\n\n", answer.Abstract, answer.AbstractSource, answer.AbstractURL)
	} else {
		resultText += "No abstract available.\n\n"
	}
	for i, result := range related {
		resultText += fmt.Sprintf("%d. %s\n   URL: %s\n", i+1, result.Title, result.URL)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// HandleImageSearch is the handler function for the image search tool
func HandleImageSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	query, ok := arguments["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}
	query = strings.TrimSpace(query)

	numResults := DefaultMaxResults
	if numResultsFloat, ok := arguments["max_results"].(float64); ok {
		numResults = ClampLimit(int(numResultsFloat))
	}

	images, err := NewClient(nil).SearchImages(ctx, query, numResults)
	if err != nil {
		return nil, fmt.Errorf("error performing image search: %v", err)
	}

	resultText := fmt.Sprintf("Image Results for '%s':\n\n", query)
	for i, result := range images.Results {
		resultText += fmt.Sprintf("%d. %s (%dx%d, %s)\n", i+1, result.Title, result.Width, result.Height, result.Source)
		resultText += fmt.Sprintf("   Image: %s\n   Page: %s\n\n", result.Image, result.URL)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// HandleVideoSearch is the handler function for the video search tool
func HandleVideoSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	query, ok := arguments["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must be a non-empty string")
	}
	query = strings.TrimSpace(query)

	numResults := DefaultMaxResults
	if numResultsFloat, ok := arguments["max_results"].(float64); ok {
		numResults = ClampLimit(int(numResultsFloat))
	}

	videos, err := NewClient(nil).SearchVideos(ctx, query, numResults)
	if err != nil {
		return nil, fmt.Errorf("error performing video search: %v", err)
	}

	resultText := fmt.Sprintf("Video Results for '%s':\n\n", query)
	for i, result := range videos.Results {
		resultText += fmt.Sprintf("%d. %s (%s, %s)\n", i+1, result.Title, result.Duration, result.Publisher)
		resultText += fmt.Sprintf("   URL: %s\n\n", result.URL)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// RegisterWebSearch registers the search tools with the MCP server
func RegisterWebSearch(mcpServer *server.MCPServer) {
	webSearchTool := mcp.NewTool("websearch",
		mcp.WithDescription("Performs web searches against DuckDuckGo, Google, or Bing and returns normalized results"),
		mcp.WithString("query",
			mcp.Description("The search query"),
			mcp.Required(),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Number of results to return (default: 10, max: 20)"),
		),
		mcp.WithString("engine",
			mcp.Description("Search engine to use (duckduckgo, google, bing) (default: duckduckgo)"),
		),
	)
	mcpServer.AddTool(webSearchTool, stats.WrapTool("websearch", HandleWebSearch))

	instantAnswerTool := mcp.NewTool("instantanswer",
		mcp.WithDescription("Fetches a DuckDuckGo instant answer with related topics"),
		mcp.WithString("query",
			mcp.Description("The search query"),
			mcp.Required(),
		),
	)
	mcpServer.AddTool(instantAnswerTool, stats.WrapTool("instantanswer", HandleInstantAnswer))

	imageSearchTool := mcp.NewTool("imagesearch",
		mcp.WithDescription("Performs a DuckDuckGo image search"),
		mcp.WithString("query",
			mcp.Description("The search query"),
			mcp.Required(),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Number of results to return (default: 10, max: 20)"),
		),
	)
	mcpServer.AddTool(imageSearchTool, stats.WrapTool("imagesearch", HandleImageSearch))

	videoSearchTool := mcp.NewTool("videosearch",
		mcp.WithDescription("Performs a DuckDuckGo video search"),
		mcp.WithString("query",
			mcp.Description("The search query"),
			mcp.Required(),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Number of results to return (default: 10, max: 20)"),
		),
	)
	mcpServer.AddTool(videoSearchTool, stats.WrapTool("videosearch", HandleVideoSearch))
}
