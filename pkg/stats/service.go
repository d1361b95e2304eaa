package stats

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	// Global stats manager instance
	globalStatsManager *StatsManager
)

// InitStatsManager initializes the global stats manager
func InitStatsManager(dataDir string) error {
	statsFilePath := filepath.Join(dataDir, "stats.json")
	var err error
	globalStatsManager, err = NewStatsManager(statsFilePath)
	return err
}

// GetStatsManager returns the global stats manager
func GetStatsManager() *StatsManager {
	return globalStatsManager
}

// Record records a single handled request against the global manager
func Record(name string, startTime time.Time, failed bool) {
	if globalStatsManager == nil {
		return
	}

	executionTime := time.Since(startTime)
	if err := globalStatsManager.RecordRequest(name, executionTime, failed); err != nil {
		// Log the error but don't fail the request
		log.Printf("[Stats] Failed to record request: %v", err)
	}
}

// statusRecorder captures the status code written by a wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Wrap wraps an httprouter handler with stats tracking
func Wrap(name string, handle httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		handle(recorder, r, ps)

		Record(name, startTime, recorder.status >= 400)
	}
}

// WrapTool wraps an MCP tool handler with stats tracking
func WrapTool(name string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		result, err := handler(ctx, request)
		if err != nil {
			log.Printf("[Stats] Error executing tool '%s': %v", name, err)
			Record(name, startTime, true)
			return nil, err
		}

		Record(name, startTime, false)
		return result, nil
	}
}

// HandleGetStats handles MCP requests for usage statistics
func HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if globalStatsManager == nil {
		return nil, fmt.Errorf("stats manager not initialized")
	}

	sessionStats := globalStatsManager.GetSessionStats()
	persistentStats := globalStatsManager.GetPersistentStats()
	statsText := FormatStats(sessionStats, persistentStats)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// RegisterStats registers the stats tool with the MCP server
func RegisterStats(mcpServer *server.MCPServer, dataDir string) error {
	if globalStatsManager == nil {
		if err := InitStatsManager(dataDir); err != nil {
			return err
		}
	}

	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Retrieves usage statistics for the search endpoints"),
	)

	mcpServer.AddTool(statsTool, WrapTool("stats", HandleGetStats))

	log.Printf("[Stats] Registered stats tool")

	return nil
}
