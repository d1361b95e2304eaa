package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Code-Monger/SearchSpinneret/pkg/searchapi"
	"github.com/Code-Monger/SearchSpinneret/pkg/stats"
	"github.com/Code-Monger/SearchSpinneret/pkg/websearch"
)

var (
	port        = flag.Int("port", 8090, "Port to listen on")
	timeoutSecs = flag.Int("timeout", 300, "Server timeout in seconds")
	dataDir     = flag.String("data-dir", filepath.Join(".", "data"), "Directory to store data files")
)

func main() {
	flag.Parse()

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize stats service
	if err := stats.InitStatsManager(*dataDir); err != nil {
		log.Fatalf("Failed to initialize stats manager: %v", err)
	}

	apiServer := searchapi.NewServer(websearch.NewClient(nil))

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     apiServer.Handler(),
		IdleTimeout: time.Duration(*timeoutSecs) * time.Second,
	}

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		log.Printf("[Server] Starting search API server on port %d...", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop

	// Create a deadline for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	log.Println("[Server] Shutting down server...")

	// Print final stats before shutdown
	if statsManager := stats.GetStatsManager(); statsManager != nil {
		sessionStats := statsManager.GetSessionStats()
		persistentStats := statsManager.GetPersistentStats()
		statsText := stats.FormatStats(sessionStats, persistentStats)
		log.Printf("[Server] Final server statistics:\n%s", statsText)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("[Server] Server shutdown failed: %v", err)
	}
	log.Println("[Server] Server stopped")
}
