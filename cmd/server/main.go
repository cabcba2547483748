package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Barca0412/VocabMaster/internal/clock"
	"github.com/Barca0412/VocabMaster/internal/config"
	"github.com/Barca0412/VocabMaster/internal/handlers"
	"github.com/Barca0412/VocabMaster/internal/service"
	"github.com/Barca0412/VocabMaster/internal/settings"
	"github.com/Barca0412/VocabMaster/internal/storage"
	"github.com/Barca0412/VocabMaster/internal/wordlist"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the configured snapshot store (json, sqlite, postgres, mysql)
	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	log.Printf("Snapshot store ready (type: %s)", cfg.Store)

	// Initialize services
	trainer := service.NewTrainerService(store, clock.System{})
	quiz := service.NewQuizService(trainer)

	lists, err := wordlist.NewManager(filepath.Join(cfg.DataDir, "wordlists"), clock.System{})
	if err != nil {
		log.Fatalf("Failed to open wordlist directory: %v", err)
	}
	prefs, err := settings.NewStore(filepath.Join(cfg.DataDir, "config.json"))
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}

	// Seed built-in word lists
	if cfg.SeedLists {
		if err := lists.SeedBuiltinLists(); err != nil {
			log.Printf("Warning: Failed to seed built-in lists: %v", err)
		}
	}

	// Setup routes
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux,
		handlers.NewTrainerHandler(trainer, lists),
		handlers.NewQuizHandler(quiz, prefs),
		handlers.NewListHandler(lists),
		handlers.NewSettingsHandler(prefs),
		handlers.NewStatusHandler(version, cfg.Store, trainer),
	)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
