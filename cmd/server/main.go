package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spelltest/internal/audio"
	"spelltest/internal/config"
	"spelltest/internal/database"
	"spelltest/internal/handlers"
	"spelltest/internal/repository"
	"spelltest/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithOptions(database.Options{
		Type: cfg.DatabaseType,
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Create and seed the schema on a fresh database, verify the version
	// otherwise
	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	log.Println("Schema ready")

	// Initialize TTS; the server runs without audio if the cache
	// directory cannot be created
	var speaker *audio.Speaker
	ttsService, err := audio.NewTTSService(cfg.AudioPath)
	if err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	} else {
		speaker = audio.NewSpeaker(ttsService)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	statRepo := repository.NewStatRepository(db)
	difficultyRepo := repository.NewDifficultyRepository(db)

	// Initialize services
	listService := service.NewListService(listRepo, userRepo, speaker)
	quizService := service.NewQuizService(listRepo, statRepo, speaker)
	statsService := service.NewStatsService(statRepo)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize handlers and routes
	mux := handlers.NewRouter(
		handlers.NewUserHandler(userRepo, listRepo),
		handlers.NewListHandler(listService, listRepo, difficultyRepo),
		handlers.NewQuizHandler(quizService, emailService, userRepo, listRepo, statRepo, cfg.ResultEmail),
		handlers.NewStatsHandler(statsService),
	)

	// Cached word pronunciations
	if ttsService != nil {
		mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioPath))))
	}

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
}
