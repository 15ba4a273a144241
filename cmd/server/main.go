package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notehub/internal/api"
	"notehub/internal/app/service"
	"notehub/internal/app/summary"
	"notehub/internal/common/security"
	"notehub/internal/domain/repository"
	"notehub/internal/platform/cache"
	"notehub/internal/platform/config"
	"notehub/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()
	log.Info("Configuration loaded")

	// 2. Token Service
	tokens := security.NewTokenService(cfg.JWTKey, cfg.JWTExp)

	// 3. Database
	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalw("Database connection failed", "error", err)
	}
	defer db.Close()
	log.Info("Database connected")

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalw("Migrations failed", "error", err)
	}
	log.Info("Migrations applied")

	// 4. Summarizer (Redis cache is best-effort: without it the CLI tool is
	// simply called every time)
	var summarizer summary.Summarizer = summary.NewCLISummarizer(cfg.SummaryCommand, cfg.SummaryTimeout, log)
	if rdb, err := cache.Connect(cfg); err != nil {
		log.Warnw("Redis unavailable, summary cache disabled", "error", err)
	} else {
		defer rdb.Close()
		summarizer = summary.NewCachedSummarizer(summarizer, rdb, cfg.SummaryCacheTTL, log)
		log.Info("Redis connected, summary cache enabled")
	}

	// 5. Repositories & Services
	userRepo := repository.NewPgUserRepository(db)
	noteRepo := repository.NewPgNoteRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	noteService := service.NewNoteService(noteRepo, summarizer)

	// 6. Router & HTTP Server
	router := api.NewRouter(tokens, userRepo, authService, noteService)

	server := &http.Server{
		Addr:        ":" + cfg.APIPort,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// Note creation blocks on the summarizer, so the write window must
		// outlast its timeout.
		WriteTimeout: cfg.SummaryTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infow("Server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("Could not listen", "port", cfg.APIPort, "error", err)
		}
	}()

	<-stop

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("Server shutdown failed", "error", err)
	}

	log.Info("Server stopped gracefully")
}
