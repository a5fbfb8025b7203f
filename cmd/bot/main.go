package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/handler"
	"flashcards/internal/logger"
	"flashcards/internal/repository"
	"flashcards/internal/repository/file"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting flashcards bot")

	if err := cfg.ValidateBot(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	// Connect to database with retries
	db, err := postgres.Open(cfg.DSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Database connection established")

	if err := postgres.Migrate(db, cfg.MigrationsURL, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	deckRepo := deckRepository(cfg, db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	deckService := service.NewDeckService(deckRepo, cfg.Deck.Shuffle, log)
	sessions := service.NewSessionService(deckService, cfg.Deck.Name, log)

	// Fail early on a broken deck instead of on the first /start
	if _, err := deckService.Load(cfg.Deck.Name); err != nil {
		log.Fatal("Failed to load deck", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	h := handler.NewHandler(bot, authService, sessions, log)
	h.RegisterHandlers()

	log.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runEvictionJob(ctx, sessions, cfg.SessionIdleTimeout, log)

	go func() {
		log.Info("Bot started successfully")
		bot.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	cancel()

	log.Info("Bot stopped gracefully")
}

// deckRepository picks the deck source from configuration
func deckRepository(cfg *config.Config, db *sql.DB) repository.DeckRepository {
	if cfg.Deck.Source == config.SourcePostgres {
		return postgres.NewDeckRepo(db)
	}
	return file.NewDeckFile(cfg.Deck.Path)
}

// runEvictionJob periodically drops sessions idle for longer than maxIdle
func runEvictionJob(ctx context.Context, sessions *service.SessionService, maxIdle time.Duration, log *zap.Logger) {
	interval := maxIdle / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Eviction job stopped")
			return
		case <-ticker.C:
			sessions.EvictIdle(maxIdle)
		}
	}
}
