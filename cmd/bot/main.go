package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spellingbee/internal/audio"
	"spellingbee/internal/cache"
	"spellingbee/internal/config"
	"spellingbee/internal/controller"
	"spellingbee/internal/dictionary"
	"spellingbee/internal/handler"
	"spellingbee/internal/middleware"
	"spellingbee/internal/repository/postgres"
	"spellingbee/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Spelling Bee Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)
	attemptRepo := postgres.NewAttemptRepo(db)

	// Leaderboard cache is optional
	var lbCache service.LeaderboardCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unavailable, leaderboard cache disabled", zap.Error(err))
		} else {
			lbCache = cache.NewLeaderboardCache(client)
			logger.Info("Leaderboard cache enabled", zap.String("addr", cfg.RedisAddr))
		}
	}

	// Initialize services
	authService := service.NewAuthService(userRepo)
	trainerService := service.NewTrainerService(wordRepo)
	progressService := service.NewProgressService(attemptRepo, wordRepo, lbCache, logger)

	// External providers
	dictClient := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout)
	audioStore := audio.NewStore(cfg.AudioDir)

	// Conversation state machine
	ctrl := controller.New(authService, trainerService, progressService, dictClient, audioStore, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.EnsureUser(authService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, ctrl, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Keep the leaderboard cache warm in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runLeaderboardRefresh(ctx, progressService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runLeaderboardRefresh periodically recomputes the top-users board so
// the cached copy stays warm between user requests
func runLeaderboardRefresh(ctx context.Context, progressService *service.ProgressService, logger *zap.Logger) {
	const refreshInterval = 5 * time.Minute
	const boardSize = 10

	if err := progressService.RefreshLeaderboard(ctx, boardSize); err != nil {
		logger.Error("Failed to warm leaderboard", zap.Error(err))
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Leaderboard refresh stopped")
			return
		case <-ticker.C:
			if err := progressService.RefreshLeaderboard(ctx, boardSize); err != nil {
				logger.Error("Failed to refresh leaderboard", zap.Error(err))
			}
		}
	}
}
