// Command seed loads the word list into the database and pre-fetches a
// pronunciation clip for every word.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"spellingbee/internal/audio"
	"spellingbee/internal/config"
	"spellingbee/internal/repository/postgres"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type seedWord struct {
	Spelling    string `json:"spelling"`
	Translation string `json:"translation"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	words, err := loadWords(cfg.WordsFile)
	if err != nil {
		logger.Fatal("Failed to load words file", zap.Error(err))
	}

	logger.Info("Seeding words",
		zap.String("file", cfg.WordsFile),
		zap.Int("count", len(words)),
	)

	wordRepo := postgres.NewWordRepo(db)
	for _, w := range words {
		if err := wordRepo.SaveWord(w.Spelling, w.Translation); err != nil {
			logger.Fatal("Failed to save word",
				zap.String("spelling", w.Spelling),
				zap.Error(err),
			)
		}
	}

	logger.Info("Words saved, fetching audio", zap.String("dir", cfg.AudioDir))

	fetcher := audio.NewFetcher(cfg.AudioDir, 15*time.Second)
	all, err := wordRepo.AllWords()
	if err != nil {
		logger.Fatal("Failed to list words", zap.Error(err))
	}

	failed := 0
	for _, w := range all {
		if err := fetcher.Fetch(w.Spelling); err != nil {
			logger.Warn("Failed to fetch audio",
				zap.String("spelling", w.Spelling),
				zap.Error(err),
			)
			failed++
		}
	}

	logger.Info("Seeding completed",
		zap.Int("words", len(all)),
		zap.Int("audio_failed", failed),
	)
}

func loadWords(path string) ([]seedWord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read words file: %w", err)
	}

	var words []seedWord
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse words file: %w", err)
	}

	for _, w := range words {
		if w.Spelling == "" || w.Translation == "" {
			return nil, fmt.Errorf("words file contains an entry with empty spelling or translation")
		}
	}

	return words, nil
}
