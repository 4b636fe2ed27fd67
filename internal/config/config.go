package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	Database   DatabaseConfig
	RedisAddr  string // optional; empty disables the leaderboard cache
	Dictionary DictionaryConfig
	AudioDir   string
	WordsFile  string // seed tool input
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DictionaryConfig holds dictionary provider settings
type DictionaryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:  os.Getenv("BOT_TOKEN"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "spellingbee"),
			User:     getEnv("DB_USER", "spellingbee"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Dictionary: DictionaryConfig{
			BaseURL: getEnv("DICTIONARY_API_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
			Timeout: getDuration("DICTIONARY_TIMEOUT", 5*time.Second),
		},
		AudioDir:  getEnv("AUDIO_DIR", "words_mp3"),
		WordsFile: getEnv("WORDS_FILE", "words.json"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
