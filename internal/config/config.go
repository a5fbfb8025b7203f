package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Deck sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Deck               DeckConfig
	Log                LogConfig
	Database           DatabaseConfig
	MigrationsURL      string
	BotToken           string
	BotPassword        string
	SessionIdleTimeout time.Duration
}

// DeckConfig selects the deck to study
type DeckConfig struct {
	Source  string
	Path    string
	Name    string
	Shuffle bool
}

// LogConfig holds logger settings; an empty Path means no log output for the terminal viewer
type LogConfig struct {
	Level string
	Path  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	shuffle, err := getEnvBool("DECK_SHUFFLE", false)
	if err != nil {
		return nil, err
	}
	idle, err := getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Deck: DeckConfig{
			Source:  getEnv("DECK_SOURCE", SourceFile),
			Path:    os.Getenv("DECK_PATH"),
			Name:    os.Getenv("DECK_NAME"),
			Shuffle: shuffle,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Path:  os.Getenv("LOG_FILE"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		MigrationsURL:      getEnv("MIGRATIONS_URL", "file://migrations"),
		BotToken:           os.Getenv("BOT_TOKEN"),
		BotPassword:        os.Getenv("BOT_PASSWORD"),
		SessionIdleTimeout: idle,
	}

	return cfg, nil
}

// ValidateDeck checks that the configured deck source can be opened
func (c *Config) ValidateDeck() error {
	switch c.Deck.Source {
	case SourceFile:
		if c.Deck.Path == "" {
			return errors.New("DECK_PATH is required for the file deck source")
		}
	case SourcePostgres:
		if c.Deck.Name == "" {
			return errors.New("DECK_NAME is required for the postgres deck source")
		}
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required for the postgres deck source")
		}
	default:
		return fmt.Errorf("DECK_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, c.Deck.Source)
	}
	return nil
}

// ValidateBot checks the settings the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return errors.New("BOT_PASSWORD is required")
	}
	if c.Database.Password == "" {
		return errors.New("DB_PASSWORD is required")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", c.SessionIdleTimeout)
	}
	return c.ValidateDeck()
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

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
