package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"DECK_SOURCE", "DECK_PATH", "DECK_NAME", "DECK_SHUFFLE",
	"LOG_LEVEL", "LOG_FILE",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"MIGRATIONS_URL", "BOT_TOKEN", "BOT_PASSWORD", "SESSION_IDLE_TIMEOUT",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Deck.Source)
	assert.False(t, cfg.Deck.Shuffle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.Path)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "flashcards", cfg.Database.Name)
	assert.Equal(t, "flashcards", cfg.Database.User)
	assert.Equal(t, "file://migrations", cfg.MigrationsURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_SOURCE", "postgres")
	t.Setenv("DECK_NAME", "animals")
	t.Setenv("DECK_SHUFFLE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/flashcards.log")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Deck.Source)
	assert.Equal(t, "animals", cfg.Deck.Name)
	assert.True(t, cfg.Deck.Shuffle)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/flashcards.log", cfg.Log.Path)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad shuffle", key: "DECK_SHUFFLE", value: "sometimes"},
		{name: "bad idle timeout", key: "SESSION_IDLE_TIMEOUT", value: "forever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestConfig_ValidateDeck(t *testing.T) {
	tests := []struct {
		name        string
		deck        DeckConfig
		dbPassword  string
		expectedErr string
	}{
		{name: "file with path", deck: DeckConfig{Source: SourceFile, Path: "animals.json"}},
		{name: "file without path", deck: DeckConfig{Source: SourceFile}, expectedErr: "DECK_PATH"},
		{name: "postgres ok", deck: DeckConfig{Source: SourcePostgres, Name: "animals"}, dbPassword: "secret"},
		{name: "postgres without name", deck: DeckConfig{Source: SourcePostgres}, dbPassword: "secret", expectedErr: "DECK_NAME"},
		{name: "postgres without password", deck: DeckConfig{Source: SourcePostgres, Name: "animals"}, expectedErr: "DB_PASSWORD"},
		{name: "unknown source", deck: DeckConfig{Source: "ftp"}, expectedErr: "DECK_SOURCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Deck: tt.deck, Database: DatabaseConfig{Password: tt.dbPassword}}

			err := cfg.ValidateDeck()

			if tt.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			}
		})
	}
}

func TestConfig_ValidateBot(t *testing.T) {
	valid := Config{
		Deck:               DeckConfig{Source: SourcePostgres, Name: "animals"},
		Database:           DatabaseConfig{Password: "db"},
		BotToken:           "token",
		BotPassword:        "password",
		SessionIdleTimeout: 30 * time.Minute,
	}
	assert.NoError(t, valid.ValidateBot())

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr string
	}{
		{name: "missing token", mutate: func(c *Config) { c.BotToken = "" }, expectedErr: "BOT_TOKEN"},
		{name: "missing password", mutate: func(c *Config) { c.BotPassword = "" }, expectedErr: "BOT_PASSWORD"},
		{name: "missing db password", mutate: func(c *Config) { c.Database.Password = "" }, expectedErr: "DB_PASSWORD"},
		{name: "missing deck", mutate: func(c *Config) { c.Deck.Name = "" }, expectedErr: "DECK_NAME"},
		{name: "zero idle timeout", mutate: func(c *Config) { c.SessionIdleTimeout = 0 }, expectedErr: "SESSION_IDLE_TIMEOUT"},
		{name: "negative idle timeout", mutate: func(c *Config) { c.SessionIdleTimeout = -5 * time.Minute }, expectedErr: "SESSION_IDLE_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.ValidateBot()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
