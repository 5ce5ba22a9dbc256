// internal/config/config.go
//
// Runtime configuration, read from the environment (optionally seeded from a
// .env file by the caller).
//
// Environment variables:
//   HANGMAN_WORDS_FILE=/path/to/word_list.txt   (empty: embedded list)
//   HANGMAN_SAVE_BACKEND=file|sqlite|none       (default file)
//   HANGMAN_SAVE_FILE=game_save.yaml
//   HANGMAN_DB_PATH=./data/hangman.db
//   HANGMAN_HISTORY=true|false                  (record finished games in the database)
//   HANGMAN_MAX_ATTEMPTS=6
//   HANGMAN_DAILY=true|false                    (word of the day instead of a random word)
//   HANGMAN_DAILY_SALT=...
//   LOG_LEVEL=warn

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
	"github.com/rs/zerolog"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

type Config struct {
	WordsFile   string `env:"HANGMAN_WORDS_FILE"`
	SaveBackend string `env:"HANGMAN_SAVE_BACKEND" envDefault:"file"`
	SaveFile    string `env:"HANGMAN_SAVE_FILE" envDefault:"game_save.yaml"`
	DBPath      string `env:"HANGMAN_DB_PATH" envDefault:"./data/hangman.db"`
	History     bool   `env:"HANGMAN_HISTORY" envDefault:"false"`
	MaxAttempts int    `env:"HANGMAN_MAX_ATTEMPTS" envDefault:"6"`
	Daily       bool   `env:"HANGMAN_DAILY" envDefault:"false"`
	DailySalt   string `env:"HANGMAN_DAILY_SALT" envDefault:"hangman"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	switch c.SaveBackend {
	case BackendFile:
		if c.SaveFile == "" {
			el.Add(fmt.Errorf("HANGMAN_SAVE_FILE is required for the file backend"))
		}
	case BackendSQLite, BackendNone:
	default:
		el.Add(fmt.Errorf("HANGMAN_SAVE_BACKEND must be one of %s, %s, %s; got %q",
			BackendFile, BackendSQLite, BackendNone, c.SaveBackend))
	}

	if c.UsesDatabase() && c.DBPath == "" {
		el.Add(fmt.Errorf("HANGMAN_DB_PATH is required for the sqlite backend and history"))
	}

	if c.MaxAttempts < 1 {
		el.Add(fmt.Errorf("HANGMAN_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		el.Add(fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return el.Err()
}

// UsesDatabase reports whether any component needs the SQLite database.
func (c *Config) UsesDatabase() bool {
	return c.SaveBackend == BackendSQLite || c.History
}
