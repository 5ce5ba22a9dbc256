package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/database"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()

	// stdout belongs to the game; logs go to stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := words.Load(cfg.WordsFile)
	if err != nil {
		if errors.Is(err, words.ErrNotFound) {
			log.Fatal().Err(err).Msg("word list file not found or empty; please provide a valid file")
		}
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", src.Len()).Str("path", cfg.WordsFile).Msg("word list loaded")

	var db *sql.DB
	if cfg.UsesDatabase() {
		db, err = database.Open(ctx, cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
		}
	}

	opts := []session.Opt{session.WithMaxAttempts(cfg.MaxAttempts)}
	switch cfg.SaveBackend {
	case config.BackendFile:
		opts = append(opts, session.WithStore(store.NewFileStore(cfg.SaveFile)))
	case config.BackendSQLite:
		opts = append(opts, session.WithStore(store.NewSQLiteStore(db)))
	}
	if cfg.History {
		opts = append(opts, session.WithHistory(results.NewStore(db)))
	}
	if cfg.Daily {
		opts = append(opts, session.WithDaily(cfg.DailySalt))
	}

	err = session.New(os.Stdin, os.Stdout, src, opts...).Run(ctx)
	if db != nil {
		_ = db.Close()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("session ended with an error")
	}
}
