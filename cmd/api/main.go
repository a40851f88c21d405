package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "breed-catalog/docs"
	pg "breed-catalog/internal/adapters/storage/postgres"
	"breed-catalog/internal/config"
	"breed-catalog/internal/router"
)

// @title        Breed Catalog API
// @version      1.0
// @description  API REST para el catálogo de razas de perro.
// @BasePath     /api
func main() {
	cfg := config.Load()
	setupLogger(cfg)

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			// fail-fast: sin store no servimos tráfico, y no hay retry loop
			log.Fatal().Err(err).Msg("database connection failed")
		}
		db = opened
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.InitSchema(ctx, db); err != nil {
			// el API arranca igual y sirve el estado que haya en la base
			log.Error().Err(err).Msg("schema initialization failed")
		}
		cancel()
	} else {
		log.Warn().Msg("DB_DSN not set, using in-memory store")
	}

	r := router.NewRouter(router.Options{DB: db})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogger(cfg config.Config) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
