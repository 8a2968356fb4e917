package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shamscripts/crm-followup/internal/db"
	"github.com/shamscripts/crm-followup/internal/httpapi"
	"github.com/shamscripts/crm-followup/internal/store"
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt32(k string, def int32) int32 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric env value")
		return def
	}
	return int32(n)
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Configure structured logging
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.With().Str("service", "crm-followup").Logger()

	// Pretty logging for local dev
	if env("ENV", "dev") == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	ctx := context.Background()

	// Store selection: postgres for real deployments, memory for local
	// experiments without a database.
	var stores store.Stores
	switch env("STORE", "postgres") {
	case "memory":
		stores = store.NewMemoryStores()
		log.Warn().Msg("using in-memory store; data will not survive a restart")
	default:
		pgURL := env("DATABASE_URL", "")
		if pgURL == "" {
			log.Fatal().Msg("DATABASE_URL is required (or set STORE=memory)")
		}

		size := db.DefaultPoolSize()
		size.MaxConns = envInt32("PG_MAX_CONNS", size.MaxConns)
		size.MinConns = envInt32("PG_MIN_CONNS", size.MinConns)

		pool, err := db.Open(ctx, pgURL, size)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()

		if err := store.InitSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize schema")
		}
		stores = store.NewPostgresStores(pool)
	}

	srv := httpapi.NewServer(stores)

	httpAddr := env("HTTP_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:         httpAddr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", httpAddr).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("server stopped")
}
