package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/infra"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"
	"github.com/Michael2410/AlmacenAppv1/internal/router"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// NewDatabase already migrates and seeds.
	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite database")
	}

	// Redis is optional: without it the dashboard simply recalculates on
	// every request.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, dashboard cache disabled")
			rdb = nil
		}
	}

	// Audit worker: handlers enqueue, a single goroutine persists.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditor := worker.NewAuditor(repository.NewAuditoriaRepository(db), cfg.AuditQueueSize)
	auditor.Start(ctx)

	r := router.New(cfg, db, rdb, auditor)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("AlmacenApp backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	auditor.Stop()
	log.Info().Msg("server exited")
}
