package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Mekas12/AJHB/internal/config"
	"github.com/Mekas12/AJHB/internal/crypto"
	"github.com/Mekas12/AJHB/internal/infra"
	"github.com/Mekas12/AJHB/internal/router"
	"github.com/Mekas12/AJHB/internal/token"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Both process keys live in one explicitly constructed context and are
	// injected from here — nothing reads them from globals.
	secCtx, err := crypto.NewSecurityContext(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize security context")
	}

	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite database")
	}
	if err := infra.SeedUsuarios(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed bootstrap users")
	}

	signer := token.NewSigner(secCtx.JWTSecret, time.Duration(cfg.SessionHours)*time.Hour)

	r := router.New(cfg, db, signer)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("AJHB auth service listening on :%d", cfg.Port)
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
	log.Info().Msg("server exited")
}
