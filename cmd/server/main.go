package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/config"
	"github.com/acai-real/storefront/internal/operator"
	"github.com/acai-real/storefront/internal/router"
	"github.com/acai-real/storefront/internal/storage"
	"github.com/acai-real/storefront/internal/ws"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	store, closeStorage, err := openCatalog(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open catalog storage")
	}
	defer closeStorage()

	hub := ws.NewHub()
	go hub.Run()
	store.OnChange(func() {
		hub.Broadcast(ws.Event{Type: ws.EventCatalogUpdated})
	})

	c := cart.New()
	c.OnPulse(func() {
		hub.Broadcast(ws.Event{Type: ws.EventCartPulse})
	})

	var verifier operator.Verifier = operator.StaticVerifier{Code: cfg.OperatorCode}
	if cfg.OperatorCodeHash != "" {
		verifier = operator.BcryptVerifier{Hash: cfg.OperatorCodeHash}
	}
	session := operator.NewSession(verifier)

	r := router.New(cfg, logger, store, c, session, hub)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

func openCatalog(cfg *config.Config, logger zerolog.Logger) (*catalog.Store, func(), error) {
	bolt, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	store := catalog.NewStore(bolt, logger)
	return store, func() {
		if err := bolt.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing storage")
		}
	}, nil
}
