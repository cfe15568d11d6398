package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/analytics"
	"github.com/vasiliy-maslov/canteen-service/internal/config"
	"github.com/vasiliy-maslov/canteen-service/internal/db"
	canteenHttp "github.com/vasiliy-maslov/canteen-service/internal/handler/http"
	"github.com/vasiliy-maslov/canteen-service/internal/menu"
	"github.com/vasiliy-maslov/canteen-service/internal/order"
	"github.com/vasiliy-maslov/canteen-service/internal/transport"
	"github.com/vasiliy-maslov/canteen-service/internal/user"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	setupLogger(cfg)
	log.Info().Msg("Canteen service starting...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	pg, err := db.New(ctx, cfg.Postgres)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pg.Close()

	if err := pg.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	userSvc := user.NewService(user.NewRepository(pg.SQLX))
	menuSvc := menu.NewService(menu.NewRepository(pg.SQLX))
	orderSvc := order.NewService(order.NewRepository(pg.Pool))
	analyticsSvc := analytics.NewService(analytics.NewRepository(pg.Pool))

	router := transport.NewRouter(
		canteenHttp.NewAuthHandler(userSvc),
		canteenHttp.NewMenuHandler(menuSvc),
		canteenHttp.NewOrderHandler(orderSvc),
		canteenHttp.NewLiFiHandler(orderSvc),
		canteenHttp.NewAnalyticsHandler(analyticsSvc),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Logger = log.With().Str("service", "canteen-service").Logger()
}
