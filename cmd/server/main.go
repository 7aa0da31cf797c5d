package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/handler"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/server"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/internal/store"
	"github.com/MKhiriev/cpoint/internal/workers"
	"github.com/MKhiriev/cpoint/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cpoint-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var background []workers.Worker

	var counters ratelimit.Store
	if cfg.RateLimit.RedisURL != "" {
		client, err := ratelimit.ConnectRedis(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer client.Close()
		counters = ratelimit.NewRedisStore(client)
		log.Info().Msg("rate limit counters kept in redis")
	} else {
		memoryStore := ratelimit.NewMemoryStore()
		defer memoryStore.Close()
		counters = memoryStore
		background = append(background, memoryStore)
	}

	limiter, err := ratelimit.NewFixedWindow(counters, cfg.RateLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("starting cpoint server")
	if err = workers.NewWorkers(log, append(background, srv)...).Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
