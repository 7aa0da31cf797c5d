package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cpoint/internal/adapter"
	"github.com/MKhiriev/cpoint/internal/client"
	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("cpoint-client", cfg.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(
		serverAdapter,
		client.NewFileTokenStore(cfg.TokenFile),
		client.NewTerminalPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		var apiErr *adapter.APIError
		switch {
		case errors.As(err, &apiErr):
			fmt.Fprintln(os.Stderr, apiErr.Message)
		case errors.Is(err, adapter.ErrNoToken):
			fmt.Fprintln(os.Stderr, "not logged in, run `cpoint login` first")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
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
