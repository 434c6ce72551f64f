package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-album-client/internal/adapter"
	"github.com/MKhiriev/go-album-client/internal/config"
	"github.com/MKhiriev/go-album-client/internal/logger"
	"github.com/MKhiriev/go-album-client/internal/store"
	"github.com/MKhiriev/go-album-client/internal/tui"
)

const role = "album-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	client, err := adapter.NewAuthenticatedClient(ctx, cfg.Adapter, storages.TokenStore, log)
	if err != nil {
		return fmt.Errorf("create albums client: %w", err)
	}

	ui := tui.New(client, log, tui.WithRestored(client.Restored()))
	return ui.Run(ctx)
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
