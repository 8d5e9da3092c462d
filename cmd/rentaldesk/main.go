package main

import (
	"context"
	"fmt"

	"github.com/palmcar/rentaldesk/internal/client"
	"github.com/palmcar/rentaldesk/internal/config"
	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/service"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/internal/tui"
	"github.com/palmcar/rentaldesk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("rentaldesk")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, log)

	ui, err := tui.New(services, models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ctx, services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("run error")
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
