package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lingualeap/lingualeap/internal/client"
	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/service"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/internal/tui"
	"github.com/lingualeap/lingualeap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lingualeap", zerolog.InfoLevel)

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil && cfg.Log.Level != "" {
		log = logger.NewLogger("lingualeap", level)
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	services, err := service.NewServices(storages, cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	buildInfo := models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	ui := tui.New(services, buildInfo, log)
	app := client.NewApp(services, ui, log)

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("application run error")
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
