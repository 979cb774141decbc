package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-upload-form/internal/client"
	"github.com/MKhiriev/go-upload-form/internal/config"
	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("upload-form")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, closer, err := logger.NewFileLogger("upload-form", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}
	defer closer.Close()

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init form app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("form run error")
		closer.Close()
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
