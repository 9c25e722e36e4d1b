package main

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/config"
	"github.com/dkoval/college-resource-hub/internal/files"
	"github.com/dkoval/college-resource-hub/internal/handler"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/mail"
	"github.com/dkoval/college-resource-hub/internal/server"
	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resource-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	notifier := mail.NewRelayNotifier(cfg.Mail, log)

	fileStore, err := files.NewStorage(cfg.Storage.Files, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}

	services := service.NewServices(storages, notifier, fileStore, cfg.App, log)

	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
