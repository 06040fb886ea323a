package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/handler"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/mail"
	"github.com/MKhiriev/go-reel-keeper/internal/server"
	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reel-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Mongo.ConnectTimeout)
	defer cancel()

	db, err := store.NewDB(connectCtx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the database")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing the database connection")
		}
	}()

	storages := store.NewStorages(db, log)

	mailSender, err := mail.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	services := service.NewServices(storages, mailSender, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

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
