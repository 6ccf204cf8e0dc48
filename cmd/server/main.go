package main

import (
	"context"
	"fmt"
	"os"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/adapter"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/handler"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/server"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/workers"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("wittywhiz-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("postgres", cfg.Storage.DB.DSN != "").
		Bool("mail_relay", cfg.Mailer.RelayURL != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	notifier, err := adapter.NewNotifier(cfg.Mailer, cfg.App.OTPTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating otp notifier")
	}

	clock := utils.NewRealClock()
	services := service.NewServices(storages, notifier, *cfg, buildInfo, clock, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, clock, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
