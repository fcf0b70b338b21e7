// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/config"
	httphandler "github.com/MKhiriev/donate-hub/internal/handler/http"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/metrics"
	"github.com/MKhiriev/donate-hub/internal/server"
	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/MKhiriev/donate-hub/internal/workers"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/rs/cors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("donate-hub-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("donate-hub-server", cfg.App.LogLevel)
	log.Debug().Str("env", cfg.App.Env).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)
	m := metrics.New(cfg.App.Version)

	services, err := service.NewServices(storages, *cfg, log, m)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h := httphandler.NewHandler(services, validators.NewStructValidator(), log)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Authorization", httphandler.RequestIDHeader},
		AllowCredentials: true,
	})

	pipeline := app.New(h.Init(), httphandler.NewErrorHandler(log, cfg.App.IsDevelopment()), log,
		app.WithMiddleware("request-id", h.WithRequestID),
		app.WithMiddleware("cors", corsHandler.Handler),
		app.WithMiddleware("metrics", m.Middleware),
		app.WithMiddleware("access-log", h.WithLogging),
		app.WithHandler("/metrics", m.Handler()),
		app.WithHandler("/", http.HandlerFunc(h.Welcome)),
		app.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)
	log.Info().Strs("stages", pipeline.Stages()).Msg("request pipeline configured")

	bgWorkers := workers.NewWorkers(
		workers.NewCampaignStatusWorker(services.CampaignService, cfg.Workers.CampaignStatusInterval, log),
	)
	go func() {
		if err := bgWorkers.Run(ctx); err != nil {
			log.Err(err).Msg("background workers stopped")
		}
	}()

	srv, err := server.NewServer(pipeline, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
