// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes a running API instance and exits with a
// non-zero status when it is unreachable or degraded. It is meant for
// container HEALTHCHECK instructions.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/donate-hub/internal/adapter"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/caarlos0/env/v11"
)

type probeConfig struct {
	Address string        `env:"HEALTHCHECK_ADDRESS" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`
}

func main() {
	log := logger.NewLogger("donate-hub-healthcheck", "info")

	var cfg probeConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing env")
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "Base URL of the API")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "Probe timeout")
	_ = fs.Parse(os.Args[1:])

	checker, err := adapter.NewHealthChecker(cfg.Address, cfg.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating health checker")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	status, err := checker.Check(ctx)
	if err != nil {
		log.Error().Err(err).Str("database", status.Database).Msg("service is unhealthy")
		os.Exit(1)
	}

	log.Info().Str("status", status.Status).Str("version", status.Version).Msg("service is healthy")
}
