// Command authly-probe checks that a running authly server answers its
// landing page and link redirects. It exits with status 1 on any failure,
// which makes it usable as a container health check.
package main

import (
	"context"
	"os"

	"github.com/Arteiii/authly/internal/adapter"
	"github.com/Arteiii/authly/internal/config"
	"github.com/Arteiii/authly/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.GetProbeConfig(args)
	if err != nil {
		logger.NewLogger("authly-probe", config.DefaultLogLevel).Error().Err(err).Msg("error getting configs")
		return 1
	}

	log := logger.NewLogger("authly-probe", cfg.LogLevel)

	probe, err := adapter.NewHTTPServerProbe(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating probe")
		return 1
	}

	if err = probe.Check(context.Background()); err != nil {
		log.Error().Err(err).Str("address", cfg.BaseURL).Msg("probe failed")
		return 1
	}

	log.Info().Str("address", cfg.BaseURL).Msg("probe ok")
	return 0
}
