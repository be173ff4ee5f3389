package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uceva/country-service/app"
	"github.com/uceva/country-service/internal/logger"
)

const (
	serviceName    = "country-service"
	serviceVersion = "1.0.0"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "REST API for countries",
		Long: `A REST API exposing list, get, create, update and delete over countries,
backed by PostgreSQL.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"path to a .env style configuration file (defaults to ./.env when present)")

	serve := newServeCmd(opts)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCmd(opts))

	return root
}

// loadRuntime reads the configuration and builds the process logger.
func loadRuntime(configFile string) (*app.Config, logger.Logger, error) {
	cfg, err := app.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": serviceName,
		"env":     cfg.Env,
	})
	return cfg, log, nil
}
