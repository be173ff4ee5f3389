package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uceva/country-service/internal/migrator"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(opts.configFile, func(m *migrator.Migrator) error {
				return m.Up()
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(opts.configFile, func(m *migrator.Migrator) error {
				return m.Down(steps)
			})
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(c *cobra.Command, _ []string) error {
			return withMigrator(opts.configFile, func(m *migrator.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(c.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
				return err
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func withMigrator(configFile string, fn func(m *migrator.Migrator) error) error {
	cfg, log, err := loadRuntime(configFile)
	if err != nil {
		return err
	}
	if err := cfg.DB.Validate(); err != nil {
		return err
	}

	m, err := migrator.New(cfg.DB.URL(), log)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}
