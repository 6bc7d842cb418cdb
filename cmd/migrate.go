// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/kelseyhightower/envconfig"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/renovation-service/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(newMigrateSubCmd("up", "Apply all pending migrations", goose.Up))
	cmd.AddCommand(newMigrateSubCmd("down", "Roll back the last migration", goose.Down))
	cmd.AddCommand(newMigrateSubCmd("status", "Print the migration status", goose.Status))

	return cmd
}

func newMigrateSubCmd(use, short string, fn func(*sql.DB, string, ...goose.OptionsFunc) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var specs struct {
				DSN string `envconfig:"DSN" required:"true"`
			}
			if err := envconfig.Process("", &specs); err != nil {
				return fmt.Errorf("issues with environment sourcing: %w", err)
			}

			db, err := sql.Open("pgx", specs.DSN)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			goose.SetBaseFS(migrations.EmbedMigrations)

			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}

			return fn(db, ".")
		},
	}
}
