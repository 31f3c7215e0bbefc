// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lawsite/internal/config"
	"lawsite/internal/handlers"
	"lawsite/internal/restdb"
	"lawsite/internal/settings"
	"lawsite/internal/store"
)

// settingsBackend reads and writes the global settings record.
type settingsBackend interface {
	settings.Source
	handlers.SettingsWriter
}

// cfgKey carries the loaded configuration through the command context.
type cfgKey struct{}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lawsite",
		Short: "Law firm site content API",
		Long:  `Serves the site settings and page documents of a law firm website and the admin API that edits them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupLogger(cfg)
			cmd.SetContext(context.WithValue(cmd.Context(), cfgKey{}, cfg))
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFrom(cmd))
		},
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSettingsCmd())
	return root
}

func configFrom(cmd *cobra.Command) *config.Config {
	return cmd.Context().Value(cfgKey{}).(*config.Config)
}

// setupLogger installs the default slog logger: text with debug output in
// development, JSON at info level everywhere else.
func setupLogger(cfg *config.Config) {
	var h slog.Handler
	if cfg.IsDev() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}

// newSettingsBackend picks the settings source named by SETTINGS_SOURCE.
// db may be nil when the REST source is configured.
func newSettingsBackend(cfg *config.Config, db *sql.DB) settingsBackend {
	if cfg.SettingsSource == config.SourceREST {
		slog.Info("settings source", "source", config.SourceREST, "url", cfg.RESTURL)
		return restdb.New(cfg.RESTURL, cfg.RESTAPIKey)
	}
	slog.Info("settings source", "source", config.SourcePostgres)
	return store.NewSiteSettingsStore(db)
}
