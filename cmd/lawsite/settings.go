// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lawsite/internal/cache"
	"lawsite/internal/config"
	"lawsite/internal/database"
	"lawsite/internal/models"
	"lawsite/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or invalidate the global site settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsInvalidateCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the settings as the site would see them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			var db *sql.DB
			if cfg.SettingsSource == config.SourcePostgres {
				var err error
				if db, err = database.Connect(cfg.DSN()); err != nil {
					return fmt.Errorf("connect database: %w", err)
				}
				defer db.Close()
			}

			s, err := settings.New(newSettingsBackend(cfg, db)).Get(cmd.Context())
			if err != nil {
				slog.Warn("showing default settings", "error", err)
			}
			return writeSettings(cmd.OutOrStdout(), s, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func newSettingsInvalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate",
		Short: "Tell every running server to refetch the settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := cache.NewInvalidationBus(client).Publish(cmd.Context(), cache.Invalidation{Settings: true}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "settings invalidation published")
			return nil
		},
	}
}

// writeSettings encodes s to w as indented JSON or YAML.
func writeSettings(w io.Writer, s models.SiteSettings, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}
