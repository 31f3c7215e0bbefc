package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lawsite/internal/database"
)

func newMigrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			db, err := database.Connect(cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}
			if seed {
				return database.Seed(db)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "also create the development admin and starter pages")
	return cmd
}
