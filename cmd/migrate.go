package main

import (
	"github.com/spf13/cobra"

	"crowdoo/internal/db"
)

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(*cobra.Command, []string) error {
				if err := db.Migrate(c.cfg.Psql.Addr.String()); err != nil {
					return err
				}
				c.logger.Info("migrations applied successfully")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert every applied migration",
			RunE: func(*cobra.Command, []string) error {
				if err := db.Rollback(c.cfg.Psql.Addr.String()); err != nil {
					return err
				}
				c.logger.Info("migrations rolled back")
				return nil
			},
		},
	)
	return cmd
}
