package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crowdoo/internal/db"
)

func (c *cli) seedCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts and an active campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), c.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool, password); err != nil {
				return err
			}
			for _, acc := range db.SeedAccounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", acc.Role, acc.Email)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "crowdoo-demo", "password shared by the demo accounts")
	return cmd
}
