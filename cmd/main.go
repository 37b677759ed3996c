package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"crowdoo/internal/config"
)

// cli carries what every command needs: the configuration loaded once from
// the environment and the structured logger built from it.
type cli struct {
	cfg    config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "crowdoo",
		Short:         "Crowdfunding ledger backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			c.cfg = cfg
			c.logger = cfg.Log.New(os.Stdout)
			return nil
		},
	}
	root.AddCommand(
		c.serveCmd(),
		c.migrateCmd(),
		c.seedCmd(),
		c.payoutsCmd(),
	)
	return root
}
