package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

func (c *cli) payoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Generate campaign payouts",
	}
	cmd.AddCommand(c.payoutsGenerateCmd(), c.payoutsScheduleCmd())
	return cmd
}

func (c *cli) payoutsGenerateCmd() *cobra.Command {
	var asOfFlag string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create payouts for every eligible campaign once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asOf, err := parseAsOf(asOfFlag)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			created, err := a.payouts().GenerateDuePayouts(cmd.Context(), domain.SystemPrincipal(), asOf)
			printPayouts(cmd.OutOrStdout(), created)
			return err
		},
	}
	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "cut-off instant (RFC 3339 or YYYY-MM-DD); defaults to now")
	return cmd
}

// payoutsScheduleCmd is the external timer: it runs the payout generation
// on a fixed interval until interrupted. Runs never overlap.
func (c *cli) payoutsScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run payout generation periodically",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := gocron.NewScheduler()
			if err != nil {
				return err
			}
			payouts := a.payouts()
			_, err = s.NewJob(
				gocron.DurationJob(c.cfg.Scheduler.Interval),
				gocron.NewTask(func() { runDuePayouts(ctx, payouts, c.logger) }),
				gocron.WithName("generate_due_payouts"),
				gocron.WithSingletonMode(gocron.LimitModeReschedule),
				gocron.WithStartAt(gocron.WithStartImmediately()),
			)
			if err != nil {
				return err
			}

			s.Start()
			c.logger.Info("payout scheduler started", slog.Duration("interval", c.cfg.Scheduler.Interval))
			<-ctx.Done()

			if err = s.Shutdown(); err != nil {
				c.logger.Error("scheduler shutdown error", slog.Any("error", err))
				return err
			}
			c.logger.Info("payout scheduler stopped")
			return nil
		},
	}
}

func runDuePayouts(ctx context.Context, payouts port.PayoutUseCase, logger *slog.Logger) {
	created, err := payouts.GenerateDuePayouts(ctx, domain.SystemPrincipal(), time.Time{})
	if err != nil {
		logger.ErrorContext(ctx, "payout run finished with errors", slog.Int("created", len(created)), slog.Any("error", err))
		return
	}
	logger.InfoContext(ctx, "payout run finished", slog.Int("created", len(created)))
}

// parseAsOf accepts an RFC 3339 instant or a plain date (midnight UTC). An
// empty value yields the zero time, which means now.
func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: want RFC 3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}

func printPayouts(w io.Writer, payouts []domain.Payout) {
	for _, p := range payouts {
		fmt.Fprintf(w, "%s  campaign=%s  amount=%s  date=%s\n",
			p.ID, p.CampaignID, p.PayoutAmount.StringFixed(2), p.PayoutDate.Format(time.DateOnly))
	}
	fmt.Fprintf(w, "%d payout(s) created\n", len(payouts))
}
