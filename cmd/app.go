package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"crowdoo/internal/adapter/cache"
	"crowdoo/internal/adapter/events"
	"crowdoo/internal/adapter/gateway"
	httpadapter "crowdoo/internal/adapter/http"
	"crowdoo/internal/adapter/mail"
	"crowdoo/internal/adapter/postgres"
	"crowdoo/internal/adapter/token"
	"crowdoo/internal/adapter/usecase"
	"crowdoo/internal/config"
	"crowdoo/internal/core/port"
	"crowdoo/internal/db"
)

// app holds the infrastructure shared by the server and the payout
// commands. Close releases it in reverse order of acquisition.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	store    *postgres.Store
	notifier port.Notifier
	events   port.EventPublisher
	clock    port.Clock
	closers  []func() error
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		store:  postgres.NewStore(pool),
		clock:  port.ClockFunc(time.Now),
		closers: []func() error{func() error {
			pool.Close()
			return nil
		}},
	}

	templates, err := mail.DefaultTemplates()
	if err != nil {
		a.Close()
		return nil, err
	}
	var sender mail.Sender = mail.NewLogSender(logger)
	if cfg.Mail.Enabled {
		sender = mail.NewSMTPSender(cfg.Mail)
	}
	a.notifier = mail.NewNotifier(templates, sender)

	a.events = events.Discard{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix, cfg.Kafka.WriteTimeout)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.events = publisher
		a.closers = append(a.closers, publisher.Close)
	} else {
		logger.Warn("no kafka brokers configured, ledger events are dropped")
	}
	return a, nil
}

// Close releases every resource acquired by newApp and services.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("close resource", slog.Any("error", err))
		}
	}
	a.closers = nil
}

func (a *app) payouts() *usecase.PayoutUseCase {
	return usecase.NewPayoutUseCase(a.store, a.store, a.store, a.notifier, a.events, a.clock, a.cfg.Gateway.Currency, a.logger)
}

// services wires every use case served over HTTP.
func (a *app) services(ctx context.Context) (httpadapter.Services, error) {
	cfg := a.cfg
	verifier, err := gateway.NewVerifier(cfg.Gateway.MerchantID, cfg.Gateway.SecurityCode, cfg.Gateway.SignatureAlgorithm)
	if err != nil {
		return httpadapter.Services{}, err
	}
	client := gateway.NewClient(cfg.Gateway, verifier, &http.Client{Timeout: cfg.Gateway.Timeout})

	tokens, err := token.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return httpadapter.Services{}, err
	}
	lockout, err := a.lockoutStore(ctx)
	if err != nil {
		return httpadapter.Services{}, err
	}

	s := a.store
	return httpadapter.Services{
		Auth:           usecase.NewAuthUseCase(cfg.Auth, s, tokens, lockout, a.clock, a.logger),
		Campaigns:      usecase.NewCampaignUseCase(s, a.clock, a.logger),
		Investments:    usecase.NewInvestmentUseCase(cfg.Gateway, s, s, s, client, a.clock, a.logger),
		Funding:        usecase.NewFundingUseCase(s, s),
		Payouts:        a.payouts(),
		Reconciliation: usecase.NewReconciliationUseCase(cfg.Gateway, verifier, s, s, s, s, a.notifier, a.events, a.clock, a.logger),
		Admin:          usecase.NewAdminUseCase(s, s, s),
	}, nil
}

func (a *app) lockoutStore(ctx context.Context) (port.LockoutStore, error) {
	if a.cfg.Redis.URL == "" {
		a.logger.Warn("no redis configured, login lockout disabled")
		return cache.NoLockout{}, nil
	}
	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Join(err, client.Close())
	}
	a.closers = append(a.closers, client.Close)
	return cache.NewRedisLockoutStore(client), nil
}
