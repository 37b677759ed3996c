package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// ReconciliationUseCase applies payment gateway notifications to the
// ledger. Each investment's transaction leaves pending at most once; every
// later delivery of a notification is answered as already processed.
type ReconciliationUseCase struct {
	verifier    port.NotificationVerifier
	ledger      port.ReconciliationRepository
	investments port.InvestmentRepository
	campaigns   port.CampaignRepository
	users       port.UserRepository
	clock       port.Clock
	announcer

	confirmed map[string]struct{}
	currency  string
}

var _ port.ReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	cfg configs.Gateway,
	verifier port.NotificationVerifier,
	ledger port.ReconciliationRepository,
	investments port.InvestmentRepository,
	campaigns port.CampaignRepository,
	users port.UserRepository,
	notifier port.Notifier,
	events port.EventPublisher,
	clock port.Clock,
	log *slog.Logger,
) *ReconciliationUseCase {
	confirmed := make(map[string]struct{}, len(cfg.ConfirmedCodes))
	for _, code := range cfg.ConfirmedCodes {
		confirmed[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	return &ReconciliationUseCase{
		verifier:    verifier,
		ledger:      ledger,
		investments: investments,
		campaigns:   campaigns,
		users:       users,
		clock:       clock,
		announcer:   announcer{notifier: notifier, events: events, log: log},
		confirmed:   confirmed,
		currency:    cfg.Currency,
	}
}

// ApplyGatewayNotification verifies n, resolves its investment through the
// crc correlation token and settles the investment's transaction.
func (u *ReconciliationUseCase) ApplyGatewayNotification(ctx context.Context, n port.GatewayNotification) (*port.ReconciliationResult, error) {
	log := u.log.With(slog.String("tr_id", n.TransactionID), slog.String("crc", n.CRC))

	if err := u.verifier.Verify(n); err != nil {
		log.WarnContext(ctx, "gateway notification rejected", slog.Any("error", err))
		return nil, err
	}

	investmentID, err := uuid.Parse(strings.TrimSpace(n.CRC))
	if err != nil {
		return nil, fmt.Errorf("correlation token %q: %w", n.CRC, domain.ErrNotFound)
	}
	inv, err := u.investments.GetInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("investment %s: %w", investmentID, domain.ErrNotFound)
	}

	settlement, err := u.settlement(inv, n)
	if err != nil {
		return nil, err
	}
	res, err := u.ledger.SettleInvestment(ctx, settlement)
	if err != nil {
		log.ErrorContext(ctx, "settle investment", slog.Any("error", err))
		return nil, err
	}

	result := &port.ReconciliationResult{
		Outcome:           port.OutcomeApplied,
		InvestmentID:      investmentID,
		InvestmentStatus:  res.Investment.Status,
		TransactionStatus: res.Transaction.Status,
	}
	if !res.Applied {
		result.Outcome = port.OutcomeAlreadyProcessed
		log.InfoContext(ctx, "gateway notification already processed",
			slog.String("transaction_status", string(res.Transaction.Status)))
		return result, nil
	}

	log.InfoContext(ctx, "gateway notification applied",
		slog.String("transaction_status", string(res.Transaction.Status)),
		slog.String("investment_status", string(res.Investment.Status)))
	u.announceSettlement(ctx, res, n)
	return result, nil
}

// settlement maps the provider outcome onto ledger statuses. Only a
// confirmed code with the full amount paid completes the investment.
func (u *ReconciliationUseCase) settlement(inv *domain.Investment, n port.GatewayNotification) (port.Settlement, error) {
	s := port.Settlement{
		InvestmentID:         inv.ID,
		TransactionStatus:    domain.TransactionFailed,
		InvestmentStatus:     domain.InvestmentRefunded,
		GatewayTransactionID: strings.TrimSpace(n.TransactionID),
		SettledAt:            u.clock.Now(),
	}

	code := strings.ToUpper(strings.TrimSpace(n.Status))
	_, confirmed := u.confirmed[code]
	if !confirmed {
		s.StatusDescription = describe(n.Status, n.Error)
		return s, nil
	}

	paidRaw := strings.TrimSpace(n.Paid)
	if paidRaw == "" {
		paidRaw = strings.TrimSpace(n.Amount)
	}
	paid, err := decimal.NewFromString(paidRaw)
	if err != nil {
		if inv.Status.Terminal() {
			// Settled already, the ledger only reports the stored state.
			s.StatusDescription = describe(n.Status, n.Error)
			return s, nil
		}
		return port.Settlement{}, fmt.Errorf("paid amount %q: %w", paidRaw, domain.ErrInvalidInput)
	}
	if !paid.Equal(inv.Amount) {
		s.StatusDescription = fmt.Sprintf("%s: paid %s of %s", code, paid.StringFixed(2), inv.Amount.StringFixed(2))
		return s, nil
	}

	s.TransactionStatus = domain.TransactionSuccessful
	s.InvestmentStatus = domain.InvestmentCompleted
	s.StatusDescription = code
	return s, nil
}

func describe(status, providerErr string) string {
	status = strings.TrimSpace(status)
	providerErr = strings.TrimSpace(providerErr)
	if providerErr == "" || strings.EqualFold(providerErr, "none") {
		return status
	}
	return status + ": " + providerErr
}

func (u *ReconciliationUseCase) announceSettlement(ctx context.Context, res *port.SettlementResult, n port.GatewayNotification) {
	inv := res.Investment
	kind, eventType := domain.NotifyInvestmentRefunded, domain.EventInvestmentRefunded
	if inv.Status == domain.InvestmentCompleted {
		kind, eventType = domain.NotifyInvestmentCompleted, domain.EventInvestmentCompleted
	}
	currency := res.Transaction.Currency
	if currency == "" {
		currency = u.currency
	}

	u.announce(ctx,
		domain.Notification{
			Kind:      kind,
			Recipient: u.recipient(ctx, u.users, inv.InvestorID, strings.TrimSpace(n.Email)),
			Data: map[string]string{
				"campaign_title": u.campaignTitle(ctx, u.campaigns, inv.CampaignID),
				"amount":         inv.Amount.StringFixed(2),
				"currency":       currency,
				"investment_id":  inv.ID.String(),
				"reason":         res.Transaction.StatusDescription,
			},
		},
		newEvent(eventType, inv.ID, res.Transaction.UpdatedAt, map[string]any{
			"investment_id":          inv.ID.String(),
			"campaign_id":            inv.CampaignID.String(),
			"investor_id":            inv.InvestorID.String(),
			"amount":                 inv.Amount.StringFixed(2),
			"transaction_id":         res.Transaction.ID.String(),
			"gateway_transaction_id": res.Transaction.GatewayTransactionID,
			"transaction_status":     string(res.Transaction.Status),
		}),
	)
}
