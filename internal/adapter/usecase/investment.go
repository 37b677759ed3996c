package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

const defaultHistoryLimit = 10

var hundred = decimal.NewFromInt(100)

// InvestmentUseCase opens investments and shows investors their ledger.
type InvestmentUseCase struct {
	campaigns   port.CampaignRepository
	investments port.InvestmentRepository
	users       port.UserRepository
	gateway     port.PaymentGateway
	clock       port.Clock
	log         *slog.Logger

	currency   string
	feePercent decimal.Decimal
}

var _ port.InvestmentUseCase = (*InvestmentUseCase)(nil)

func NewInvestmentUseCase(
	cfg configs.Gateway,
	campaigns port.CampaignRepository,
	investments port.InvestmentRepository,
	users port.UserRepository,
	gateway port.PaymentGateway,
	clock port.Clock,
	log *slog.Logger,
) *InvestmentUseCase {
	return &InvestmentUseCase{
		campaigns:   campaigns,
		investments: investments,
		users:       users,
		gateway:     gateway,
		clock:       clock,
		log:         log,
		currency:    cfg.Currency,
		feePercent:  cfg.FeePercent,
	}
}

// Invest records a pending investment with its pending deposit and opens
// a gateway payment session for it. The campaign's confirmed funding is
// untouched until the gateway confirms the payment.
func (u *InvestmentUseCase) Invest(ctx context.Context, p domain.Principal, in port.InvestInput) (*port.InvestResult, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapInvest)); err != nil {
		return nil, err
	}
	amount := in.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", domain.ErrInvalidInput)
	}
	c, err := loadCampaign(ctx, u.campaigns, in.CampaignID)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	if !c.AcceptsInvestments(now) {
		return nil, fmt.Errorf("campaign %s is not accepting investments: %w", c.ID, domain.ErrIneligibleState)
	}

	inv := domain.Investment{
		ID:         uuid.New(),
		InvestorID: p.UserID,
		CampaignID: c.ID,
		Amount:     amount,
		Status:     domain.InvestmentPending,
		CreatedAt:  now,
	}
	tx := domain.Transaction{
		ID:       uuid.New(),
		Amount:   amount,
		Fee:      amount.Mul(u.feePercent).Div(hundred).Round(2),
		Currency: u.currency,
		Type:     domain.TransactionDeposit,
		Status:   domain.TransactionPending,
	}
	if err = u.investments.CreateInvestment(ctx, &inv, &tx); err != nil {
		return nil, err
	}

	session, err := u.gateway.CreateSession(ctx, port.PaymentSessionReq{
		InvestmentID: inv.ID,
		Amount:       amount,
		Currency:     u.currency,
		Description:  "Investment in " + c.Title,
		PayerEmail:   u.payerEmail(ctx, p.UserID),
	})
	if err != nil {
		u.log.ErrorContext(ctx, "open payment session", slog.String("investment_id", inv.ID.String()), slog.Any("error", err))
		if abandonErr := u.investments.AbandonInvestment(ctx, inv.ID, "payment session failed"); abandonErr != nil {
			u.log.ErrorContext(ctx, "abandon investment", slog.String("investment_id", inv.ID.String()), slog.Any("error", abandonErr))
		}
		return nil, err
	}
	if err = u.investments.AttachGatewaySession(ctx, tx.ID, session.GatewayTransactionID); err != nil {
		u.log.WarnContext(ctx, "store gateway transaction id", slog.String("transaction_id", tx.ID.String()), slog.Any("error", err))
	} else {
		tx.GatewayTransactionID = session.GatewayTransactionID
	}

	u.log.InfoContext(ctx, "investment opened",
		slog.String("investment_id", inv.ID.String()),
		slog.String("campaign_id", c.ID.String()),
		slog.String("amount", amount.StringFixed(2)))
	return &port.InvestResult{Investment: inv, Transaction: tx, PaymentURL: session.PaymentURL}, nil
}

func (u *InvestmentUseCase) payerEmail(ctx context.Context, id uuid.UUID) string {
	user, err := u.users.GetUser(ctx, id)
	if err != nil || user == nil {
		return ""
	}
	return user.Email
}

func (u *InvestmentUseCase) GetInvestment(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Investment, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	inv, err := u.investments.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("investment %s: %w", id, domain.ErrNotFound)
	}
	if err = domain.Authorize(p, ownerOrViewer(inv.InvestorID)); err != nil {
		return nil, err
	}
	return inv, nil
}

func (u *InvestmentUseCase) ListMyInvestments(ctx context.Context, p domain.Principal) ([]domain.Investment, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapInvest)); err != nil {
		return nil, err
	}
	return u.investments.ListInvestments(ctx, port.InvestmentQuery{InvestorID: &p.UserID})
}

func (u *InvestmentUseCase) CampaignInvestments(ctx context.Context, p domain.Principal, campaignID uuid.UUID, page port.Page) ([]domain.Investment, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	c, err := loadCampaign(ctx, u.campaigns, campaignID)
	if err != nil {
		return nil, err
	}
	if err = domain.Authorize(p, ownerOrViewer(c.OwnerID)); err != nil {
		return nil, err
	}
	return u.investments.ListInvestments(ctx, port.InvestmentQuery{CampaignID: &campaignID, Page: page})
}

func (u *InvestmentUseCase) InvestmentHistory(ctx context.Context, p domain.Principal, limit int) ([]domain.InvestmentHistoryItem, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapInvest)); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.investments.InvestmentHistory(ctx, p.UserID, limit)
}

// MyStats counts only confirmed investments.
func (u *InvestmentUseCase) MyStats(ctx context.Context, p domain.Principal) (domain.InvestorStats, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapInvest)); err != nil {
		return domain.InvestorStats{}, err
	}
	return u.investments.InvestorStats(ctx, p.UserID)
}

func (u *InvestmentUseCase) GetTransaction(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.InvestorTransaction, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	tx, err := u.investments.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	if err = domain.Authorize(p, ownerOrViewer(tx.InvestorID)); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *InvestmentUseCase) ListMyTransactions(ctx context.Context, p domain.Principal) ([]domain.InvestorTransaction, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapInvest)); err != nil {
		return nil, err
	}
	return u.investments.ListTransactions(ctx, port.TransactionQuery{InvestorID: &p.UserID})
}
