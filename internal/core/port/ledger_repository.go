package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crowdoo/internal/core/domain"
)

// CampaignRepository persists campaigns. Reads fill Campaign.CurrentAmount
// from the confirmed funding aggregate; the amount is never stored.
// Get methods return nil, nil when the row does not exist.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, q CampaignQuery) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	SetCampaignStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) error
	// DeleteDraftCampaign removes the campaign only while it is a draft. It
	// reports whether a row was deleted.
	DeleteDraftCampaign(ctx context.Context, id uuid.UUID) (bool, error)
	// ListCampaignInvestors returns confirmed investments with investor emails.
	ListCampaignInvestors(ctx context.Context, id uuid.UUID) ([]domain.CampaignInvestor, error)
}

// InvestmentRepository persists investments and the deposit transactions
// that fund them.
type InvestmentRepository interface {
	// CreateInvestment stores a pending investment and its pending deposit
	// transaction atomically and links them.
	CreateInvestment(ctx context.Context, inv *domain.Investment, tx *domain.Transaction) error
	GetInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error)
	ListInvestments(ctx context.Context, q InvestmentQuery) ([]domain.Investment, error)
	InvestmentHistory(ctx context.Context, investorID uuid.UUID, limit int) ([]domain.InvestmentHistoryItem, error)
	// InvestorStats aggregates confirmed investments of one investor.
	InvestorStats(ctx context.Context, investorID uuid.UUID) (domain.InvestorStats, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.InvestorTransaction, error)
	ListTransactions(ctx context.Context, q TransactionQuery) ([]domain.InvestorTransaction, error)
	// AttachGatewaySession records the gateway's id for a pending transaction.
	AttachGatewaySession(ctx context.Context, transactionID uuid.UUID, gatewayID string) error
	// AbandonInvestment cancels a pending transaction whose payment session
	// could not be opened and refunds the investment it was created for.
	AbandonInvestment(ctx context.Context, investmentID uuid.UUID, reason string) error
}

// ReconciliationRepository applies gateway outcomes to the ledger.
type ReconciliationRepository interface {
	// SettleInvestment moves the investment's transaction out of pending
	// with a status-guarded update under a row lock on the investment. When
	// the transaction is already terminal nothing is written and
	// SettlementResult.Applied is false. A missing investment yields
	// domain.ErrNotFound; an investment without a transaction yields
	// domain.ErrDataIntegrity.
	SettleInvestment(ctx context.Context, s Settlement) (*SettlementResult, error)
}

// FundingRepository computes confirmed campaign funding.
type FundingRepository interface {
	CampaignFunding(ctx context.Context, campaignID uuid.UUID) (domain.Funding, error)
}

// PayoutPlanner turns a consistent funding snapshot into the payout to
// insert. Returning nil skips the campaign.
type PayoutPlanner func(funding domain.Funding) *domain.Payout

// PayoutRepository persists payouts. The storage layer enforces one payout
// per campaign.
type PayoutRepository interface {
	// ListPayoutCandidates returns successful campaigns whose deadline is
	// before asOf and that have no payout yet.
	ListPayoutCandidates(ctx context.Context, asOf time.Time) ([]domain.Campaign, error)
	// CreatePlannedPayout reads the campaign's funding and inserts the
	// payout returned by plan within one repeatable-read transaction. It
	// returns nil, nil when plan skips the campaign and
	// domain.ErrDuplicatePayout when a payout already exists.
	CreatePlannedPayout(ctx context.Context, campaignID uuid.UUID, plan PayoutPlanner) (*domain.Payout, error)
	GetPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	ListPayouts(ctx context.Context, q PayoutQuery) ([]domain.Payout, error)
	// TransitionPayout moves a pending payout to its target status and
	// links the disbursing transaction. Non-pending payouts yield
	// domain.ErrIneligibleState.
	TransitionPayout(ctx context.Context, t PayoutTransition) (*domain.Payout, error)
}

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser returns domain.ErrConflict when the email is taken.
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, page Page) ([]domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Page bounds list queries. Zero Limit means the repository default.
type Page struct {
	Limit  int
	Offset int
}

type CampaignQuery struct {
	OwnerID  *uuid.UUID
	Status   *domain.CampaignStatus
	Category string
	Region   string
	Page
}

type InvestmentQuery struct {
	InvestorID *uuid.UUID
	CampaignID *uuid.UUID
	Page
}

type TransactionQuery struct {
	InvestorID *uuid.UUID
	Page
}

type PayoutQuery struct {
	OwnerID    *uuid.UUID
	CampaignID *uuid.UUID
	Page
}

// Settlement is the terminal state a gateway notification asks for.
type Settlement struct {
	InvestmentID         uuid.UUID
	TransactionStatus    domain.TransactionStatus
	InvestmentStatus     domain.InvestmentStatus
	GatewayTransactionID string
	StatusDescription    string
	SettledAt            time.Time
}

// SettlementResult is the ledger state after SettleInvestment. Applied is
// false when the transaction was already terminal.
type SettlementResult struct {
	Applied     bool
	Investment  domain.Investment
	Transaction domain.Transaction
}

// PayoutTransition asks for a pending payout to be closed.
type PayoutTransition struct {
	PayoutID uuid.UUID
	To       domain.PayoutStatus
	Note     string
	Currency string
	At       time.Time
}
