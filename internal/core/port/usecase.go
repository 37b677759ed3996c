package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/core/domain"
)

// ReconciliationUseCase applies payment gateway notifications to the ledger.
// It is the inbound port used by the webhook endpoint.
type ReconciliationUseCase interface {
	// ApplyGatewayNotification verifies the notification signature, resolves
	// the investment from the correlation token and settles its transaction
	// exactly once. Redelivered notifications return an OutcomeAlreadyProcessed
	// result and no error.
	ApplyGatewayNotification(ctx context.Context, n GatewayNotification) (*ReconciliationResult, error)
}

// FundingUseCase exposes confirmed campaign funding.
type FundingUseCase interface {
	// CampaignFunding returns the confirmed funding of a campaign. Only the
	// campaign owner and principals with CapViewAll may read it.
	CampaignFunding(ctx context.Context, p domain.Principal, campaignID uuid.UUID) (domain.Funding, error)
}

// PayoutUseCase schedules and settles campaign payouts.
type PayoutUseCase interface {
	// GenerateDuePayouts creates the payouts of every successful campaign
	// whose deadline passed before asOf and that has none yet. A zero asOf
	// means now. Calling it again with the same asOf yields an empty list.
	GenerateDuePayouts(ctx context.Context, p domain.Principal, asOf time.Time) ([]domain.Payout, error)
	// SetPayoutStatus moves a pending payout to paid or failed.
	SetPayoutStatus(ctx context.Context, p domain.Principal, payoutID uuid.UUID, to domain.PayoutStatus, note string) (*domain.Payout, error)
	ListPayouts(ctx context.Context, p domain.Principal, page Page) ([]domain.Payout, error)
	ListCampaignPayouts(ctx context.Context, p domain.Principal, campaignID uuid.UUID) ([]domain.Payout, error)
	ListMyPayouts(ctx context.Context, p domain.Principal) ([]domain.Payout, error)
}

// CampaignUseCase is the campaign management port.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, p domain.Principal, in CampaignInput) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListActiveCampaigns(ctx context.Context, q CampaignQuery) ([]domain.Campaign, error)
	ListMyCampaigns(ctx context.Context, p domain.Principal) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in CampaignInput) (*domain.Campaign, error)
	SetCampaignStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error)
	CloseCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) error
	CampaignInvestors(ctx context.Context, p domain.Principal, id uuid.UUID) ([]domain.CampaignInvestor, error)
}

// InvestmentUseCase is the investor-facing port.
type InvestmentUseCase interface {
	// Invest opens a pending investment in an active campaign together with
	// a payment session. Campaigns that do not accept investments yield
	// domain.ErrIneligibleState.
	Invest(ctx context.Context, p domain.Principal, in InvestInput) (*InvestResult, error)
	GetInvestment(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Investment, error)
	ListMyInvestments(ctx context.Context, p domain.Principal) ([]domain.Investment, error)
	// CampaignInvestments lists every investment in a campaign for its
	// owner or an admin, pending and refunded ones included.
	CampaignInvestments(ctx context.Context, p domain.Principal, campaignID uuid.UUID, page Page) ([]domain.Investment, error)
	InvestmentHistory(ctx context.Context, p domain.Principal, limit int) ([]domain.InvestmentHistoryItem, error)
	MyStats(ctx context.Context, p domain.Principal) (domain.InvestorStats, error)
	GetTransaction(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.InvestorTransaction, error)
	ListMyTransactions(ctx context.Context, p domain.Principal) ([]domain.InvestorTransaction, error)
}

// AuthUseCase registers accounts and issues bearer tokens.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
	CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error)
}

// AdminUseCase lists everything for operators holding CapViewAll.
type AdminUseCase interface {
	ListUsers(ctx context.Context, p domain.Principal, page Page) ([]domain.User, error)
	ListCampaigns(ctx context.Context, p domain.Principal, page Page) ([]domain.Campaign, error)
	ListInvestments(ctx context.Context, p domain.Principal, page Page) ([]domain.Investment, error)
	ListTransactions(ctx context.Context, p domain.Principal, page Page) ([]domain.InvestorTransaction, error)
}

// ReconciliationOutcome distinguishes a fresh settlement from a redelivery.
type ReconciliationOutcome string

const (
	OutcomeApplied          ReconciliationOutcome = "applied"
	OutcomeAlreadyProcessed ReconciliationOutcome = "already_processed"
)

// ReconciliationResult reports what a notification did to the ledger.
type ReconciliationResult struct {
	Outcome           ReconciliationOutcome
	InvestmentID      uuid.UUID
	InvestmentStatus  domain.InvestmentStatus
	TransactionStatus domain.TransactionStatus
}

// CampaignInput carries the editable campaign fields.
type CampaignInput struct {
	Title       string
	Description string
	Category    string
	Region      string
	GoalAmount  decimal.Decimal
	Deadline    time.Time
}

type InvestInput struct {
	CampaignID uuid.UUID
	Amount     decimal.Decimal
}

// InvestResult is returned to the investor after opening an investment.
type InvestResult struct {
	Investment  domain.Investment
	Transaction domain.Transaction
	PaymentURL  string
}

type RegisterInput struct {
	Email    string
	Password string
	Role     domain.Role
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}
