package httpadapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// Money is rendered as a fixed two-decimal string so clients never see
// binary floating point.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type campaignRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Region      string          `json:"region"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	Deadline    time.Time       `json:"deadline"`
}

func (c campaignRequest) input() port.CampaignInput {
	return port.CampaignInput{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Region:      c.Region,
		GoalAmount:  c.GoalAmount,
		Deadline:    c.Deadline,
	}
}

type statusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type investRequest struct {
	CampaignID uuid.UUID       `json:"campaign_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type generatePayoutsRequest struct {
	AsOf *time.Time `json:"as_of,omitempty"`
}

type campaignResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Region        string    `json:"region"`
	GoalAmount    string    `json:"goal_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCampaign(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		Region:        c.Region,
		GoalAmount:    money(c.GoalAmount),
		CurrentAmount: money(c.CurrentAmount),
		Deadline:      c.Deadline,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

type investmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	InvestorID    uuid.UUID  `json:"investor_id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toInvestment(i domain.Investment) investmentResponse {
	return investmentResponse{
		ID:            i.ID,
		InvestorID:    i.InvestorID,
		CampaignID:    i.CampaignID,
		Amount:        money(i.Amount),
		Status:        string(i.Status),
		TransactionID: i.TransactionID,
		CreatedAt:     i.CreatedAt,
	}
}

type historyResponse struct {
	investmentResponse
	CampaignTitle  string `json:"campaign_title"`
	CampaignStatus string `json:"campaign_status"`
}

type transactionResponse struct {
	ID                   uuid.UUID `json:"id"`
	InvestmentID         uuid.UUID `json:"investment_id,omitempty"`
	GatewayTransactionID string    `json:"gateway_transaction_id,omitempty"`
	Amount               string    `json:"amount"`
	Fee                  string    `json:"fee"`
	Currency             string    `json:"currency"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	StatusDescription    string    `json:"status_description,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toTransaction(t domain.Transaction, investmentID uuid.UUID) transactionResponse {
	return transactionResponse{
		ID:                   t.ID,
		InvestmentID:         investmentID,
		GatewayTransactionID: t.GatewayTransactionID,
		Amount:               money(t.Amount),
		Fee:                  money(t.Fee),
		Currency:             t.Currency,
		Type:                 string(t.Type),
		Status:               string(t.Status),
		StatusDescription:    t.StatusDescription,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

type investResponse struct {
	Investment  investmentResponse  `json:"investment"`
	Transaction transactionResponse `json:"transaction"`
	PaymentURL  string              `json:"payment_url"`
}

type fundingResponse struct {
	CampaignID      uuid.UUID `json:"campaign_id"`
	ConfirmedTotal  string    `json:"confirmed_total"`
	InvestorCount   int64     `json:"investor_count"`
	InvestmentCount int64     `json:"investment_count"`
}

type investorStatsResponse struct {
	Count       int64  `json:"count"`
	TotalAmount string `json:"total_amount"`
}

type campaignInvestorResponse struct {
	InvestorID   uuid.UUID `json:"investor_id"`
	Email        string    `json:"email"`
	InvestmentID uuid.UUID `json:"investment_id"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type payoutResponse struct {
	ID            uuid.UUID  `json:"id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	TotalRaised   string     `json:"total_raised"`
	PayoutAmount  string     `json:"payout_amount"`
	PayoutDate    string     `json:"payout_date"`
	Status        string     `json:"status"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toPayout(p domain.Payout) payoutResponse {
	return payoutResponse{
		ID:            p.ID,
		CampaignID:    p.CampaignID,
		OwnerID:       p.OwnerID,
		TotalRaised:   money(p.TotalRaised),
		PayoutAmount:  money(p.PayoutAmount),
		PayoutDate:    p.PayoutDate.Format(time.DateOnly),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func toUser(u domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt, LastLogin: u.LastLogin}
}

type loginResponse struct {
	Token     string       `json:"access_token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

// mapSlice converts a slice of domain records into response DTOs. It never
// returns nil so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
