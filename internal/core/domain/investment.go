package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentStatus is the state of an investor's commitment.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentRefunded  InvestmentStatus = "refunded"
)

// Terminal reports whether no further transitions are possible.
func (s InvestmentStatus) Terminal() bool {
	return s == InvestmentCompleted || s == InvestmentRefunded
}

// Investment links an investor to a campaign. TransactionID points at the
// single gateway attempt that funds it.
type Investment struct {
	ID            uuid.UUID
	InvestorID    uuid.UUID
	CampaignID    uuid.UUID
	Amount        decimal.Decimal
	Status        InvestmentStatus
	TransactionID *uuid.UUID
	CreatedAt     time.Time
}

// InvestmentHistoryItem is an investment joined with its campaign summary.
type InvestmentHistoryItem struct {
	Investment
	CampaignTitle  string
	CampaignStatus CampaignStatus
}

// CampaignInvestor is a confirmed investment together with the investor's email.
type CampaignInvestor struct {
	InvestorID   uuid.UUID
	Email        string
	InvestmentID uuid.UUID
	Amount       decimal.Decimal
	Status       InvestmentStatus
	CreatedAt    time.Time
}
