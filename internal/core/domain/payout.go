package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "pending"
	PayoutPaid    PayoutStatus = "paid"
	PayoutFailed  PayoutStatus = "failed"
)

// Payout is the single scheduled disbursement of a campaign's confirmed funds.
type Payout struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	OwnerID       uuid.UUID
	TotalRaised   decimal.Decimal
	PayoutAmount  decimal.Decimal
	PayoutDate    time.Time
	Status        PayoutStatus
	TransactionID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransition reports whether a payout in status from may move to to.
// Only pending payouts move, and only to paid or failed.
func (from PayoutStatus) CanTransition(to PayoutStatus) bool {
	return from == PayoutPending && (to == PayoutPaid || to == PayoutFailed)
}

// PayoutDate returns the 10th day of the month following the deadline's
// month, in the deadline's location. December rolls over into January of
// the next year.
func PayoutDate(deadline time.Time) time.Time {
	year, month := deadline.Year(), deadline.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	return time.Date(year, month, 10, 0, 0, 0, 0, deadline.Location())
}
