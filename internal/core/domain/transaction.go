package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit TransactionType = "deposit"
	TransactionRefund  TransactionType = "refund"
	TransactionPayout  TransactionType = "payout"
)

type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionSuccessful TransactionStatus = "successful"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
)

// Terminal reports whether the gateway attempt has been settled.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionSuccessful || s == TransactionFailed || s == TransactionCancelled
}

// Transaction records one payment-gateway attempt.
type Transaction struct {
	ID                   uuid.UUID
	GatewayTransactionID string
	Amount               decimal.Decimal
	Fee                  decimal.Decimal
	Currency             string
	Type                 TransactionType
	Status               TransactionStatus
	StatusDescription    string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// InvestorTransaction is a transaction together with the investment it funds.
type InvestorTransaction struct {
	Transaction
	InvestmentID uuid.UUID
	InvestorID   uuid.UUID
}
