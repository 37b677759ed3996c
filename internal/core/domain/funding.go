package domain

import "github.com/shopspring/decimal"

// Funding is the confirmed money raised by a campaign. Only investments in
// status completed whose transaction is successful contribute.
type Funding struct {
	ConfirmedTotal  decimal.Decimal
	InvestorCount   int64
	InvestmentCount int64
}

// InvestorStats is the confirmed investment summary of one investor.
type InvestorStats struct {
	Count       int64
	TotalAmount decimal.Decimal
}
