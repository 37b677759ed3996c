package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrIneligibleState    = errors.New("ineligible state")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrDataIntegrity      = errors.New("data integrity violation")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLockedOut          = errors.New("too many failed attempts")
	ErrGateway            = errors.New("payment gateway error")
)

// ErrDuplicatePayout is returned when the storage layer rejects a second
// payout for the same campaign.
var ErrDuplicatePayout = fmt.Errorf("%w: duplicate payout", ErrDataIntegrity)
