package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/core/domain"
)

// Clock supplies the current time. It is injected so that time-dependent
// operations can be tested with fixed instants.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// GatewayNotification is a payment status notification as received from the
// gateway. Raw string fields are kept verbatim because the signature is
// computed over them.
type GatewayNotification struct {
	MerchantID    string
	TransactionID string
	Date          string
	CRC           string
	Amount        string
	Paid          string
	Description   string
	Status        string
	Error         string
	Email         string
	Currency      string
	Signature     string
}

// NotificationVerifier authenticates inbound gateway notifications.
type NotificationVerifier interface {
	// Verify returns domain.ErrInvalidSignature when the notification's
	// signature does not match the locally computed one.
	Verify(n GatewayNotification) error
}

// PaymentSessionReq describes a payment the investor is about to make.
type PaymentSessionReq struct {
	InvestmentID uuid.UUID
	Amount       decimal.Decimal
	Currency     string
	Description  string
	PayerEmail   string
}

// PaymentSession is the gateway's answer to PaymentSessionReq.
type PaymentSession struct {
	GatewayTransactionID string
	PaymentURL           string
}

// PaymentGateway opens payment sessions with the external provider.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req PaymentSessionReq) (*PaymentSession, error)
}

// Notifier delivers user-facing notifications. Failures are reported but
// never undo the financial change that triggered them.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// EventPublisher publishes ledger facts after they are committed.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// LockoutState is the failed-login bookkeeping of one account key.
type LockoutState struct {
	FailedCount int
	LockedUntil *time.Time
}

// LockoutStore tracks failed login attempts.
type LockoutStore interface {
	Get(ctx context.Context, key string) (LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (LockoutState, error)
	Clear(ctx context.Context, key string) error
}

// TokenIssuer mints and parses bearer tokens.
type TokenIssuer interface {
	Issue(p domain.Principal, now time.Time) (string, time.Time, error)
	Parse(token string) (domain.Principal, error)
}
