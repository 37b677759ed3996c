package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a ledger fact published after a committed state change.
type EventType string

const (
	EventInvestmentCompleted EventType = "investment.completed"
	EventInvestmentRefunded  EventType = "investment.refunded"
	EventPayoutScheduled     EventType = "payout.scheduled"
	EventPayoutPaid          EventType = "payout.paid"
	EventPayoutFailed        EventType = "payout.failed"
)

// Event is a ledger fact. Key groups events of the same aggregate so they
// stay ordered downstream.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	Key        string         `json:"key"`
	Payload    map[string]any `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at"`
}
