package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// announcer delivers the notification and the event that follow a
// committed ledger change. Delivery failures are logged and never returned:
// the financial state is already final.
type announcer struct {
	notifier port.Notifier
	events   port.EventPublisher
	log      *slog.Logger
}

func (a announcer) announce(ctx context.Context, n domain.Notification, e domain.Event) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if err := a.events.Publish(ctx, e); err != nil {
		a.log.ErrorContext(ctx, "publish event",
			slog.String("type", string(e.Type)),
			slog.String("key", e.Key),
			slog.Any("error", err))
	}
	if n.Recipient == "" {
		a.log.WarnContext(ctx, "notification without recipient dropped", slog.String("kind", string(n.Kind)))
		return
	}
	if err := a.notifier.Notify(ctx, n); err != nil {
		a.log.ErrorContext(ctx, "send notification",
			slog.String("kind", string(n.Kind)),
			slog.String("to", n.Recipient),
			slog.Any("error", err))
	}
}

// recipient returns the email of a user, or fallback when the account
// cannot be read.
func (a announcer) recipient(ctx context.Context, users port.UserRepository, id uuid.UUID, fallback string) string {
	u, err := users.GetUser(ctx, id)
	if err != nil {
		a.log.ErrorContext(ctx, "load notification recipient", slog.String("user_id", id.String()), slog.Any("error", err))
		return fallback
	}
	if u == nil {
		return fallback
	}
	return u.Email
}

// campaignTitle reads a campaign title for a message body. Failures only
// degrade the message.
func (a announcer) campaignTitle(ctx context.Context, campaigns port.CampaignRepository, id uuid.UUID) string {
	c, err := campaigns.GetCampaign(ctx, id)
	if err != nil {
		a.log.ErrorContext(ctx, "load campaign for notification", slog.String("campaign_id", id.String()), slog.Any("error", err))
		return ""
	}
	if c == nil {
		return ""
	}
	return c.Title
}

func newEvent(t domain.EventType, key uuid.UUID, at time.Time, payload map[string]any) domain.Event {
	return domain.Event{ID: uuid.New(), Type: t, Key: key.String(), Payload: payload, OccurredAt: at}
}
