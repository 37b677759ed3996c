package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// PayoutUseCase schedules one payout per successful campaign and lets
// operators settle it.
type PayoutUseCase struct {
	campaigns port.CampaignRepository
	payouts   port.PayoutRepository
	users     port.UserRepository
	clock     port.Clock
	announcer

	currency string
}

var _ port.PayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(
	campaigns port.CampaignRepository,
	payouts port.PayoutRepository,
	users port.UserRepository,
	notifier port.Notifier,
	events port.EventPublisher,
	clock port.Clock,
	currency string,
	log *slog.Logger,
) *PayoutUseCase {
	return &PayoutUseCase{
		campaigns: campaigns,
		payouts:   payouts,
		users:     users,
		clock:     clock,
		announcer: announcer{notifier: notifier, events: events, log: log},
		currency:  currency,
	}
}

// GenerateDuePayouts creates a pending payout for every eligible campaign
// with positive confirmed funding. A failure on one campaign does not stop
// the others; all failures are returned joined next to the payouts that
// were created.
func (u *PayoutUseCase) GenerateDuePayouts(ctx context.Context, p domain.Principal, asOf time.Time) ([]domain.Payout, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapManagePayouts)); err != nil {
		return nil, err
	}
	now := u.clock.Now()
	if asOf.IsZero() {
		asOf = now
	}

	candidates, err := u.payouts.ListPayoutCandidates(ctx, asOf)
	if err != nil {
		return nil, err
	}

	created := make([]domain.Payout, 0, len(candidates))
	var errs []error
	for _, c := range candidates {
		payout, err := u.payouts.CreatePlannedPayout(ctx, c.ID, planPayout(c, now))
		if err != nil {
			if errors.Is(err, domain.ErrDuplicatePayout) {
				u.log.ErrorContext(ctx, "duplicate payout rejected", slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			} else {
				u.log.ErrorContext(ctx, "create payout", slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			}
			errs = append(errs, fmt.Errorf("campaign %s: %w", c.ID, err))
			continue
		}
		if payout == nil {
			u.log.InfoContext(ctx, "no confirmed funding, payout skipped", slog.String("campaign_id", c.ID.String()))
			continue
		}

		u.log.InfoContext(ctx, "payout scheduled",
			slog.String("payout_id", payout.ID.String()),
			slog.String("campaign_id", c.ID.String()),
			slog.String("amount", payout.PayoutAmount.StringFixed(2)))
		u.announcePayout(ctx, *payout, c.Title, "")
		created = append(created, *payout)
	}
	return created, errors.Join(errs...)
}

// planPayout builds the payout of c from a funding snapshot. Campaigns
// without confirmed money get none.
func planPayout(c domain.Campaign, now time.Time) port.PayoutPlanner {
	return func(f domain.Funding) *domain.Payout {
		if !f.ConfirmedTotal.IsPositive() {
			return nil
		}
		return &domain.Payout{
			ID:           uuid.New(),
			CampaignID:   c.ID,
			OwnerID:      c.OwnerID,
			TotalRaised:  f.ConfirmedTotal,
			PayoutAmount: f.ConfirmedTotal,
			PayoutDate:   domain.PayoutDate(c.Deadline),
			Status:       domain.PayoutPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
}

// SetPayoutStatus closes a pending payout as paid or failed.
func (u *PayoutUseCase) SetPayoutStatus(ctx context.Context, p domain.Principal, payoutID uuid.UUID, to domain.PayoutStatus, note string) (*domain.Payout, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapManagePayouts)); err != nil {
		return nil, err
	}
	if to != domain.PayoutPaid && to != domain.PayoutFailed {
		return nil, fmt.Errorf("payout status %q: %w", to, domain.ErrInvalidInput)
	}

	payout, err := u.payouts.TransitionPayout(ctx, port.PayoutTransition{
		PayoutID: payoutID,
		To:       to,
		Note:     strings.TrimSpace(note),
		Currency: u.currency,
		At:       u.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "payout status changed",
		slog.String("payout_id", payout.ID.String()),
		slog.String("status", string(payout.Status)))
	u.announcePayout(ctx, *payout, u.campaignTitle(ctx, u.campaigns, payout.CampaignID), note)
	return payout, nil
}

func (u *PayoutUseCase) announcePayout(ctx context.Context, payout domain.Payout, title, note string) {
	eventType := domain.EventPayoutScheduled
	switch payout.Status {
	case domain.PayoutPaid:
		eventType = domain.EventPayoutPaid
	case domain.PayoutFailed:
		eventType = domain.EventPayoutFailed
	}
	payload := map[string]any{
		"payout_id":     payout.ID.String(),
		"campaign_id":   payout.CampaignID.String(),
		"owner_id":      payout.OwnerID.String(),
		"payout_amount": payout.PayoutAmount.StringFixed(2),
		"payout_date":   payout.PayoutDate.Format(time.DateOnly),
		"status":        string(payout.Status),
	}
	if payout.TransactionID != nil {
		payload["transaction_id"] = payout.TransactionID.String()
	}

	u.announce(ctx,
		domain.Notification{
			Kind:      domain.PayoutNotificationKind(payout.Status),
			Recipient: u.recipient(ctx, u.users, payout.OwnerID, ""),
			Data: map[string]string{
				"campaign_title": title,
				"total_raised":   payout.TotalRaised.StringFixed(2),
				"payout_amount":  payout.PayoutAmount.StringFixed(2),
				"currency":       u.currency,
				"payout_date":    payout.PayoutDate.Format(time.DateOnly),
				"payout_id":      payout.ID.String(),
				"note":           strings.TrimSpace(note),
			},
		},
		newEvent(eventType, payout.ID, payout.UpdatedAt, payload),
	)
}

func (u *PayoutUseCase) ListPayouts(ctx context.Context, p domain.Principal, page port.Page) ([]domain.Payout, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapViewAll)); err != nil {
		return nil, err
	}
	return u.payouts.ListPayouts(ctx, port.PayoutQuery{Page: page})
}

func (u *PayoutUseCase) ListCampaignPayouts(ctx context.Context, p domain.Principal, campaignID uuid.UUID) ([]domain.Payout, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapViewAll)); err != nil {
		return nil, err
	}
	return u.payouts.ListPayouts(ctx, port.PayoutQuery{CampaignID: &campaignID})
}

func (u *PayoutUseCase) ListMyPayouts(ctx context.Context, p domain.Principal) ([]domain.Payout, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapManageCampaigns)); err != nil {
		return nil, err
	}
	return u.payouts.ListPayouts(ctx, port.PayoutQuery{OwnerID: &p.UserID})
}
