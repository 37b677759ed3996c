package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

const payoutColumns = `p.id, p.campaign_id, p.owner_id, p.total_raised, p.payout_amount, p.payout_date,
        p.status, p.transaction_id, p.created_at, p.updated_at`

func payoutDest(p *domain.Payout) []any {
	return []any{
		&p.ID, &p.CampaignID, &p.OwnerID, &p.TotalRaised, &p.PayoutAmount, &p.PayoutDate,
		&p.Status, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
	}
}

// ListPayoutCandidates returns successful campaigns past their deadline
// that have no payout row.
func (s *Store) ListPayoutCandidates(ctx context.Context, asOf time.Time) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns c
        WHERE c.status = 'successful'
          AND c.deadline < $1
          AND NOT EXISTS (SELECT 1 FROM payouts p WHERE p.campaign_id = c.id)
        ORDER BY c.deadline, c.id`, asOf)
	return collectCampaigns(rows, err)
}

// CreatePlannedPayout reads funding and inserts the planned payout in one
// repeatable-read transaction so the amount matches the snapshot it was
// computed from.
func (s *Store) CreatePlannedPayout(ctx context.Context, campaignID uuid.UUID, plan port.PayoutPlanner) (*domain.Payout, error) {
	var created *domain.Payout
	err := s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, func(tx pgx.Tx) error {
		funding, err := campaignFunding(ctx, tx, campaignID)
		if err != nil {
			return err
		}
		p := plan(funding)
		if p == nil {
			return nil
		}
		err = tx.QueryRow(ctx, `
            INSERT INTO payouts (id, campaign_id, owner_id, total_raised, payout_amount, payout_date, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
            RETURNING created_at, updated_at`,
			p.ID, campaignID, p.OwnerID, p.TotalRaised, p.PayoutAmount, p.PayoutDate, p.Status, p.CreatedAt,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
		if isUniqueViolation(err) {
			return fmt.Errorf("campaign %s: %w", campaignID, domain.ErrDuplicatePayout)
		}
		if err != nil {
			return err
		}
		p.CampaignID = campaignID
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetPayout returns a payout by id.
func (s *Store) GetPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	var p domain.Payout
	err := s.pool.QueryRow(ctx, `SELECT `+payoutColumns+` FROM payouts p WHERE p.id = $1`, id).Scan(payoutDest(&p)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPayouts returns payouts matching q ordered by payout date.
func (s *Store) ListPayouts(ctx context.Context, q port.PayoutQuery) ([]domain.Payout, error) {
	limit, offset := limitOffset(q.Page)
	rows, err := s.pool.Query(ctx, `
        SELECT `+payoutColumns+`
        FROM payouts p
        WHERE ($1::uuid IS NULL OR p.owner_id = $1)
          AND ($2::uuid IS NULL OR p.campaign_id = $2)
        ORDER BY p.payout_date DESC, p.created_at DESC
        LIMIT $3 OFFSET $4`,
		q.OwnerID, q.CampaignID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payout, error) {
		var p domain.Payout
		err := row.Scan(payoutDest(&p)...)
		return p, err
	})
}

// TransitionPayout closes a pending payout. A payout-type transaction
// records the disbursement attempt: successful for paid, failed for failed.
func (s *Store) TransitionPayout(ctx context.Context, t port.PayoutTransition) (*domain.Payout, error) {
	var p domain.Payout
	err := s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT `+payoutColumns+` FROM payouts p WHERE p.id = $1 FOR UPDATE`, t.PayoutID).
			Scan(payoutDest(&p)...)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("payout %s: %w", t.PayoutID, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if !p.Status.CanTransition(t.To) {
			return fmt.Errorf("payout %s is %s: %w", p.ID, p.Status, domain.ErrIneligibleState)
		}

		txStatus := domain.TransactionSuccessful
		if t.To == domain.PayoutFailed {
			txStatus = domain.TransactionFailed
		}
		txID := uuid.New()
		_, err = tx.Exec(ctx, `
            INSERT INTO transactions (id, amount, fee, currency, type, status, status_description, created_at, updated_at)
            VALUES ($1, $2, 0, $3, $4, $5, $6, $7, $7)`,
			txID, p.PayoutAmount, t.Currency, domain.TransactionPayout, txStatus, t.Note, t.At)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
            UPDATE payouts SET status = $2, transaction_id = $3, updated_at = $4
            WHERE id = $1 AND status = 'pending'`,
			p.ID, t.To, txID, t.At)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("payout %s changed concurrently: %w", p.ID, domain.ErrIneligibleState)
		}
		p.Status = t.To
		p.TransactionID = &txID
		p.UpdatedAt = t.At
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
