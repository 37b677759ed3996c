package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

const investmentColumns = `i.id, i.investor_id, i.campaign_id, i.amount, i.status, i.transaction_id, i.created_at`

const transactionColumns = `t.id, t.gateway_transaction_id, t.amount, t.fee, t.currency, t.type, t.status,
        t.status_description, t.created_at, t.updated_at`

func investmentDest(inv *domain.Investment) []any {
	return []any{&inv.ID, &inv.InvestorID, &inv.CampaignID, &inv.Amount, &inv.Status, &inv.TransactionID, &inv.CreatedAt}
}

func transactionDest(t *domain.Transaction) []any {
	return []any{
		&t.ID, &t.GatewayTransactionID, &t.Amount, &t.Fee, &t.Currency, &t.Type, &t.Status,
		&t.StatusDescription, &t.CreatedAt, &t.UpdatedAt,
	}
}

func scanInvestorTransaction(row pgx.Row) (domain.InvestorTransaction, error) {
	var it domain.InvestorTransaction
	dest := append(transactionDest(&it.Transaction), &it.InvestmentID, &it.InvestorID)
	return it, row.Scan(dest...)
}

// CreateInvestment inserts the deposit transaction first so the investment
// can reference it, all within one transaction. The campaign row is share
// locked so it cannot be closed or deleted concurrently.
func (s *Store) CreateInvestment(ctx context.Context, inv *domain.Investment, t *domain.Transaction) error {
	return s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var c domain.Campaign
		err := tx.QueryRow(ctx, `SELECT status, deadline FROM campaigns WHERE id = $1 FOR SHARE`, inv.CampaignID).
			Scan(&c.Status, &c.Deadline)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("campaign %s: %w", inv.CampaignID, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if !c.AcceptsInvestments(inv.CreatedAt) {
			return fmt.Errorf("campaign %s is %s: %w", inv.CampaignID, c.Status, domain.ErrIneligibleState)
		}

		err = tx.QueryRow(ctx, `
            INSERT INTO transactions (id, gateway_transaction_id, amount, fee, currency, type, status, status_description, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
            RETURNING created_at, updated_at`,
			t.ID, t.GatewayTransactionID, t.Amount, t.Fee, t.Currency, t.Type, t.Status, t.StatusDescription, inv.CreatedAt,
		).Scan(&t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return err
		}

		inv.TransactionID = &t.ID
		_, err = tx.Exec(ctx, `
            INSERT INTO investments (id, investor_id, campaign_id, amount, status, transaction_id, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			inv.ID, inv.InvestorID, inv.CampaignID, inv.Amount, inv.Status, inv.TransactionID, inv.CreatedAt)
		return err
	})
}

// GetInvestment returns an investment by id.
func (s *Store) GetInvestment(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	var inv domain.Investment
	err := s.pool.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments i WHERE i.id = $1`, id).
		Scan(investmentDest(&inv)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvestments returns investments matching q, newest first.
func (s *Store) ListInvestments(ctx context.Context, q port.InvestmentQuery) ([]domain.Investment, error) {
	limit, offset := limitOffset(q.Page)
	rows, err := s.pool.Query(ctx, `
        SELECT `+investmentColumns+`
        FROM investments i
        WHERE ($1::uuid IS NULL OR i.investor_id = $1)
          AND ($2::uuid IS NULL OR i.campaign_id = $2)
        ORDER BY i.created_at DESC
        LIMIT $3 OFFSET $4`,
		q.InvestorID, q.CampaignID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var inv domain.Investment
		err := row.Scan(investmentDest(&inv)...)
		return inv, err
	})
}

// InvestmentHistory returns the investor's latest investments with the
// campaign they went to.
func (s *Store) InvestmentHistory(ctx context.Context, investorID uuid.UUID, limit int) ([]domain.InvestmentHistoryItem, error) {
	limit, _ = limitOffset(port.Page{Limit: limit})
	rows, err := s.pool.Query(ctx, `
        SELECT `+investmentColumns+`, c.title, c.status
        FROM investments i
        JOIN campaigns c ON c.id = i.campaign_id
        WHERE i.investor_id = $1
        ORDER BY i.created_at DESC
        LIMIT $2`, investorID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvestmentHistoryItem, error) {
		var h domain.InvestmentHistoryItem
		dest := append(investmentDest(&h.Investment), &h.CampaignTitle, &h.CampaignStatus)
		return h, row.Scan(dest...)
	})
}

// GetTransaction returns a deposit transaction together with the
// investment it funds.
func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.InvestorTransaction, error) {
	it, err := scanInvestorTransaction(s.pool.QueryRow(ctx, `
        SELECT `+transactionColumns+`, i.id, i.investor_id
        FROM transactions t
        JOIN investments i ON i.transaction_id = t.id
        WHERE t.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListTransactions returns investor transactions matching q, newest first.
func (s *Store) ListTransactions(ctx context.Context, q port.TransactionQuery) ([]domain.InvestorTransaction, error) {
	limit, offset := limitOffset(q.Page)
	rows, err := s.pool.Query(ctx, `
        SELECT `+transactionColumns+`, i.id, i.investor_id
        FROM transactions t
        JOIN investments i ON i.transaction_id = t.id
        WHERE ($1::uuid IS NULL OR i.investor_id = $1)
        ORDER BY t.created_at DESC
        LIMIT $2 OFFSET $3`,
		q.InvestorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvestorTransaction, error) {
		return scanInvestorTransaction(row)
	})
}

// AttachGatewaySession stores the gateway id of a pending transaction.
func (s *Store) AttachGatewaySession(ctx context.Context, transactionID uuid.UUID, gatewayID string) error {
	_, err := s.pool.Exec(ctx, `
        UPDATE transactions SET gateway_transaction_id = $2, updated_at = now()
        WHERE id = $1 AND status = 'pending'`, transactionID, gatewayID)
	return err
}

// AbandonInvestment cancels the pending transaction of an investment and
// marks the investment refunded. Already settled rows are left untouched.
func (s *Store) AbandonInvestment(ctx context.Context, investmentID uuid.UUID, reason string) error {
	return s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var txID *uuid.UUID
		err := tx.QueryRow(ctx, `SELECT transaction_id FROM investments WHERE id = $1 FOR UPDATE`, investmentID).Scan(&txID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("investment %s: %w", investmentID, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if txID == nil {
			return fmt.Errorf("investment %s has no transaction: %w", investmentID, domain.ErrDataIntegrity)
		}
		tag, err := tx.Exec(ctx, `
            UPDATE transactions SET status = 'cancelled', status_description = $2, updated_at = now()
            WHERE id = $1 AND status = 'pending'`, *txID, reason)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		_, err = tx.Exec(ctx, `UPDATE investments SET status = 'refunded' WHERE id = $1 AND status = 'pending'`, investmentID)
		return err
	})
}
