package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// SettleInvestment applies a gateway outcome to an investment and its
// deposit transaction. The investment row is locked first so concurrent
// notifications for the same payment serialize; the transaction update is
// guarded by status = 'pending' so only one of them ever writes.
func (s *Store) SettleInvestment(ctx context.Context, st port.Settlement) (*port.SettlementResult, error) {
	var res port.SettlementResult
	err := s.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments i WHERE i.id = $1 FOR UPDATE`, st.InvestmentID).
			Scan(investmentDest(&res.Investment)...)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("investment %s: %w", st.InvestmentID, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if res.Investment.TransactionID == nil {
			return fmt.Errorf("investment %s has no transaction: %w", st.InvestmentID, domain.ErrDataIntegrity)
		}
		txID := *res.Investment.TransactionID

		err = tx.QueryRow(ctx, `
            UPDATE transactions t
            SET status = $2,
                status_description = $3,
                gateway_transaction_id = COALESCE(NULLIF($4, ''), t.gateway_transaction_id),
                updated_at = $5
            WHERE t.id = $1 AND t.status = 'pending'
            RETURNING `+transactionColumns,
			txID, st.TransactionStatus, st.StatusDescription, st.GatewayTransactionID, st.SettledAt,
		).Scan(transactionDest(&res.Transaction)...)
		if errors.Is(err, pgx.ErrNoRows) {
			// Already terminal: report the stored state without writing.
			err = tx.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions t WHERE t.id = $1`, txID).
				Scan(transactionDest(&res.Transaction)...)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("transaction %s of investment %s: %w", txID, st.InvestmentID, domain.ErrDataIntegrity)
			}
			return err
		}
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `UPDATE investments SET status = $2 WHERE id = $1 AND status = 'pending'`,
			st.InvestmentID, st.InvestmentStatus)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("investment %s is %s while its transaction was pending: %w",
				st.InvestmentID, res.Investment.Status, domain.ErrDataIntegrity)
		}
		res.Investment.Status = st.InvestmentStatus
		res.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
