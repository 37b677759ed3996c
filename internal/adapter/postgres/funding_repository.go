package postgres

import (
	"context"

	"github.com/google/uuid"

	"crowdoo/internal/core/domain"
)

// Money counts towards a campaign only when the investment is completed
// and its transaction succeeded. Every aggregate in this package is built
// on confirmedJoin and confirmedWhere.
const (
	confirmedJoin  = `investments i JOIN transactions t ON t.id = i.transaction_id`
	confirmedWhere = `i.status = 'completed' AND t.status = 'successful'`
)

const campaignFundingQuery = `
        SELECT COALESCE(SUM(i.amount), 0), COUNT(DISTINCT i.investor_id), COUNT(*)
        FROM ` + confirmedJoin + `
        WHERE ` + confirmedWhere + ` AND i.campaign_id = $1`

// currentAmountExpr derives Campaign.CurrentAmount for a campaign aliased c.
const currentAmountExpr = `COALESCE((SELECT SUM(i.amount) FROM ` + confirmedJoin + `
          WHERE ` + confirmedWhere + ` AND i.campaign_id = c.id), 0)`

// CampaignFunding returns the confirmed funding of a campaign. A campaign
// without confirmed investments yields a zero Funding.
func (s *Store) CampaignFunding(ctx context.Context, campaignID uuid.UUID) (domain.Funding, error) {
	return campaignFunding(ctx, s.pool, campaignID)
}

func campaignFunding(ctx context.Context, q querier, campaignID uuid.UUID) (domain.Funding, error) {
	var f domain.Funding
	err := q.QueryRow(ctx, campaignFundingQuery, campaignID).Scan(&f.ConfirmedTotal, &f.InvestorCount, &f.InvestmentCount)
	if err != nil {
		return domain.Funding{}, err
	}
	return f, nil
}

// InvestorStats aggregates the confirmed investments of one investor.
func (s *Store) InvestorStats(ctx context.Context, investorID uuid.UUID) (domain.InvestorStats, error) {
	var st domain.InvestorStats
	err := s.pool.QueryRow(ctx, `
        SELECT COUNT(*), COALESCE(SUM(i.amount), 0)
        FROM `+confirmedJoin+`
        WHERE `+confirmedWhere+` AND i.investor_id = $1`, investorID).Scan(&st.Count, &st.TotalAmount)
	if err != nil {
		return domain.InvestorStats{}, err
	}
	return st, nil
}
