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

var campaignColumns = `c.id, c.owner_id, c.title, c.description, c.category, c.region,
        c.goal_amount, ` + currentAmountExpr + `, c.deadline, c.status, c.created_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Region,
		&c.GoalAmount,
		&c.CurrentAmount,
		&c.Deadline,
		&c.Status,
		&c.CreatedAt,
	)
	return c, err
}

func collectCampaigns(rows pgx.Rows, err error) ([]domain.Campaign, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// CreateCampaign inserts a new campaign. CurrentAmount is left zero.
func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO campaigns (id, owner_id, title, description, category, region, goal_amount, deadline, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at`,
		c.ID, c.OwnerID, c.Title, c.Description, c.Category, c.Region, c.GoalAmount, c.Deadline, c.Status,
	).Scan(&c.CreatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns matching q, newest first.
func (s *Store) ListCampaigns(ctx context.Context, q port.CampaignQuery) ([]domain.Campaign, error) {
	limit, offset := limitOffset(q.Page)
	var status *string
	if q.Status != nil {
		v := string(*q.Status)
		status = &v
	}
	rows, err := s.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns c
        WHERE ($1::uuid IS NULL OR c.owner_id = $1)
          AND ($2::text IS NULL OR c.status = $2)
          AND ($3 = '' OR c.category = $3)
          AND ($4 = '' OR c.region = $4)
        ORDER BY c.created_at DESC
        LIMIT $5 OFFSET $6`,
		q.OwnerID, status, q.Category, q.Region, limit, offset)
	return collectCampaigns(rows, err)
}

// UpdateCampaign overwrites the editable fields of a campaign.
func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := s.pool.Exec(ctx, `
        UPDATE campaigns
        SET title = $2, description = $3, category = $4, region = $5, goal_amount = $6, deadline = $7
        WHERE id = $1`,
		c.ID, c.Title, c.Description, c.Category, c.Region, c.GoalAmount, c.Deadline)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// SetCampaignStatus moves a campaign from one lifecycle status to
// another. It fails with ErrIneligibleState when the campaign is no longer
// in status from.
func (s *Store) SetCampaignStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) error {
	tag, err := s.pool.Exec(ctx, `UPDATE campaigns SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s is no longer %s: %w", id, from, domain.ErrIneligibleState)
	}
	return nil
}

// DeleteDraftCampaign deletes a campaign that is still a draft. Its
// investments go with it through the foreign key cascade.
func (s *Store) DeleteDraftCampaign(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListCampaignInvestors returns the confirmed investments of a campaign
// with the investors' emails.
func (s *Store) ListCampaignInvestors(ctx context.Context, id uuid.UUID) ([]domain.CampaignInvestor, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT u.id, u.email, i.id, i.amount, i.status, i.created_at
        FROM `+confirmedJoin+`
        JOIN users u ON u.id = i.investor_id
        WHERE `+confirmedWhere+` AND i.campaign_id = $1
        ORDER BY i.created_at`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignInvestor, error) {
		var ci domain.CampaignInvestor
		err := row.Scan(&ci.InvestorID, &ci.Email, &ci.InvestmentID, &ci.Amount, &ci.Status, &ci.CreatedAt)
		return ci, err
	})
}
