package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// CampaignUseCase manages campaigns on behalf of their owners.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	clock     port.Clock
	log       *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(campaigns port.CampaignRepository, clock port.Clock, log *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, clock: clock, log: log}
}

// CreateCampaign stores a new draft campaign owned by p.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, p domain.Principal, in port.CampaignInput) (*domain.Campaign, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapManageCampaigns)); err != nil {
		return nil, err
	}
	in = normalizeCampaignInput(in)
	if err := validateCampaignInput(in); err != nil {
		return nil, err
	}
	if !in.Deadline.After(u.clock.Now()) {
		return nil, fmt.Errorf("deadline must be in the future: %w", domain.ErrInvalidInput)
	}

	c := &domain.Campaign{
		ID:            uuid.New(),
		OwnerID:       p.UserID,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Region:        in.Region,
		GoalAmount:    in.GoalAmount.Round(2),
		CurrentAmount: decimal.Zero,
		Deadline:      in.Deadline,
		Status:        domain.CampaignDraft,
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "campaign created", slog.String("campaign_id", c.ID.String()), slog.String("owner_id", p.UserID.String()))
	return c, nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return loadCampaign(ctx, u.campaigns, id)
}

// ListActiveCampaigns is the public investor feed.
func (u *CampaignUseCase) ListActiveCampaigns(ctx context.Context, q port.CampaignQuery) ([]domain.Campaign, error) {
	active := domain.CampaignActive
	q.Status = &active
	q.OwnerID = nil
	return u.campaigns.ListCampaigns(ctx, q)
}

func (u *CampaignUseCase) ListMyCampaigns(ctx context.Context, p domain.Principal) ([]domain.Campaign, error) {
	if err := domain.Authorize(p, domain.HasCapability(domain.CapManageCampaigns)); err != nil {
		return nil, err
	}
	return u.campaigns.ListCampaigns(ctx, port.CampaignQuery{OwnerID: &p.UserID})
}

// UpdateCampaign replaces the editable fields. Closed campaigns are frozen.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in port.CampaignInput) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Closed() {
		return nil, fmt.Errorf("campaign %s is %s: %w", id, c.Status, domain.ErrIneligibleState)
	}
	in = normalizeCampaignInput(in)
	if err = validateCampaignInput(in); err != nil {
		return nil, err
	}

	c.Title = in.Title
	c.Description = in.Description
	c.Category = in.Category
	c.Region = in.Region
	c.GoalAmount = in.GoalAmount.Round(2)
	c.Deadline = in.Deadline
	if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) SetCampaignStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("campaign status %q: %w", status, domain.ErrInvalidInput)
	}
	c, err := u.ownedCampaign(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransition(status) {
		return nil, fmt.Errorf("campaign %s cannot move from %s to %s: %w", id, c.Status, status, domain.ErrIneligibleState)
	}
	if err = u.campaigns.SetCampaignStatus(ctx, id, c.Status, status); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "campaign status changed",
		slog.String("campaign_id", id.String()),
		slog.String("from", string(c.Status)),
		slog.String("to", string(status)))
	c.Status = status
	return c, nil
}

// CloseCampaign ends a campaign as failed.
func (u *CampaignUseCase) CloseCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Closed() {
		return nil, fmt.Errorf("campaign %s is already %s: %w", id, c.Status, domain.ErrIneligibleState)
	}
	return u.SetCampaignStatus(ctx, p, id, domain.CampaignFailed)
}

// DeleteCampaign removes a draft campaign together with its investments.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	c, err := u.ownedCampaign(ctx, p, id)
	if err != nil {
		return err
	}
	if c.Status != domain.CampaignDraft {
		return fmt.Errorf("campaign %s is %s: %w", id, c.Status, domain.ErrIneligibleState)
	}
	deleted, err := u.campaigns.DeleteDraftCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("campaign %s is no longer a draft: %w", id, domain.ErrIneligibleState)
	}
	u.log.InfoContext(ctx, "campaign deleted", slog.String("campaign_id", id.String()))
	return nil
}

func (u *CampaignUseCase) CampaignInvestors(ctx context.Context, p domain.Principal, id uuid.UUID) ([]domain.CampaignInvestor, error) {
	if _, err := u.ownedCampaign(ctx, p, id); err != nil {
		return nil, err
	}
	return u.campaigns.ListCampaignInvestors(ctx, id)
}

// ownedCampaign loads a campaign the principal may manage.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	c, err := loadCampaign(ctx, u.campaigns, id)
	if err != nil {
		return nil, err
	}
	if err = domain.Authorize(p, ownerOrViewer(c.OwnerID)); err != nil {
		return nil, err
	}
	return c, nil
}

func normalizeCampaignInput(in port.CampaignInput) port.CampaignInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Region = strings.TrimSpace(in.Region)
	return in
}

func validateCampaignInput(in port.CampaignInput) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	case strings.ContainsAny(in.Title, "\r\n"):
		return fmt.Errorf("title must be a single line: %w", domain.ErrInvalidInput)
	case !in.GoalAmount.IsPositive():
		return fmt.Errorf("goal amount must be positive: %w", domain.ErrInvalidInput)
	case in.Deadline.IsZero():
		return fmt.Errorf("deadline is required: %w", domain.ErrInvalidInput)
	}
	return nil
}
