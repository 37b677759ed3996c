package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// FundingUseCase reports confirmed campaign funding.
type FundingUseCase struct {
	campaigns port.CampaignRepository
	funding   port.FundingRepository
}

var _ port.FundingUseCase = (*FundingUseCase)(nil)

func NewFundingUseCase(campaigns port.CampaignRepository, funding port.FundingRepository) *FundingUseCase {
	return &FundingUseCase{campaigns: campaigns, funding: funding}
}

func (u *FundingUseCase) CampaignFunding(ctx context.Context, p domain.Principal, campaignID uuid.UUID) (domain.Funding, error) {
	c, err := loadCampaign(ctx, u.campaigns, campaignID)
	if err != nil {
		return domain.Funding{}, err
	}
	if err = domain.Authorize(p, ownerOrViewer(c.OwnerID)); err != nil {
		return domain.Funding{}, err
	}
	return u.funding.CampaignFunding(ctx, campaignID)
}

// ownerOrViewer allows the owner of a resource and principals that may
// see everything.
func ownerOrViewer(owner uuid.UUID) domain.Predicate {
	return domain.AnyOf(domain.IsUser(owner), domain.HasCapability(domain.CapViewAll))
}

func loadCampaign(ctx context.Context, campaigns port.CampaignRepository, id uuid.UUID) (*domain.Campaign, error) {
	c, err := campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}
