package usecase

import (
	"context"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// AdminUseCase lists the whole ledger for operators.
type AdminUseCase struct {
	users       port.UserRepository
	campaigns   port.CampaignRepository
	investments port.InvestmentRepository
}

var _ port.AdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users port.UserRepository, campaigns port.CampaignRepository, investments port.InvestmentRepository) *AdminUseCase {
	return &AdminUseCase{users: users, campaigns: campaigns, investments: investments}
}

var canViewAll = domain.HasCapability(domain.CapViewAll)

func (u *AdminUseCase) ListUsers(ctx context.Context, p domain.Principal, page port.Page) ([]domain.User, error) {
	if err := domain.Authorize(p, canViewAll); err != nil {
		return nil, err
	}
	return u.users.ListUsers(ctx, page)
}

func (u *AdminUseCase) ListCampaigns(ctx context.Context, p domain.Principal, page port.Page) ([]domain.Campaign, error) {
	if err := domain.Authorize(p, canViewAll); err != nil {
		return nil, err
	}
	return u.campaigns.ListCampaigns(ctx, port.CampaignQuery{Page: page})
}

func (u *AdminUseCase) ListInvestments(ctx context.Context, p domain.Principal, page port.Page) ([]domain.Investment, error) {
	if err := domain.Authorize(p, canViewAll); err != nil {
		return nil, err
	}
	return u.investments.ListInvestments(ctx, port.InvestmentQuery{Page: page})
}

func (u *AdminUseCase) ListTransactions(ctx context.Context, p domain.Principal, page port.Page) ([]domain.InvestorTransaction, error) {
	if err := domain.Authorize(p, canViewAll); err != nil {
		return nil, err
	}
	return u.investments.ListTransactions(ctx, port.TransactionQuery{Page: page})
}
