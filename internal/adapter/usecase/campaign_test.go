package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
	"crowdoo/internal/core/port/mocks"
)

func validCampaignInput() port.CampaignInput {
	return port.CampaignInput{
		Title:      "  Community garden ",
		Category:   "ecology",
		Region:     "mazowieckie",
		GoalAmount: decimal.RequireFromString("15000.005"),
		Deadline:   testNow.AddDate(0, 2, 0),
	}
}

func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	founder := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
			return c.OwnerID == founder.UserID &&
				c.Status == domain.CampaignDraft &&
				c.Title == "Community garden" &&
				c.GoalAmount.Equal(decimal.RequireFromString("15000.01"))
		})).
		Return(nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)
	c, err := uc.CreateCampaign(context.Background(), founder, validCampaignInput())
	require.NoError(t, err)
	assert.True(t, c.CurrentAmount.IsZero())
}

func TestCreateCampaign_Rejects(t *testing.T) {
	uc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), testClock, testLogger)
	founder := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}

	_, err := uc.CreateCampaign(context.Background(), domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}, validCampaignInput())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in := validCampaignInput()
	in.Title = " "
	_, err = uc.CreateCampaign(context.Background(), founder, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCampaignInput()
	in.Title = "Garden\r\nBcc: someone@example.com"
	_, err = uc.CreateCampaign(context.Background(), founder, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCampaignInput()
	in.GoalAmount = decimal.Zero
	_, err = uc.CreateCampaign(context.Background(), founder, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validCampaignInput()
	in.Deadline = testNow.Add(-time.Minute)
	_, err = uc.CreateCampaign(context.Background(), founder, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListActiveCampaigns_ForcesActiveFilter(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	owner := uuid.New()
	repo.EXPECT().
		ListCampaigns(mock.Anything, mock.MatchedBy(func(q port.CampaignQuery) bool {
			return q.Status != nil && *q.Status == domain.CampaignActive && q.OwnerID == nil && q.Category == "tech"
		})).
		Return([]domain.Campaign{{ID: uuid.New()}}, nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)
	draft := domain.CampaignDraft
	got, err := uc.ListActiveCampaigns(context.Background(), port.CampaignQuery{OwnerID: &owner, Status: &draft, Category: "tech"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateCampaign_OwnershipAndState(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	stranger := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}

	open := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignActive}
	closed := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignSuccessful}
	repo.EXPECT().GetCampaign(mock.Anything, open.ID).Return(&open, nil)
	repo.EXPECT().GetCampaign(mock.Anything, closed.ID).Return(&closed, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil).Once()

	uc := NewCampaignUseCase(repo, testClock, testLogger)

	_, err := uc.UpdateCampaign(context.Background(), stranger, open.ID, validCampaignInput())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.UpdateCampaign(context.Background(), owner, closed.ID, validCampaignInput())
	assert.ErrorIs(t, err, domain.ErrIneligibleState)

	got, err := uc.UpdateCampaign(context.Background(), owner, open.ID, validCampaignInput())
	require.NoError(t, err)
	assert.Equal(t, "Community garden", got.Title)
}

func TestSetCampaignStatus(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := domain.Campaign{ID: uuid.New(), OwnerID: uuid.New(), Status: domain.CampaignDraft}
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(&c, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, c.ID, domain.CampaignDraft, domain.CampaignActive).Return(nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)

	_, err := uc.SetCampaignStatus(context.Background(), admin, c.ID, "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.SetCampaignStatus(context.Background(), admin, c.ID, domain.CampaignActive)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)
}

func TestSetCampaignStatus_NeverBackToDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	funded := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignSuccessful}
	live := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignActive}
	repo.EXPECT().GetCampaign(mock.Anything, funded.ID).Return(&funded, nil)
	repo.EXPECT().GetCampaign(mock.Anything, live.ID).Return(&live, nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)

	_, err := uc.SetCampaignStatus(context.Background(), owner, funded.ID, domain.CampaignDraft)
	assert.ErrorIs(t, err, domain.ErrIneligibleState)
	_, err = uc.SetCampaignStatus(context.Background(), owner, live.ID, domain.CampaignDraft)
	assert.ErrorIs(t, err, domain.ErrIneligibleState)
	assert.Equal(t, domain.CampaignSuccessful, funded.Status)

	assert.ErrorIs(t, uc.DeleteCampaign(context.Background(), owner, funded.ID), domain.ErrIneligibleState)
}

func TestSetCampaignStatus_ConcurrentChange(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := domain.Campaign{ID: uuid.New(), OwnerID: uuid.New(), Status: domain.CampaignActive}
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(&c, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, c.ID, domain.CampaignActive, domain.CampaignSuccessful).
		Return(domain.ErrIneligibleState)

	uc := NewCampaignUseCase(repo, testClock, testLogger)
	_, err := uc.SetCampaignStatus(context.Background(), admin, c.ID, domain.CampaignSuccessful)
	assert.ErrorIs(t, err, domain.ErrIneligibleState)
	assert.Equal(t, domain.CampaignActive, c.Status)
}

func TestCloseCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	active := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignActive}
	failed := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignFailed}
	repo.EXPECT().GetCampaign(mock.Anything, active.ID).Return(&active, nil)
	repo.EXPECT().GetCampaign(mock.Anything, failed.ID).Return(&failed, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, active.ID, domain.CampaignActive, domain.CampaignFailed).Return(nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)
	got, err := uc.CloseCampaign(context.Background(), owner, active.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignFailed, got.Status)

	_, err = uc.CloseCampaign(context.Background(), owner, failed.ID)
	assert.ErrorIs(t, err, domain.ErrIneligibleState)
}

func TestDeleteCampaign_OnlyDrafts(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	draft := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignDraft}
	active := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID, Status: domain.CampaignActive}
	repo.EXPECT().GetCampaign(mock.Anything, draft.ID).Return(&draft, nil)
	repo.EXPECT().GetCampaign(mock.Anything, active.ID).Return(&active, nil)
	repo.EXPECT().DeleteDraftCampaign(mock.Anything, draft.ID).Return(true, nil)

	uc := NewCampaignUseCase(repo, testClock, testLogger)
	require.NoError(t, uc.DeleteCampaign(context.Background(), owner, draft.ID))
	assert.ErrorIs(t, uc.DeleteCampaign(context.Background(), owner, active.ID), domain.ErrIneligibleState)
}

func TestCampaignFunding_Authorization(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	funding := mocks.NewMockFundingRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	c := domain.Campaign{ID: uuid.New(), OwnerID: owner.UserID}
	want := domain.Funding{ConfirmedTotal: decimal.RequireFromString("500.00"), InvestorCount: 1, InvestmentCount: 1}

	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(&c, nil)
	funding.EXPECT().CampaignFunding(mock.Anything, c.ID).Return(want, nil).Twice()

	uc := NewFundingUseCase(campaigns, funding)

	got, err := uc.CampaignFunding(context.Background(), owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = uc.CampaignFunding(context.Background(), admin, c.ID)
	require.NoError(t, err)

	_, err = uc.CampaignFunding(context.Background(), domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCampaignFunding_UnknownCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	_, err := NewFundingUseCase(campaigns, mocks.NewMockFundingRepository(t)).CampaignFunding(context.Background(), admin, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
