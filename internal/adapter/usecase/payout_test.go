package usecase

import (
	"context"
	"fmt"
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

var admin = domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}

func newLedgerPayouts(l *memLedger, notifier port.Notifier) *PayoutUseCase {
	return NewPayoutUseCase(l, l, l, notifier, discardEvents{}, testClock, "PLN", testLogger)
}

func TestGenerateDuePayouts_SecondRunIsEmpty(t *testing.T) {
	l := newMemLedger()
	owner := l.addUser(domain.RoleEntrepreneur)
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(owner.ID, domain.CampaignSuccessful, time.Date(2024, 12, 15, 18, 0, 0, 0, time.UTC))
	l.addInvestment(investor.ID, c.ID, "300.00", domain.InvestmentCompleted, domain.TransactionSuccessful)
	l.addInvestment(investor.ID, c.ID, "200.00", domain.InvestmentCompleted, domain.TransactionSuccessful)
	l.addInvestment(investor.ID, c.ID, "999.00", domain.InvestmentPending, domain.TransactionPending)
	l.addInvestment(investor.ID, c.ID, "50.00", domain.InvestmentRefunded, domain.TransactionFailed)

	notifier := &countingNotifier{}
	uc := newLedgerPayouts(l, notifier)
	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := uc.GenerateDuePayouts(context.Background(), admin, asOf)
	require.NoError(t, err)
	require.Len(t, first, 1)
	p := first[0]
	assert.Equal(t, c.ID, p.CampaignID)
	assert.Equal(t, owner.ID, p.OwnerID)
	assert.True(t, decimal.RequireFromString("500.00").Equal(p.PayoutAmount))
	assert.True(t, p.TotalRaised.Equal(p.PayoutAmount))
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), p.PayoutDate)
	assert.Equal(t, domain.PayoutPending, p.Status)
	assert.Equal(t, 1, notifier.count(domain.NotifyPayoutScheduled))
	assert.Equal(t, owner.Email, notifier.sent[0].Recipient)

	second, err := uc.GenerateDuePayouts(context.Background(), admin, asOf)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, notifier.sent, 1)
}

func TestGenerateDuePayouts_Eligibility(t *testing.T) {
	l := newMemLedger()
	owner := l.addUser(domain.RoleEntrepreneur)
	investor := l.addUser(domain.RoleInvestor)
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	due := l.addCampaign(owner.ID, domain.CampaignSuccessful, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	unfunded := l.addCampaign(owner.ID, domain.CampaignSuccessful, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	pendingOnly := l.addCampaign(owner.ID, domain.CampaignSuccessful, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	notYet := l.addCampaign(owner.ID, domain.CampaignSuccessful, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	failed := l.addCampaign(owner.ID, domain.CampaignFailed, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	l.addInvestment(investor.ID, due.ID, "10.00", domain.InvestmentCompleted, domain.TransactionSuccessful)
	l.addInvestment(investor.ID, pendingOnly.ID, "10.00", domain.InvestmentPending, domain.TransactionPending)
	l.addInvestment(investor.ID, notYet.ID, "10.00", domain.InvestmentCompleted, domain.TransactionSuccessful)
	l.addInvestment(investor.ID, failed.ID, "10.00", domain.InvestmentCompleted, domain.TransactionSuccessful)

	notifier := &countingNotifier{}
	created, err := newLedgerPayouts(l, notifier).GenerateDuePayouts(context.Background(), admin, asOf)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, due.ID, created[0].CampaignID)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), created[0].PayoutDate)

	stored, err := l.ListPayouts(context.Background(), port.PayoutQuery{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEqual(t, unfunded.ID, stored[0].CampaignID)
	assert.NotEqual(t, pendingOnly.ID, stored[0].CampaignID)
	assert.Len(t, notifier.sent, 1)
}

func TestGenerateDuePayouts_DefaultsToClock(t *testing.T) {
	payouts := mocks.NewMockPayoutRepository(t)
	payouts.EXPECT().ListPayoutCandidates(mock.Anything, testNow).Return(nil, nil)

	uc := NewPayoutUseCase(mocks.NewMockCampaignRepository(t), payouts, mocks.NewMockUserRepository(t),
		mocks.NewMockNotifier(t), mocks.NewMockEventPublisher(t), testClock, "PLN", testLogger)
	created, err := uc.GenerateDuePayouts(context.Background(), domain.SystemPrincipal(), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, created)
}

// A duplicate rejected by storage is reported while other campaigns are
// still processed.
func TestGenerateDuePayouts_DuplicateIsReportedAndOthersContinue(t *testing.T) {
	payouts := mocks.NewMockPayoutRepository(t)
	users := mocks.NewMockUserRepository(t)
	notifier := mocks.NewMockNotifier(t)
	events := mocks.NewMockEventPublisher(t)

	owner := domain.User{ID: uuid.New(), Email: "owner@example.com"}
	raced := domain.Campaign{ID: uuid.New(), OwnerID: owner.ID, Status: domain.CampaignSuccessful, Deadline: testNow.AddDate(0, -1, 0)}
	ok := domain.Campaign{ID: uuid.New(), OwnerID: owner.ID, Title: "Ok", Status: domain.CampaignSuccessful, Deadline: testNow.AddDate(0, -1, 0)}

	payouts.EXPECT().ListPayoutCandidates(mock.Anything, testNow).Return([]domain.Campaign{raced, ok}, nil)
	payouts.EXPECT().CreatePlannedPayout(mock.Anything, raced.ID, mock.Anything).
		Return(nil, fmt.Errorf("campaign %s: %w", raced.ID, domain.ErrDuplicatePayout))
	payouts.EXPECT().CreatePlannedPayout(mock.Anything, ok.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, plan port.PayoutPlanner) (*domain.Payout, error) {
			return plan(domain.Funding{ConfirmedTotal: decimal.RequireFromString("80.00"), InvestorCount: 2, InvestmentCount: 3}), nil
		})
	users.EXPECT().GetUser(mock.Anything, owner.ID).Return(&owner, nil).Once()
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Kind == domain.NotifyPayoutScheduled && n.Data["payout_amount"] == "80.00"
		})).
		Return(nil).Once()

	uc := NewPayoutUseCase(mocks.NewMockCampaignRepository(t), payouts, users, notifier, events, testClock, "PLN", testLogger)
	created, err := uc.GenerateDuePayouts(context.Background(), admin, testNow)
	require.Len(t, created, 1)
	assert.Equal(t, ok.ID, created[0].CampaignID)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayout)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestGenerateDuePayouts_RequiresPayoutManager(t *testing.T) {
	uc := NewPayoutUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockPayoutRepository(t), mocks.NewMockUserRepository(t),
		mocks.NewMockNotifier(t), mocks.NewMockEventPublisher(t), testClock, "PLN", testLogger)

	_, err := uc.GenerateDuePayouts(context.Background(), domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}, testNow)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.GenerateDuePayouts(context.Background(), domain.Principal{}, testNow)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSetPayoutStatus_NotifiesByTargetState(t *testing.T) {
	for _, to := range []domain.PayoutStatus{domain.PayoutPaid, domain.PayoutFailed} {
		t.Run(string(to), func(t *testing.T) {
			l := newMemLedger()
			owner := l.addUser(domain.RoleEntrepreneur)
			investor := l.addUser(domain.RoleInvestor)
			c := l.addCampaign(owner.ID, domain.CampaignSuccessful, testNow.AddDate(0, -2, 0))
			l.addInvestment(investor.ID, c.ID, "64.00", domain.InvestmentCompleted, domain.TransactionSuccessful)

			notifier := &countingNotifier{}
			uc := newLedgerPayouts(l, notifier)
			created, err := uc.GenerateDuePayouts(context.Background(), admin, testNow)
			require.NoError(t, err)
			require.Len(t, created, 1)

			got, err := uc.SetPayoutStatus(context.Background(), admin, created[0].ID, to, "bank reference 77")
			require.NoError(t, err)
			assert.Equal(t, to, got.Status)
			require.NotNil(t, got.TransactionID)
			assert.Equal(t, 1, notifier.count(domain.PayoutNotificationKind(to)))
			last := notifier.sent[len(notifier.sent)-1]
			assert.Equal(t, "bank reference 77", last.Data["note"])
			assert.Equal(t, c.Title, last.Data["campaign_title"])

			_, err = uc.SetPayoutStatus(context.Background(), admin, created[0].ID, domain.PayoutPaid, "")
			assert.ErrorIs(t, err, domain.ErrIneligibleState)
			assert.Len(t, notifier.sent, 2)
		})
	}
}

func TestSetPayoutStatus_Rejects(t *testing.T) {
	uc := NewPayoutUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockPayoutRepository(t), mocks.NewMockUserRepository(t),
		mocks.NewMockNotifier(t), mocks.NewMockEventPublisher(t), testClock, "PLN", testLogger)

	_, err := uc.SetPayoutStatus(context.Background(), admin, uuid.New(), domain.PayoutPending, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	investor := domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}
	_, err = uc.SetPayoutStatus(context.Background(), investor, uuid.New(), domain.PayoutPaid, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListMyPayouts_ScopedToOwner(t *testing.T) {
	payouts := mocks.NewMockPayoutRepository(t)
	owner := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	payouts.EXPECT().
		ListPayouts(mock.Anything, mock.MatchedBy(func(q port.PayoutQuery) bool {
			return q.OwnerID != nil && *q.OwnerID == owner.UserID && q.CampaignID == nil
		})).
		Return([]domain.Payout{{ID: uuid.New()}}, nil)

	uc := NewPayoutUseCase(mocks.NewMockCampaignRepository(t), payouts, mocks.NewMockUserRepository(t),
		mocks.NewMockNotifier(t), mocks.NewMockEventPublisher(t), testClock, "PLN", testLogger)
	got, err := uc.ListMyPayouts(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.ListPayouts(context.Background(), owner, port.Page{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
