package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/adapter/gateway"
	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
	"crowdoo/internal/core/port/mocks"
)

var (
	testNow    = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	testClock  = port.ClockFunc(func() time.Time { return testNow })
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testGW     = configs.Gateway{MerchantID: "1010", SecurityCode: "secret", Currency: "PLN", ConfirmedCodes: []string{"TRUE"}, FeePercent: decimal.NewFromInt(1)}
)

func newTestVerifier(t *testing.T) *gateway.Verifier {
	t.Helper()
	v, err := gateway.NewVerifier(testGW.MerchantID, testGW.SecurityCode, gateway.AlgorithmMD5)
	require.NoError(t, err)
	return v
}

func notificationFor(v *gateway.Verifier, inv domain.Investment, status, paid string) port.GatewayNotification {
	n := port.GatewayNotification{
		MerchantID:    testGW.MerchantID,
		TransactionID: "TR-" + inv.ID.String()[:8],
		CRC:           inv.ID.String(),
		Amount:        inv.Amount.StringFixed(2),
		Paid:          paid,
		Status:        status,
		Error:         "none",
	}
	n.Signature = v.Sign(n.MerchantID, n.TransactionID, n.Amount, n.CRC)
	return n
}

func newLedgerReconciliation(t *testing.T, l *memLedger, notifier port.Notifier) *ReconciliationUseCase {
	return NewReconciliationUseCase(testGW, newTestVerifier(t), l, l, l, l, notifier, discardEvents{}, testClock, testLogger)
}

// A confirmed 500.00 payment completes the investment, adds exactly 500.00
// to confirmed funding and sends one success notification.
func TestReconciliation_ConfirmedPaymentScenario(t *testing.T) {
	l := newMemLedger()
	owner := l.addUser(domain.RoleEntrepreneur)
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(owner.ID, domain.CampaignActive, testNow.Add(24*time.Hour))
	l.addInvestment(investor.ID, c.ID, "120.00", domain.InvestmentCompleted, domain.TransactionSuccessful)
	inv := l.addInvestment(investor.ID, c.ID, "500.00", domain.InvestmentPending, domain.TransactionPending)

	before, err := l.CampaignFunding(context.Background(), c.ID)
	require.NoError(t, err)

	notifier := &countingNotifier{}
	uc := newLedgerReconciliation(t, l, notifier)

	res, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(newTestVerifier(t), inv, "TRUE", "500.00"))
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeApplied, res.Outcome)
	assert.Equal(t, domain.InvestmentCompleted, res.InvestmentStatus)
	assert.Equal(t, domain.TransactionSuccessful, res.TransactionStatus)

	gotInv, gotTx := l.snapshot(inv.ID)
	assert.Equal(t, domain.InvestmentCompleted, gotInv.Status)
	assert.Equal(t, domain.TransactionSuccessful, gotTx.Status)
	assert.Equal(t, "TR-"+inv.ID.String()[:8], gotTx.GatewayTransactionID)

	after, err := l.CampaignFunding(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, after.ConfirmedTotal.Sub(before.ConfirmedTotal).Equal(decimal.RequireFromString("500.00")))

	require.Equal(t, 1, notifier.count(domain.NotifyInvestmentCompleted))
	assert.Equal(t, investor.Email, notifier.sent[0].Recipient)
	assert.Equal(t, "500.00", notifier.sent[0].Data["amount"])
}

// Redelivering the same notification is a no-op that still succeeds.
func TestReconciliation_DuplicateDeliveryNotifiesOnce(t *testing.T) {
	l := newMemLedger()
	owner := l.addUser(domain.RoleEntrepreneur)
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(owner.ID, domain.CampaignActive, testNow.Add(time.Hour))
	inv := l.addInvestment(investor.ID, c.ID, "75.50", domain.InvestmentPending, domain.TransactionPending)

	notifier := &countingNotifier{}
	uc := newLedgerReconciliation(t, l, notifier)
	n := notificationFor(newTestVerifier(t), inv, "TRUE", "75.50")

	first, err := uc.ApplyGatewayNotification(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeApplied, first.Outcome)
	_, txAfterFirst := l.snapshot(inv.ID)

	second, err := uc.ApplyGatewayNotification(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeAlreadyProcessed, second.Outcome)
	assert.Equal(t, domain.TransactionSuccessful, second.TransactionStatus)

	_, txAfterSecond := l.snapshot(inv.ID)
	assert.Equal(t, txAfterFirst, txAfterSecond)
	assert.Len(t, notifier.sent, 1)
}

// An unreadable paid amount is malformed for a pending investment but a
// redelivery for a settled one is still acknowledged.
func TestReconciliation_UnreadablePaidAmount(t *testing.T) {
	l := newMemLedger()
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(uuid.New(), domain.CampaignActive, testNow.Add(time.Hour))
	inv := l.addInvestment(investor.ID, c.ID, "40.00", domain.InvestmentPending, domain.TransactionPending)

	notifier := &countingNotifier{}
	uc := newLedgerReconciliation(t, l, notifier)
	v := newTestVerifier(t)

	_, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(v, inv, "TRUE", "forty"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	gotInv, gotTx := l.snapshot(inv.ID)
	assert.Equal(t, domain.InvestmentPending, gotInv.Status)
	assert.Equal(t, domain.TransactionPending, gotTx.Status)

	_, err = uc.ApplyGatewayNotification(context.Background(), notificationFor(v, inv, "TRUE", "40.00"))
	require.NoError(t, err)

	res, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(v, inv, "TRUE", "forty"))
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeAlreadyProcessed, res.Outcome)
	assert.Equal(t, domain.TransactionSuccessful, res.TransactionStatus)
	assert.Len(t, notifier.sent, 1)
}

// A late failure notice cannot undo a confirmed payment.
func TestReconciliation_OutOfOrderFailureIgnored(t *testing.T) {
	l := newMemLedger()
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(uuid.New(), domain.CampaignActive, testNow.Add(time.Hour))
	inv := l.addInvestment(investor.ID, c.ID, "10.00", domain.InvestmentPending, domain.TransactionPending)

	notifier := &countingNotifier{}
	uc := newLedgerReconciliation(t, l, notifier)
	v := newTestVerifier(t)

	_, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(v, inv, "TRUE", "10.00"))
	require.NoError(t, err)
	res, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(v, inv, "FALSE", "0.00"))
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeAlreadyProcessed, res.Outcome)

	gotInv, _ := l.snapshot(inv.ID)
	assert.Equal(t, domain.InvestmentCompleted, gotInv.Status)
	assert.Equal(t, 0, notifier.count(domain.NotifyInvestmentRefunded))
}

func TestReconciliation_TamperedSignatureNeverMutates(t *testing.T) {
	l := newMemLedger()
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(uuid.New(), domain.CampaignActive, testNow.Add(time.Hour))
	inv := l.addInvestment(investor.ID, c.ID, "500.00", domain.InvestmentPending, domain.TransactionPending)

	notifier := &countingNotifier{}
	uc := newLedgerReconciliation(t, l, notifier)
	v := newTestVerifier(t)

	tampered := []func(n *port.GatewayNotification){
		func(n *port.GatewayNotification) { n.Signature = "0123456789abcdef0123456789abcdef" },
		func(n *port.GatewayNotification) { n.Amount = "5.00" },
		func(n *port.GatewayNotification) { n.CRC = uuid.NewString() },
		func(n *port.GatewayNotification) { n.Signature = "" },
	}
	for _, tamper := range tampered {
		n := notificationFor(v, inv, "TRUE", "500.00")
		tamper(&n)
		_, err := uc.ApplyGatewayNotification(context.Background(), n)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	}

	gotInv, gotTx := l.snapshot(inv.ID)
	assert.Equal(t, domain.InvestmentPending, gotInv.Status)
	assert.Equal(t, domain.TransactionPending, gotTx.Status)
	assert.Empty(t, notifier.sent)
}

func TestReconciliation_FailureCodesRefund(t *testing.T) {
	cases := []struct {
		name, status, paid, wantDesc string
	}{
		{name: "provider rejected", status: "FALSE", paid: "0.00", wantDesc: "FALSE"},
		{name: "underpaid", status: "TRUE", paid: "499.99", wantDesc: "TRUE: paid 499.99 of 500.00"},
		{name: "chargeback", status: "CHARGEBACK", paid: "500.00", wantDesc: "CHARGEBACK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newMemLedger()
			investor := l.addUser(domain.RoleInvestor)
			c := l.addCampaign(uuid.New(), domain.CampaignActive, testNow.Add(time.Hour))
			inv := l.addInvestment(investor.ID, c.ID, "500.00", domain.InvestmentPending, domain.TransactionPending)

			notifier := &countingNotifier{}
			uc := newLedgerReconciliation(t, l, notifier)

			n := notificationFor(newTestVerifier(t), inv, tc.status, tc.paid)
			res, err := uc.ApplyGatewayNotification(context.Background(), n)
			require.NoError(t, err)
			assert.Equal(t, domain.InvestmentRefunded, res.InvestmentStatus)
			assert.Equal(t, domain.TransactionFailed, res.TransactionStatus)

			_, tx := l.snapshot(inv.ID)
			assert.Equal(t, tc.wantDesc, tx.StatusDescription)
			assert.Equal(t, 1, notifier.count(domain.NotifyInvestmentRefunded))

			f, err := l.CampaignFunding(context.Background(), c.ID)
			require.NoError(t, err)
			assert.True(t, f.ConfirmedTotal.IsZero())
		})
	}
}

func TestReconciliation_UnknownInvestment(t *testing.T) {
	l := newMemLedger()
	uc := newLedgerReconciliation(t, l, &countingNotifier{})
	v := newTestVerifier(t)

	ghost := domain.Investment{ID: uuid.New(), Amount: decimal.NewFromInt(5)}
	_, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(v, ghost, "TRUE", "5.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n := port.GatewayNotification{MerchantID: testGW.MerchantID, TransactionID: "TR-1", CRC: "not-a-uuid", Amount: "5.00", Status: "TRUE"}
	n.Signature = v.Sign(n.MerchantID, n.TransactionID, n.Amount, n.CRC)
	_, err = uc.ApplyGatewayNotification(context.Background(), n)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconciliation_NotifierFailureKeepsSettlement(t *testing.T) {
	l := newMemLedger()
	investor := l.addUser(domain.RoleInvestor)
	c := l.addCampaign(uuid.New(), domain.CampaignActive, testNow.Add(time.Hour))
	inv := l.addInvestment(investor.ID, c.ID, "42.00", domain.InvestmentPending, domain.TransactionPending)

	notifier := &countingNotifier{err: errors.New("smtp down")}
	uc := newLedgerReconciliation(t, l, notifier)

	res, err := uc.ApplyGatewayNotification(context.Background(), notificationFor(newTestVerifier(t), inv, "TRUE", "42.00"))
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeApplied, res.Outcome)
	gotInv, _ := l.snapshot(inv.ID)
	assert.Equal(t, domain.InvestmentCompleted, gotInv.Status)
}

// Integrity errors from the ledger are surfaced, not swallowed.
func TestReconciliation_DataIntegrityPropagates(t *testing.T) {
	verifier := mocks.NewMockNotificationVerifier(t)
	ledger := mocks.NewMockReconciliationRepository(t)
	investments := mocks.NewMockInvestmentRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	users := mocks.NewMockUserRepository(t)
	notifier := mocks.NewMockNotifier(t)
	events := mocks.NewMockEventPublisher(t)

	inv := domain.Investment{ID: uuid.New(), Amount: decimal.RequireFromString("500.00"), Status: domain.InvestmentPending}
	n := port.GatewayNotification{CRC: inv.ID.String(), TransactionID: "TR-9", Amount: "500.00", Paid: "500.00", Status: "TRUE"}

	verifier.EXPECT().Verify(n).Return(nil)
	investments.EXPECT().GetInvestment(mock.Anything, inv.ID).Return(&inv, nil)
	ledger.EXPECT().
		SettleInvestment(mock.Anything, mock.MatchedBy(func(s port.Settlement) bool {
			return s.InvestmentID == inv.ID &&
				s.TransactionStatus == domain.TransactionSuccessful &&
				s.InvestmentStatus == domain.InvestmentCompleted &&
				s.GatewayTransactionID == "TR-9" &&
				s.SettledAt.Equal(testNow)
		})).
		Return(nil, domain.ErrDataIntegrity)

	uc := NewReconciliationUseCase(testGW, verifier, ledger, investments, campaigns, users, notifier, events, testClock, testLogger)
	_, err := uc.ApplyGatewayNotification(context.Background(), n)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestReconciliation_PublishesEventOnApply(t *testing.T) {
	verifier := mocks.NewMockNotificationVerifier(t)
	ledger := mocks.NewMockReconciliationRepository(t)
	investments := mocks.NewMockInvestmentRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	users := mocks.NewMockUserRepository(t)
	notifier := mocks.NewMockNotifier(t)
	events := mocks.NewMockEventPublisher(t)

	investor := domain.User{ID: uuid.New(), Email: "ann@example.com"}
	campaign := domain.Campaign{ID: uuid.New(), Title: "Solar roof"}
	txID := uuid.New()
	inv := domain.Investment{ID: uuid.New(), InvestorID: investor.ID, CampaignID: campaign.ID, Amount: decimal.RequireFromString("500.00"), Status: domain.InvestmentPending, TransactionID: &txID}
	n := port.GatewayNotification{CRC: inv.ID.String(), TransactionID: "TR-1", Amount: "500.00", Paid: "500.00", Status: "true"}

	settled := inv
	settled.Status = domain.InvestmentCompleted
	verifier.EXPECT().Verify(n).Return(nil)
	investments.EXPECT().GetInvestment(mock.Anything, inv.ID).Return(&inv, nil)
	ledger.EXPECT().SettleInvestment(mock.Anything, mock.Anything).Return(&port.SettlementResult{
		Applied:     true,
		Investment:  settled,
		Transaction: domain.Transaction{ID: txID, Status: domain.TransactionSuccessful, Currency: "PLN", UpdatedAt: testNow},
	}, nil)
	users.EXPECT().GetUser(mock.Anything, investor.ID).Return(&investor, nil)
	campaigns.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)
	events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventInvestmentCompleted && e.Key == inv.ID.String()
		})).
		Return(nil).Once()
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(msg domain.Notification) bool {
			return msg.Kind == domain.NotifyInvestmentCompleted &&
				msg.Recipient == "ann@example.com" &&
				msg.Data["campaign_title"] == "Solar roof"
		})).
		Return(nil).Once()

	uc := NewReconciliationUseCase(testGW, verifier, ledger, investments, campaigns, users, notifier, events, testClock, testLogger)
	res, err := uc.ApplyGatewayNotification(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeApplied, res.Outcome)
}
