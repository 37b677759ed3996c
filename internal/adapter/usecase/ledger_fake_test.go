package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// memLedger is an in-memory ledger with the same status-guarded write
// rules as the Postgres store. Embedded interfaces cover methods the tests
// never call.
type memLedger struct {
	port.InvestmentRepository
	port.CampaignRepository
	port.UserRepository

	mu           sync.Mutex
	campaigns    map[uuid.UUID]domain.Campaign
	investments  map[uuid.UUID]domain.Investment
	transactions map[uuid.UUID]domain.Transaction
	payouts      map[uuid.UUID]domain.Payout
	users        map[uuid.UUID]domain.User
}

func newMemLedger() *memLedger {
	return &memLedger{
		campaigns:    map[uuid.UUID]domain.Campaign{},
		investments:  map[uuid.UUID]domain.Investment{},
		transactions: map[uuid.UUID]domain.Transaction{},
		payouts:      map[uuid.UUID]domain.Payout{},
		users:        map[uuid.UUID]domain.User{},
	}
}

func (l *memLedger) addUser(role domain.Role) domain.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	u := domain.User{ID: uuid.New(), Email: uuid.NewString()[:8] + "@example.com", Role: role}
	l.users[u.ID] = u
	return u
}

func (l *memLedger) addCampaign(owner uuid.UUID, status domain.CampaignStatus, deadline time.Time) domain.Campaign {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := domain.Campaign{
		ID: uuid.New(), OwnerID: owner, Title: "Campaign " + deadline.Format(time.DateOnly),
		GoalAmount: decimal.NewFromInt(1000), Deadline: deadline, Status: status,
	}
	l.campaigns[c.ID] = c
	return c
}

// addInvestment stores an investment whose transaction is in txStatus.
func (l *memLedger) addInvestment(investor, campaign uuid.UUID, amount string, status domain.InvestmentStatus, txStatus domain.TransactionStatus) domain.Investment {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx := domain.Transaction{
		ID: uuid.New(), Amount: decimal.RequireFromString(amount), Currency: "PLN",
		Type: domain.TransactionDeposit, Status: txStatus,
	}
	l.transactions[tx.ID] = tx
	inv := domain.Investment{
		ID: uuid.New(), InvestorID: investor, CampaignID: campaign,
		Amount: tx.Amount, Status: status, TransactionID: &tx.ID,
	}
	l.investments[inv.ID] = inv
	return inv
}

func (l *memLedger) snapshot(id uuid.UUID) (domain.Investment, domain.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	inv := l.investments[id]
	return inv, l.transactions[*inv.TransactionID]
}

func (l *memLedger) GetInvestment(_ context.Context, id uuid.UUID) (*domain.Investment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	inv, ok := l.investments[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (l *memLedger) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.campaigns[id]
	if !ok {
		return nil, nil
	}
	c.CurrentAmount = l.funding(id).ConfirmedTotal
	return &c, nil
}

func (l *memLedger) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	u, ok := l.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (l *memLedger) SettleInvestment(_ context.Context, s port.Settlement) (*port.SettlementResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	inv, ok := l.investments[s.InvestmentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if inv.TransactionID == nil {
		return nil, domain.ErrDataIntegrity
	}
	tx, ok := l.transactions[*inv.TransactionID]
	if !ok {
		return nil, domain.ErrDataIntegrity
	}
	if tx.Status != domain.TransactionPending {
		return &port.SettlementResult{Applied: false, Investment: inv, Transaction: tx}, nil
	}
	tx.Status = s.TransactionStatus
	tx.StatusDescription = s.StatusDescription
	tx.GatewayTransactionID = s.GatewayTransactionID
	tx.UpdatedAt = s.SettledAt
	inv.Status = s.InvestmentStatus
	l.transactions[tx.ID] = tx
	l.investments[inv.ID] = inv
	return &port.SettlementResult{Applied: true, Investment: inv, Transaction: tx}, nil
}

func (l *memLedger) funding(campaignID uuid.UUID) domain.Funding {
	f := domain.Funding{ConfirmedTotal: decimal.Zero}
	investors := map[uuid.UUID]struct{}{}
	for _, inv := range l.investments {
		if inv.CampaignID != campaignID || inv.Status != domain.InvestmentCompleted || inv.TransactionID == nil {
			continue
		}
		if l.transactions[*inv.TransactionID].Status != domain.TransactionSuccessful {
			continue
		}
		f.ConfirmedTotal = f.ConfirmedTotal.Add(inv.Amount)
		f.InvestmentCount++
		investors[inv.InvestorID] = struct{}{}
	}
	f.InvestorCount = int64(len(investors))
	return f
}

func (l *memLedger) CampaignFunding(_ context.Context, campaignID uuid.UUID) (domain.Funding, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.funding(campaignID), nil
}

func (l *memLedger) ListPayoutCandidates(_ context.Context, asOf time.Time) ([]domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	paid := map[uuid.UUID]struct{}{}
	for _, p := range l.payouts {
		paid[p.CampaignID] = struct{}{}
	}
	var out []domain.Campaign
	for _, c := range l.campaigns {
		if _, ok := paid[c.ID]; ok {
			continue
		}
		if c.Status == domain.CampaignSuccessful && c.Deadline.Before(asOf) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *memLedger) CreatePlannedPayout(_ context.Context, campaignID uuid.UUID, plan port.PayoutPlanner) (*domain.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := plan(l.funding(campaignID))
	if p == nil {
		return nil, nil
	}
	for _, existing := range l.payouts {
		if existing.CampaignID == campaignID {
			return nil, fmt.Errorf("campaign %s: %w", campaignID, domain.ErrDuplicatePayout)
		}
	}
	p.CampaignID = campaignID
	l.payouts[p.ID] = *p
	return p, nil
}

func (l *memLedger) GetPayout(_ context.Context, id uuid.UUID) (*domain.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.payouts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (l *memLedger) ListPayouts(context.Context, port.PayoutQuery) ([]domain.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Payout, 0, len(l.payouts))
	for _, p := range l.payouts {
		out = append(out, p)
	}
	return out, nil
}

func (l *memLedger) TransitionPayout(_ context.Context, t port.PayoutTransition) (*domain.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.payouts[t.PayoutID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !p.Status.CanTransition(t.To) {
		return nil, domain.ErrIneligibleState
	}
	txID := uuid.New()
	l.transactions[txID] = domain.Transaction{ID: txID, Amount: p.PayoutAmount, Type: domain.TransactionPayout}
	p.Status, p.TransactionID, p.UpdatedAt = t.To, &txID, t.At
	l.payouts[p.ID] = p
	return &p, nil
}

// countingNotifier records every notification it is asked to send.
type countingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
	err  error
}

func (n *countingNotifier) Notify(_ context.Context, msg domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *countingNotifier) count(kind domain.NotificationKind) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.sent {
		if m.Kind == kind {
			c++
		}
	}
	return c
}

type discardEvents struct{}

func (discardEvents) Publish(context.Context, domain.Event) error { return nil }
