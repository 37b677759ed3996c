package mail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/adapter/mail"
	"crowdoo/internal/core/domain"
)

type recordingSender struct {
	to, subject, body string
	err               error
}

func (s *recordingSender) Send(_ context.Context, to, subject, body string) error {
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

func TestDefaultTemplates_CoverEveryKind(t *testing.T) {
	tpl, err := mail.DefaultTemplates()
	require.NoError(t, err)

	kinds := []domain.NotificationKind{
		domain.NotifyInvestmentCompleted,
		domain.NotifyInvestmentRefunded,
		domain.NotifyPayoutScheduled,
		domain.NotifyPayoutPaid,
		domain.NotifyPayoutFailed,
	}
	for _, k := range kinds {
		subject, body, err := tpl.Render(domain.Notification{Kind: k, Data: map[string]string{"campaign_title": "Solar"}})
		require.NoError(t, err, k)
		assert.Contains(t, subject, "Solar")
		assert.NotEmpty(t, body)
	}
}

func TestNotifier_RendersPayoutPaid(t *testing.T) {
	tpl, err := mail.DefaultTemplates()
	require.NoError(t, err)
	s := &recordingSender{}
	n := mail.NewNotifier(tpl, s)

	err = n.Notify(context.Background(), domain.Notification{
		Kind:      domain.NotifyPayoutPaid,
		Recipient: "founder@example.com",
		Data: map[string]string{
			"campaign_title": "Solar roof",
			"payout_amount":  "500.00",
			"payout_id":      "p-1",
			"note":           "wire sent",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "founder@example.com", s.to)
	assert.Equal(t, "Payout for Solar roof has been sent", s.subject)
	assert.Contains(t, s.body, "500.00")
	assert.Contains(t, s.body, "Note: wire sent")
}

func TestNotifier_Errors(t *testing.T) {
	tpl, err := mail.ParseTemplates([]byte("payout_paid:\n  subject: hi\n  body: there\n"))
	require.NoError(t, err)
	s := &recordingSender{err: errors.New("relay down")}
	n := mail.NewNotifier(tpl, s)

	assert.Error(t, n.Notify(context.Background(), domain.Notification{Kind: domain.NotifyPayoutPaid}))
	assert.Error(t, n.Notify(context.Background(), domain.Notification{Kind: domain.NotifyPayoutFailed, Recipient: "a@b.c"}))
	assert.EqualError(t, n.Notify(context.Background(), domain.Notification{Kind: domain.NotifyPayoutPaid, Recipient: "a@b.c"}), "relay down")
}
