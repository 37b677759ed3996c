package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crowdoo/internal/core/domain"
)

func TestPayoutDate(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		warsaw = time.FixedZone("CET", 3600)
	}

	tests := []struct {
		name     string
		deadline time.Time
		want     time.Time
	}{
		{
			name:     "mid month",
			deadline: time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC),
			want:     time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			deadline: time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last day of january",
			deadline: time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC),
			want:     time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "deadline after the 10th",
			deadline: time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "keeps location",
			deadline: time.Date(2025, time.November, 1, 12, 0, 0, 0, warsaw),
			want:     time.Date(2025, time.December, 10, 0, 0, 0, 0, warsaw),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PayoutDate(tt.deadline)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, 10, got.Day())
			assert.True(t, got.After(tt.deadline))
		})
	}
}

func TestPayoutStatus_CanTransition(t *testing.T) {
	statuses := []domain.PayoutStatus{domain.PayoutPending, domain.PayoutPaid, domain.PayoutFailed}
	allowed := map[[2]domain.PayoutStatus]bool{
		{domain.PayoutPending, domain.PayoutPaid}:   true,
		{domain.PayoutPending, domain.PayoutFailed}: true,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, allowed[[2]domain.PayoutStatus{from, to}], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestPayoutNotificationKind(t *testing.T) {
	assert.Equal(t, domain.NotifyPayoutPaid, domain.PayoutNotificationKind(domain.PayoutPaid))
	assert.Equal(t, domain.NotifyPayoutFailed, domain.PayoutNotificationKind(domain.PayoutFailed))
	assert.Equal(t, domain.NotifyPayoutScheduled, domain.PayoutNotificationKind(domain.PayoutPending))
}
