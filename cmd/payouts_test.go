package main

import (
	"bytes"
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

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port/mocks"
)

func TestParseAsOf(t *testing.T) {
	got, err := parseAsOf("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseAsOf("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseAsOf("2025-01-15T08:30:00+01:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 15, 7, 30, 0, 0, time.UTC)))

	_, err = parseAsOf("yesterday")
	assert.Error(t, err)
}

func TestRunDuePayouts_UsesSystemPrincipalAndNow(t *testing.T) {
	payouts := mocks.NewMockPayoutUseCase(t)
	payouts.EXPECT().GenerateDuePayouts(mock.Anything, domain.SystemPrincipal(), time.Time{}).
		Return(nil, errors.New("db down")).Once()

	runDuePayouts(context.Background(), payouts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPrintPayouts(t *testing.T) {
	var buf bytes.Buffer
	printPayouts(&buf, []domain.Payout{{
		ID:           uuid.New(),
		CampaignID:   uuid.New(),
		PayoutAmount: decimal.RequireFromString("500"),
		PayoutDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}})
	assert.Contains(t, buf.String(), "amount=500.00  date=2025-01-10")
	assert.Contains(t, buf.String(), "1 payout(s) created")
}
