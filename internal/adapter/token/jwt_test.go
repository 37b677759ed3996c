package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdoo/internal/adapter/token"
	"crowdoo/internal/core/domain"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	iss, err := token.NewJWTIssuer("secret", time.Hour)
	require.NoError(t, err)

	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	now := time.Now()
	raw, exp, err := iss.Issue(p, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	got, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	iss, err := token.NewJWTIssuer("secret", time.Hour)
	require.NoError(t, err)
	other, err := token.NewJWTIssuer("other", time.Hour)
	require.NoError(t, err)

	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleInvestor}

	expired, _, err := iss.Issue(p, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = iss.Parse(expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	foreign, _, err := other.Issue(p, time.Now())
	require.NoError(t, err)
	_, err = iss.Parse(foreign)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = iss.Parse("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := token.NewJWTIssuer("", time.Hour)
	assert.Error(t, err)
}
