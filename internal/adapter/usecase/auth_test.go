package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
	"crowdoo/internal/core/port/mocks"
)

type authMocks struct {
	users   *mocks.MockUserRepository
	tokens  *mocks.MockTokenIssuer
	lockout *mocks.MockLockoutStore
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, authMocks) {
	m := authMocks{
		users:   mocks.NewMockUserRepository(t),
		tokens:  mocks.NewMockTokenIssuer(t),
		lockout: mocks.NewMockLockoutStore(t),
	}
	uc := NewAuthUseCase(configs.Auth{LockoutThreshold: 3, LockoutWindow: 15 * time.Minute}, m.users, m.tokens, m.lockout, testClock, testLogger)
	uc.bcryptCost = bcrypt.MinCost
	return uc, m
}

func storedUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: uuid.New(), Email: email, PasswordHash: string(hash), Role: domain.RoleInvestor}
}

func TestRegister(t *testing.T) {
	uc, m := newAuthUseCase(t)
	m.users.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ala@example.com" &&
				u.Role == domain.RoleInvestor &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")) == nil
		})).
		Return(nil)

	u, err := uc.Register(context.Background(), port.RegisterInput{Email: " Ala@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ala@example.com", u.Email)
}

func TestRegister_Rejects(t *testing.T) {
	uc, m := newAuthUseCase(t)

	tests := []struct {
		name string
		in   port.RegisterInput
	}{
		{name: "bad email", in: port.RegisterInput{Email: "not-an-email", Password: "long enough"}},
		{name: "short password", in: port.RegisterInput{Email: "a@example.com", Password: "short"}},
		{name: "long password", in: port.RegisterInput{Email: "a@example.com", Password: strings.Repeat("p", 73)}},
		{name: "admin role", in: port.RegisterInput{Email: "a@example.com", Password: "long enough", Role: domain.RoleAdmin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	m.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(domain.ErrConflict)
	_, err := uc.Register(context.Background(), port.RegisterInput{Email: "taken@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	uc, m := newAuthUseCase(t)
	user := storedUser(t, "ala@example.com", "correct horse")
	expires := testNow.Add(24 * time.Hour)

	m.lockout.EXPECT().Get(mock.Anything, "ala@example.com").Return(port.LockoutState{}, nil)
	m.users.EXPECT().GetUserByEmail(mock.Anything, "ala@example.com").Return(user, nil)
	m.lockout.EXPECT().Clear(mock.Anything, "ala@example.com").Return(nil)
	m.users.EXPECT().TouchLastLogin(mock.Anything, user.ID, testNow).Return(nil)
	m.tokens.EXPECT().Issue(user.Principal(), testNow).Return("signed", expires, nil)

	res, err := uc.Login(context.Background(), "ala@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "signed", res.Token)
	assert.Equal(t, expires, res.ExpiresAt)
	require.NotNil(t, res.User.LastLogin)
	assert.Equal(t, testNow, *res.User.LastLogin)
}

func TestLogin_WrongPasswordRecordsFailure(t *testing.T) {
	uc, m := newAuthUseCase(t)
	user := storedUser(t, "ala@example.com", "correct horse")

	m.lockout.EXPECT().Get(mock.Anything, "ala@example.com").Return(port.LockoutState{}, nil)
	m.users.EXPECT().GetUserByEmail(mock.Anything, "ala@example.com").Return(user, nil)
	m.lockout.EXPECT().RecordFailure(mock.Anything, "ala@example.com", testNow, 3, 15*time.Minute).
		Return(port.LockoutState{FailedCount: 1}, nil).Once()

	_, err := uc.Login(context.Background(), "ala@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrLockedOut)
}

func TestLogin_ThresholdLocksAccount(t *testing.T) {
	uc, m := newAuthUseCase(t)
	until := testNow.Add(15 * time.Minute)

	m.lockout.EXPECT().Get(mock.Anything, "ghost@example.com").Return(port.LockoutState{}, nil)
	m.users.EXPECT().GetUserByEmail(mock.Anything, "ghost@example.com").Return(nil, nil)
	m.lockout.EXPECT().RecordFailure(mock.Anything, "ghost@example.com", testNow, 3, 15*time.Minute).
		Return(port.LockoutState{FailedCount: 3, LockedUntil: &until}, nil)

	_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, err, domain.ErrLockedOut)
}

func TestLogin_LockedAccountSkipsPasswordCheck(t *testing.T) {
	uc, m := newAuthUseCase(t)
	until := testNow.Add(time.Minute)
	m.lockout.EXPECT().Get(mock.Anything, "ala@example.com").Return(port.LockoutState{FailedCount: 3, LockedUntil: &until}, nil)

	_, err := uc.Login(context.Background(), "ala@example.com", "correct horse")
	assert.ErrorIs(t, err, domain.ErrLockedOut)
}

func TestAuthenticate(t *testing.T) {
	uc, m := newAuthUseCase(t)
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleEntrepreneur}
	m.tokens.EXPECT().Parse("signed").Return(p, nil)

	_, err := uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := uc.Authenticate(context.Background(), "signed")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCurrentUser(t *testing.T) {
	uc, m := newAuthUseCase(t)
	user := storedUser(t, "ala@example.com", "correct horse")
	gone := uuid.New()
	m.users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil)
	m.users.EXPECT().GetUser(mock.Anything, gone).Return(nil, nil)

	got, err := uc.CurrentUser(context.Background(), user.Principal())
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = uc.CurrentUser(context.Background(), domain.Principal{UserID: gone, Role: domain.RoleInvestor})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CurrentUser(context.Background(), domain.Principal{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
