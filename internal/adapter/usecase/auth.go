package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"crowdoo/internal/config/configs"
	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

const (
	minPasswordLength = 8
	// bcrypt only reads the first 72 bytes of a password.
	maxPasswordBytes = 72
)

// AuthUseCase registers accounts and exchanges credentials for bearer
// tokens. Repeated failed logins lock the account for a while.
type AuthUseCase struct {
	users   port.UserRepository
	tokens  port.TokenIssuer
	lockout port.LockoutStore
	clock   port.Clock
	log     *slog.Logger

	threshold  int
	window     time.Duration
	bcryptCost int
}

var _ port.AuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	cfg configs.Auth,
	users port.UserRepository,
	tokens port.TokenIssuer,
	lockout port.LockoutStore,
	clock port.Clock,
	log *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		tokens:     tokens,
		lockout:    lockout,
		clock:      clock,
		log:        log,
		threshold:  cfg.LockoutThreshold,
		window:     cfg.LockoutWindow,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register creates an investor or entrepreneur account. Admin accounts are
// only created by the seed command.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*domain.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must have at least %d characters: %w", minPasswordLength, domain.ErrInvalidInput)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("password must not exceed %d bytes: %w", maxPasswordBytes, domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleInvestor
	}
	if role != domain.RoleInvestor && role != domain.RoleEntrepreneur {
		return nil, fmt.Errorf("role %q: %w", role, domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err = u.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()), slog.String("role", string(role)))
	return user, nil
}

// Login checks credentials and issues a token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.LoginResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	now := u.clock.Now()

	state, err := u.lockout.Get(ctx, email)
	if err != nil {
		u.log.ErrorContext(ctx, "read login lockout", slog.Any("error", err))
	} else if state.LockedUntil != nil && now.Before(*state.LockedUntil) {
		return nil, domain.ErrLockedOut
	}

	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, u.recordFailure(ctx, email, now)
	}

	if err = u.lockout.Clear(ctx, email); err != nil {
		u.log.ErrorContext(ctx, "clear login lockout", slog.Any("error", err))
	}
	if err = u.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		u.log.WarnContext(ctx, "update last login", slog.String("user_id", user.ID.String()), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	token, expires, err := u.tokens.Issue(user.Principal(), now)
	if err != nil {
		return nil, err
	}
	return &port.LoginResult{Token: token, ExpiresAt: expires, User: *user}, nil
}

func (u *AuthUseCase) recordFailure(ctx context.Context, email string, now time.Time) error {
	state, err := u.lockout.RecordFailure(ctx, email, now, u.threshold, u.window)
	if err != nil {
		u.log.ErrorContext(ctx, "record failed login", slog.Any("error", err))
		return domain.ErrInvalidCredentials
	}
	if state.LockedUntil != nil {
		u.log.WarnContext(ctx, "account locked after failed logins",
			slog.Int("failed_count", state.FailedCount),
			slog.Time("locked_until", *state.LockedUntil))
		return errors.Join(domain.ErrInvalidCredentials, domain.ErrLockedOut)
	}
	return domain.ErrInvalidCredentials
}

// Authenticate resolves a bearer token into a principal.
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return u.tokens.Parse(token)
}

// CurrentUser returns the account behind an authenticated principal.
func (u *AuthUseCase) CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	user, err := u.users.GetUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", p.UserID, domain.ErrNotFound)
	}
	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("email %q: %w", raw, domain.ErrInvalidInput)
	}
	return email, nil
}
