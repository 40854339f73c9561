// Package service holds the business logic between the HTTP layer and
// the store. Services return sentinel errors; handlers translate them
// into status codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/metrics"
	"github.com/cern1991/rugby-league-central/internal/store"
	"github.com/cern1991/rugby-league-central/internal/theme"
	"github.com/cern1991/rugby-league-central/pkg/cryptox"
	"github.com/cern1991/rugby-league-central/pkg/idx"
	"github.com/cern1991/rugby-league-central/pkg/jwtx"
)

const (
	defaultSessionTTL    = 7 * 24 * time.Hour
	challengeTTL         = 5 * time.Minute
	maxChallengeAttempts = 5
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrChallengeExpired   = errors.New("two-factor challenge expired")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService implements registration, login, two-factor verification
// and session lifecycle.
type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer

	// SessionTTL bounds the server-side session row. It must match the
	// Signer's TTL or sessions die when the shorter of the two expires.
	// Zero falls back to a week.
	SessionTTL time.Duration
}

// Register creates an account and logs it straight in: the caller gets
// a session token alongside the new user. The email is stored as given
// but is unique case-insensitively; a duplicate in any casing fails
// with ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.LoginResult, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:                 idx.New().String(),
		Email:              strings.TrimSpace(email),
		PasswordHash:       hash,
		SubscriptionStatus: domain.SubscriptionFree,
		FavoriteTeams:      []string{},
		Theme:              string(theme.Default),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.LoginResult{}, ErrEmailTaken
		}
		return domain.LoginResult{}, fmt.Errorf("create user: %w", err)
	}

	sessionToken, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return domain.LoginResult{User: &user, SessionToken: sessionToken}, nil
}

// Login verifies credentials. Accounts without 2FA get a session
// immediately; 2FA accounts get an opaque challenge token to complete
// via VerifyTwoFactor. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return domain.LoginResult{}, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled() {
		token, err := s.issueChallenge(ctx, user.ID)
		if err != nil {
			return domain.LoginResult{}, err
		}
		metrics.LoginsTotal.WithLabelValues("two_factor").Inc()
		return domain.LoginResult{
			User:              &user,
			TwoFactorRequired: true,
			ChallengeToken:    token,
		}, nil
	}

	sessionToken, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return domain.LoginResult{User: &user, SessionToken: sessionToken}, nil
}

// VerifyTwoFactor completes a pending login challenge with a TOTP code.
// The code is accepted within one 30-second step of clock skew. The
// challenge is single-use: it is consumed on success and after too many
// failed attempts.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, challengeToken, code string) (domain.LoginResult, error) {
	hash := cryptox.FingerprintToken(challengeToken)

	challenge, err := s.Store.LoginChallenges().GetChallengeByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LoginResult{}, ErrChallengeExpired
		}
		return domain.LoginResult{}, fmt.Errorf("lookup challenge: %w", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, challenge.UserID)
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if user.TOTPSecret == nil {
		return domain.LoginResult{}, ErrChallengeExpired
	}

	// totp.Validate allows one period of skew either side.
	if !totp.Validate(code, *user.TOTPSecret) {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		updated, incErr := s.Store.LoginChallenges().IncrementChallengeAttempts(ctx, challenge.ID)
		if incErr == nil && updated.Attempts >= maxChallengeAttempts {
			_ = s.Store.LoginChallenges().DeleteChallenge(ctx, challenge.ID)
			return domain.LoginResult{}, ErrChallengeExpired
		}
		return domain.LoginResult{}, ErrInvalidCode
	}

	if err := s.Store.LoginChallenges().DeleteChallenge(ctx, challenge.ID); err != nil {
		return domain.LoginResult{}, fmt.Errorf("consume challenge: %w", err)
	}

	sessionToken, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return domain.LoginResult{User: &user, SessionToken: sessionToken}, nil
}

// Logout revokes a session. Revoking an already-revoked or unknown
// session succeeds; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().DeleteSession(ctx, sessionID)
}

// SessionActive reports whether a session id still maps to a live,
// unexpired session row. Used by the authn middleware so a revoked
// session dies before its JWT does.
func (s *AuthService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetUser fetches an account by id.
func (s *AuthService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateSubscriptionStatus applies a billing state change. Only the
// billing webhook calls this; users cannot change their own status.
func (s *AuthService) UpdateSubscriptionStatus(ctx context.Context, userID string, status domain.SubscriptionStatus) error {
	if !domain.ValidSubscriptionStatus(status) {
		return fmt.Errorf("unknown subscription status %q", status)
	}
	err := s.Store.Users().UpdateSubscriptionStatus(ctx, userID, status)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *AuthService) issueSession(ctx context.Context, userID string) (string, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	token, err := s.Signer.Sign(userID, session.ID, now)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

func (s *AuthService) issueChallenge(ctx context.Context, userID string) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("generate challenge token: %w", err)
	}

	now := time.Now().UTC()
	challenge := domain.LoginChallenge{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(challengeTTL),
		CreatedAt: now,
	}
	if err := s.Store.LoginChallenges().CreateChallenge(ctx, challenge); err != nil {
		return "", fmt.Errorf("create challenge: %w", err)
	}
	return token, nil
}
