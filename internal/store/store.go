// Package store defines the data access contract for the preference
// store. Concrete drivers (sqlite) implement Store; services depend on
// the interfaces only.
package store

import (
	"context"
	"errors"

	"github.com/cern1991/rugby-league-central/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. It exposes sub-repositories
// to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	LoginChallenges() LoginChallenges

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback if fn errors,
	// commit otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is taken; uniqueness is
	// enforced by the database, not an application pre-check.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdatePreferences overwrites favorite teams and theme, bumps updated_at.
	UpdatePreferences(ctx context.Context, userID string, favoriteTeams []string, theme string) error

	// UpdateTOTPSecret stores a pending TOTP secret without enabling 2FA.
	UpdateTOTPSecret(ctx context.Context, userID, secret string) error

	// EnableTOTP marks 2FA as enabled (sets the totp_enabled timestamp).
	EnableTOTP(ctx context.Context, userID string) error

	// DisableTOTP clears both the enabled flag and the secret.
	DisableTOTP(ctx context.Context, userID string) error

	// UpdateSubscriptionStatus is called by the billing collaborator only.
	UpdateSubscriptionStatus(ctx context.Context, userID string, status domain.SubscriptionStatus) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns the session only if it has not expired.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// DeleteSession removes a session; deleting an absent session is not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteUserSessions revokes every session for a user (e.g. on 2FA change).
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type LoginChallenges interface {
	CreateChallenge(ctx context.Context, c domain.LoginChallenge) error

	// GetChallengeByTokenHash returns a non-expired challenge by fingerprint.
	GetChallengeByTokenHash(ctx context.Context, hash string) (domain.LoginChallenge, error)

	// IncrementChallengeAttempts bumps the failed attempt counter and
	// returns the updated challenge.
	IncrementChallengeAttempts(ctx context.Context, id string) (domain.LoginChallenge, error)

	DeleteChallenge(ctx context.Context, id string) error

	// DeleteExpiredChallenges is housekeeping.
	DeleteExpiredChallenges(ctx context.Context) error
}
