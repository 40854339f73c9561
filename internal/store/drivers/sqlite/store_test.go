package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore("file:" + t.TempDir() + "/test.db")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, email string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{
		ID:                 "usr_" + email,
		Email:              email,
		PasswordHash:       "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		SubscriptionStatus: domain.SubscriptionFree,
		FavoriteTeams:      []string{},
		Theme:              "classic",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	got, err := s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.Email, got.Email)
	require.Equal(t, domain.SubscriptionFree, got.SubscriptionStatus)
	require.Empty(t, got.FavoriteTeams)
	require.Nil(t, got.TOTPEnabled)
	require.Nil(t, got.TOTPSecret)
}

func TestUsers_EmailUniqueCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "fan@example.com")

	dup := domain.User{
		ID:                 "usr_dup",
		Email:              "FAN@Example.COM",
		PasswordHash:       "x",
		SubscriptionStatus: domain.SubscriptionFree,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	err := s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_GetByEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	got, err := s.Users().GetUserByEmail(ctx, "FAN@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, got.ID)
}

func TestUsers_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByID(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	// Duplicates and order must survive the round trip untouched.
	teams := []string{"Broncos", "Storm", "Broncos"}
	require.NoError(t, s.Users().UpdatePreferences(ctx, seeded.ID, teams, "maroon"))

	got, err := s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, teams, got.FavoriteTeams)
	require.Equal(t, "maroon", got.Theme)
	require.WithinDuration(t, seeded.CreatedAt, got.CreatedAt, time.Second)
}

func TestUsers_UpdatePreferencesMissingUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Users().UpdatePreferences(ctx, "nope", []string{"Eels"}, "dark")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_TOTPLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	// Enabling without a stored secret must fail.
	err := s.Users().EnableTOTP(ctx, seeded.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Users().UpdateTOTPSecret(ctx, seeded.ID, "JBSWY3DPEHPK3PXP"))

	got, err := s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled(), "pending secret alone must not enable 2FA")

	require.NoError(t, s.Users().EnableTOTP(ctx, seeded.ID))

	got, err = s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.True(t, got.TwoFactorEnabled())
	require.NotNil(t, got.TOTPSecret)

	require.NoError(t, s.Users().DisableTOTP(ctx, seeded.ID))

	got, err = s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled())
	require.Nil(t, got.TOTPSecret)
}

func TestUsers_UpdateSubscriptionStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	require.NoError(t, s.Users().UpdateSubscriptionStatus(ctx, seeded.ID, domain.SubscriptionActive))

	got, err := s.Users().GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.SubscriptionActive, got.SubscriptionStatus)
}

func TestSessions_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	sess := domain.Session{
		ID:        "ses_1",
		UserID:    seeded.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))

	got, err := s.Sessions().GetSessionByID(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.ID, got.UserID)

	require.NoError(t, s.Sessions().DeleteSession(ctx, sess.ID))
	require.NoError(t, s.Sessions().DeleteSession(ctx, sess.ID), "delete is idempotent")

	_, err = s.Sessions().GetSessionByID(ctx, sess.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions_ExpiredNotReturned(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	sess := domain.Session{
		ID:        "ses_expired",
		UserID:    seeded.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))

	_, err := s.Sessions().GetSessionByID(ctx, sess.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx))
}

func TestSessions_DeleteUserSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	for _, id := range []string{"ses_a", "ses_b"} {
		require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
			ID:        id,
			UserID:    seeded.ID,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, s.Sessions().DeleteUserSessions(ctx, seeded.ID))

	_, err := s.Sessions().GetSessionByID(ctx, "ses_a")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Sessions().GetSessionByID(ctx, "ses_b")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoginChallenges_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	ch := domain.LoginChallenge{
		ID:        "chl_1",
		UserID:    seeded.ID,
		TokenHash: "abc123",
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.LoginChallenges().CreateChallenge(ctx, ch))

	got, err := s.LoginChallenges().GetChallengeByTokenHash(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, ch.ID, got.ID)
	require.Zero(t, got.Attempts)

	got, err = s.LoginChallenges().IncrementChallengeAttempts(ctx, ch.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Attempts)

	require.NoError(t, s.LoginChallenges().DeleteChallenge(ctx, ch.ID))

	_, err = s.LoginChallenges().GetChallengeByTokenHash(ctx, "abc123")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoginChallenges_ExpiredNotReturned(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeded := seedUser(t, s, "fan@example.com")

	ch := domain.LoginChallenge{
		ID:        "chl_old",
		UserID:    seeded.ID,
		TokenHash: "stale",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, s.LoginChallenges().CreateChallenge(ctx, ch))

	_, err := s.LoginChallenges().GetChallengeByTokenHash(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.LoginChallenges().DeleteExpiredChallenges(ctx))
}

func TestWithTx_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sentinel := store.ErrAlreadyExists
	err := s.WithTx(ctx, func(tx store.Tx) error {
		u := domain.User{
			ID:                 "usr_tx",
			Email:              "tx@example.com",
			PasswordHash:       "x",
			SubscriptionStatus: domain.SubscriptionFree,
			CreatedAt:          time.Now().UTC(),
			UpdatedAt:          time.Now().UTC(),
		}
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound, "rolled back insert must not persist")
}
