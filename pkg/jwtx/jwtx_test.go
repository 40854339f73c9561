package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(ttl time.Duration) *Signer {
	return &Signer{
		Secret: []byte("test-secret-0123456789abcdef0123"),
		Issuer: "rugby-league-central",
		TTL:    ttl,
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	s := newTestSigner(time.Hour)

	raw, err := s.Sign("user-1", "session-1", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := s.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "session-1", claims.SessionID)
}

func TestVerify_Expired(t *testing.T) {
	s := newTestSigner(time.Minute)

	raw, err := s.Sign("user-1", "session-1", time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = s.Verify(raw)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	s := newTestSigner(time.Hour)
	raw, err := s.Sign("user-1", "session-1", time.Now())
	require.NoError(t, err)

	other := newTestSigner(time.Hour)
	other.Secret = []byte("another-secret-entirely-32-bytes")

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongIssuer(t *testing.T) {
	s := newTestSigner(time.Hour)
	raw, err := s.Sign("user-1", "session-1", time.Now())
	require.NoError(t, err)

	other := newTestSigner(time.Hour)
	other.Issuer = "someone-else"

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	s := newTestSigner(time.Hour)

	for _, raw := range []string{"", "not.a.jwt", "a.b"} {
		_, err := s.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
