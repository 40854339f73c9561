package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func newTwoFactorService(t *testing.T) (*TwoFactorService, *AuthService) {
	t.Helper()

	svc, st := newAuthService(t)
	return &TwoFactorService{Store: st, Issuer: "Rugby League Central"}, svc
}

func TestTwoFactorSetup(t *testing.T) {
	ctx := context.Background()
	tfa, auth := newTwoFactorService(t)

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	setup, err := tfa.Setup(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	require.Contains(t, setup.OTPAuthURL, "otpauth://totp/")
	require.Contains(t, setup.OTPAuthURL, "fan%40example.com")
	require.True(t, strings.HasPrefix(setup.QRImage, "data:image/png;base64,"))

	// Setup alone must not switch 2FA on.
	got, err := auth.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled())
}

func TestTwoFactorSetup_ReplacesPendingSecret(t *testing.T) {
	ctx := context.Background()
	tfa, auth := newTwoFactorService(t)

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	first, err := tfa.Setup(ctx, user.ID)
	require.NoError(t, err)
	second, err := tfa.Setup(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	// Only the latest pending secret counts.
	code, err := totp.GenerateCode(first.Secret, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, tfa.Enable(ctx, user.ID, code), ErrInvalidCode)

	code, err = totp.GenerateCode(second.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, tfa.Enable(ctx, user.ID, code))
}

func TestTwoFactorEnable_WithoutSetup(t *testing.T) {
	ctx := context.Background()
	tfa, auth := newTwoFactorService(t)

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	require.ErrorIs(t, tfa.Enable(ctx, user.ID, "123456"), ErrTwoFactorNotPending)
}

func TestTwoFactorEnable_AlreadyEnabled(t *testing.T) {
	ctx := context.Background()
	tfa, auth := newTwoFactorService(t)

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User
	secret := enableTwoFactor(t, tfa.Store, user.ID)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, tfa.Enable(ctx, user.ID, code), ErrTwoFactorEnabled)

	_, err = tfa.Setup(ctx, user.ID)
	require.ErrorIs(t, err, ErrTwoFactorEnabled)
}

func TestTwoFactorDisable(t *testing.T) {
	ctx := context.Background()
	tfa, auth := newTwoFactorService(t)

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User
	secret := enableTwoFactor(t, tfa.Store, user.ID)

	// Establish a session that disabling should revoke.
	login, err := auth.Login(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	verified, err := auth.VerifyTwoFactor(ctx, login.ChallengeToken, code)
	require.NoError(t, err)

	claims, err := auth.Signer.Verify(verified.SessionToken)
	require.NoError(t, err)

	code, err = totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, tfa.Disable(ctx, user.ID, code))

	got, err := auth.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled())

	active, err := auth.SessionActive(ctx, claims.SessionID)
	require.NoError(t, err)
	require.False(t, active, "disabling 2FA revokes existing sessions")
}
