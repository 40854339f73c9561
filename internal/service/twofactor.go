package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/store"
)

const qrImageSize = 200

var (
	ErrTwoFactorEnabled    = errors.New("two-factor already enabled")
	ErrTwoFactorNotPending = errors.New("two-factor setup not started")
)

// TwoFactorService manages TOTP enrollment. Enrollment is two-phase:
// Setup stores a pending secret and returns it with a QR code, Enable
// turns 2FA on once the user proves they can produce a valid code.
type TwoFactorService struct {
	Store  store.Store
	Issuer string // issuer name shown in authenticator apps
}

// Setup generates a fresh TOTP secret for the user and returns it with
// an otpauth URL and a QR code image. 2FA is not enabled until Enable
// verifies a code. Calling Setup again before enabling replaces the
// pending secret.
func (s *TwoFactorService) Setup(ctx context.Context, userID string) (domain.TwoFactorSetup, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.TwoFactorSetup{}, fmt.Errorf("lookup user: %w", err)
	}
	if user.TwoFactorEnabled() {
		return domain.TwoFactorSetup{}, ErrTwoFactorEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.TwoFactorSetup{}, fmt.Errorf("generate totp key: %w", err)
	}

	if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return domain.TwoFactorSetup{}, fmt.Errorf("store totp secret: %w", err)
	}

	qr, err := renderQR(key)
	if err != nil {
		return domain.TwoFactorSetup{}, fmt.Errorf("render qr code: %w", err)
	}

	return domain.TwoFactorSetup{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRImage:    qr,
	}, nil
}

// Enable verifies a code against the pending secret and switches 2FA
// on. Existing sessions survive; only future logins require a code.
func (s *TwoFactorService) Enable(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user.TwoFactorEnabled() {
		return ErrTwoFactorEnabled
	}
	if user.TOTPSecret == nil || *user.TOTPSecret == "" {
		return ErrTwoFactorNotPending
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidCode
	}

	if err := s.Store.Users().EnableTOTP(ctx, userID); err != nil {
		return fmt.Errorf("enable totp: %w", err)
	}
	return nil
}

// Disable turns 2FA off and revokes every session, forcing a fresh
// password login.
func (s *TwoFactorService) Disable(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if !user.TwoFactorEnabled() || user.TOTPSecret == nil {
		return ErrTwoFactorNotPending
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidCode
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DisableTOTP(ctx, userID); err != nil {
			return fmt.Errorf("disable totp: %w", err)
		}
		if err := tx.Sessions().DeleteUserSessions(ctx, userID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
}

// renderQR encodes the provisioning QR as a PNG data URI so clients can
// drop it straight into an img tag.
func renderQR(key *otp.Key) (string, error) {
	img, err := key.Image(qrImageSize, qrImageSize)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
