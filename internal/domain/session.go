package domain

import "time"

// Session is a revocable login session backing a JWT session token.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// LoginChallenge is a pending two-factor verification issued after a
// correct password on a 2FA-enabled account. The opaque challenge token
// is handed to the client; only its fingerprint is stored.
type LoginChallenge struct {
	ID        string
	UserID    string
	TokenHash string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// LoginResult is the outcome of a password login: either a session was
// established, or a two-factor challenge must be completed first.
type LoginResult struct {
	User              *User
	SessionToken      string
	TwoFactorRequired bool
	ChallengeToken    string
}

// TwoFactorSetup is returned by 2FA enrollment. The secret is shown to
// the user exactly once; it is not enabled until verified.
type TwoFactorSetup struct {
	Secret     string // base32 encoded shared secret
	OTPAuthURL string // otpauth:// provisioning URL
	QRImage    string // PNG data URI of the provisioning QR code
}
