package domain

import "time"

// SubscriptionStatus is the billing state of an account. It is only
// ever written by the billing collaborator, never by the user directly.
type SubscriptionStatus string

const (
	SubscriptionFree      SubscriptionStatus = "free"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// ValidSubscriptionStatus reports whether s is one of the known states.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionFree, SubscriptionActive, SubscriptionCancelled:
		return true
	}
	return false
}

// User is the account record owned by the preference store.
type User struct {
	ID                 string
	Email              string
	PasswordHash       string     // argon2id encoded, never serialized
	TOTPEnabled        *time.Time // timestamp when 2FA was enabled (nullable)
	TOTPSecret         *string    // base32 TOTP secret (nullable), never serialized
	SubscriptionStatus SubscriptionStatus
	FavoriteTeams      []string // insertion order preserved, duplicates allowed
	Theme              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TwoFactorEnabled reports whether 2FA is fully enabled for the account.
func (u User) TwoFactorEnabled() bool {
	return u.TOTPEnabled != nil
}

// UserView is the client-facing shape of a User. The password hash and
// TOTP secret must never cross the API boundary, so handlers only ever
// serialize this projection.
type UserView struct {
	ID                 string             `json:"id"`
	Email              string             `json:"email"`
	TwoFactorEnabled   bool               `json:"two_factor_enabled"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	FavoriteTeams      []string           `json:"favorite_teams"`
	Theme              string             `json:"theme"`
	CreatedAt          time.Time          `json:"created_at"`
}

// View returns the sanitized client-facing projection of the user.
func (u User) View() UserView {
	teams := u.FavoriteTeams
	if teams == nil {
		teams = []string{}
	}
	return UserView{
		ID:                 u.ID,
		Email:              u.Email,
		TwoFactorEnabled:   u.TwoFactorEnabled(),
		SubscriptionStatus: u.SubscriptionStatus,
		FavoriteTeams:      teams,
		Theme:              u.Theme,
		CreatedAt:          u.CreatedAt,
	}
}
