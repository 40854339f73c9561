package httpapi

import (
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
)

// writeError is a small wrapper so handlers read naturally.
func writeError(w http.ResponseWriter, code int, err, desc string) {
	httpx.WriteError(w, code, err, desc)
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "server_error", "Something went wrong")
}

// loginResponse is returned by login and two-factor verification. When
// two-factor is required, session_token is absent and the client must
// follow up with the challenge token and a code.
type loginResponse struct {
	User              *domain.UserView `json:"user,omitempty"`
	SessionToken      string           `json:"session_token,omitempty"`
	RequiresTwoFactor bool             `json:"requires_two_factor"`
	UserID            string           `json:"user_id,omitempty"`
	ChallengeToken    string           `json:"challenge_token,omitempty"`
}

type twoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	QRCode     string `json:"qr_code"`
}

type leagueResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
