package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	errBadJSON    = errors.New("invalid JSON body")
	errValidation = errors.New("request failed validation")
)

// decodeValid decodes a JSON body into dst and runs struct validation.
// Handlers map errBadJSON to 400 and errValidation to 422.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadJSON
	}
	if err := validate.Struct(dst); err != nil {
		return errValidation
	}
	return nil
}

// writeRequestError translates a decodeValid failure.
func writeRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadJSON) {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, "validation_failed", "Request failed validation")
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=128"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyTwoFactorRequest struct {
	ChallengeToken string `json:"challenge_token" validate:"required"`
	Code           string `json:"code" validate:"required,len=6,numeric"`
}

type twoFactorCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type updatePreferencesRequest struct {
	FavoriteTeams []string `json:"favorite_teams" validate:"required,dive,max=100"`
	Theme         string   `json:"theme" validate:"required,max=32"`
}

type billingWebhookRequest struct {
	UserID             string `json:"user_id" validate:"required"`
	SubscriptionStatus string `json:"subscription_status" validate:"required,oneof=free active cancelled"`
}
