package httpapi

import (
	"errors"
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// AuthHandler covers registration, login, two-factor verification and
// logout.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an account with the given email and password and establishes a
//	@Description	session, so the new user is logged in immediately. Emails are unique
//	@Description	case-insensitively.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"Email and password"
//	@Success		201		{object}	loginResponse		"The created account and its session token"
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed request body"
//	@Failure		409		{object}	httpx.ErrorResponse	"Email already registered"
//	@Failure		422		{object}	httpx.ErrorResponse	"Validation failed"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	result, err := h.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email_taken", "An account with this email already exists")
			return
		}
		log.Error("register failed", "err", err)
		writeServerError(w)
		return
	}

	httpx.NoCache(w)
	view := result.User.View()
	httpx.WriteJSON(w, http.StatusCreated, loginResponse{
		User:         &view,
		SessionToken: result.SessionToken,
	})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Verifies credentials. Returns a session token, or a two-factor challenge for 2FA-enabled accounts.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest		true	"Email and password"
//	@Success		200		{object}	loginResponse		"Session token or two-factor challenge"
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	httpx.ErrorResponse	"Invalid credentials"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}
		log.Error("login failed", "err", err)
		writeServerError(w)
		return
	}

	httpx.NoCache(w)

	if result.TwoFactorRequired {
		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			RequiresTwoFactor: true,
			UserID:            result.User.ID,
			ChallengeToken:    result.ChallengeToken,
		})
		return
	}

	view := result.User.View()
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		User:         &view,
		SessionToken: result.SessionToken,
	})
}

// HandleVerifyTwoFactor handles POST /v1/auth/2fa/verify
//
//	@Summary		Complete a two-factor login
//	@Description	Exchanges a login challenge token plus a TOTP code for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyTwoFactorRequest	true	"Challenge token and 6-digit code"
//	@Success		200		{object}	loginResponse			"Session token"
//	@Failure		400		{object}	httpx.ErrorResponse		"Malformed request body"
//	@Failure		401		{object}	httpx.ErrorResponse		"Wrong code or expired challenge"
//	@Router			/v1/auth/2fa/verify [post].
func (h *AuthHandler) HandleVerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req verifyTwoFactorRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	result, err := h.AuthService.VerifyTwoFactor(ctx, req.ChallengeToken, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			writeError(w, http.StatusUnauthorized, "invalid_code", "Invalid verification code")
		case errors.Is(err, service.ErrChallengeExpired):
			writeError(w, http.StatusUnauthorized, "challenge_expired", "Log in again to get a new challenge")
		default:
			log.Error("two-factor verify failed", "err", err)
			writeServerError(w)
		}
		return
	}

	httpx.NoCache(w)
	view := result.User.View()
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		User:         &view,
		SessionToken: result.SessionToken,
	})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Revokes the current session. Idempotent: logging out twice succeeds.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Session revoked"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionID, ok := ctx.Value(httpx.CtxKeySessionID).(string)
	if !ok || sessionID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	if err := h.AuthService.Logout(ctx, sessionID); err != nil {
		log.Error("logout failed", "session_id", sessionID, "err", err)
		writeServerError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
