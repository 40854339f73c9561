package httpapi

import (
	"errors"
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// TwoFactorHandler covers TOTP enrollment for an authenticated user.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

// HandleSetup handles POST /v1/2fa/setup
//
//	@Summary		Begin two-factor enrollment
//	@Description	Generates a TOTP secret and returns it with an otpauth URL and QR code.
//	@Description	Two-factor is not active until a code is verified via /v1/2fa/enable.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	twoFactorSetupResponse	"Secret and QR code, shown once"
//	@Failure		400	{object}	httpx.ErrorResponse		"Two-factor already enabled"
//	@Failure		401	{object}	httpx.ErrorResponse		"Invalid or missing session token"
//	@Router			/v1/2fa/setup [post].
func (h *TwoFactorHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	setup, err := h.TwoFactorService.Setup(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrTwoFactorEnabled) {
			writeError(w, http.StatusBadRequest, "already_enabled", "Two-factor is already enabled")
			return
		}
		log.Error("two-factor setup failed", "user_id", userID, "err", err)
		writeServerError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, twoFactorSetupResponse{
		Secret:     setup.Secret,
		OTPAuthURL: setup.OTPAuthURL,
		QRCode:     setup.QRImage,
	})
}

// HandleEnable handles POST /v1/2fa/enable
//
//	@Summary		Activate two-factor
//	@Description	Verifies a TOTP code against the pending secret and switches two-factor on.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Two-factor enabled"
//	@Failure		400	{object}	httpx.ErrorResponse	"No pending setup, already enabled, or wrong code"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/2fa/enable [post].
func (h *TwoFactorHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	var req twoFactorCodeRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.TwoFactorService.Enable(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "invalid_code", "Invalid verification code")
		case errors.Is(err, service.ErrTwoFactorEnabled):
			writeError(w, http.StatusBadRequest, "already_enabled", "Two-factor is already enabled")
		case errors.Is(err, service.ErrTwoFactorNotPending):
			writeError(w, http.StatusBadRequest, "setup_required", "Call setup before enabling")
		default:
			log.Error("two-factor enable failed", "user_id", userID, "err", err)
			writeServerError(w)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDisable handles DELETE /v1/2fa
//
//	@Summary		Disable two-factor
//	@Description	Verifies a TOTP code, disables two-factor and revokes all sessions.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Two-factor disabled"
//	@Failure		400	{object}	httpx.ErrorResponse	"Not enabled or wrong code"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/2fa [delete].
func (h *TwoFactorHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	var req twoFactorCodeRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := h.TwoFactorService.Disable(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "invalid_code", "Invalid verification code")
		case errors.Is(err, service.ErrTwoFactorNotPending):
			writeError(w, http.StatusBadRequest, "not_enabled", "Two-factor is not enabled")
		default:
			log.Error("two-factor disable failed", "user_id", userID, "err", err)
			writeServerError(w)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
