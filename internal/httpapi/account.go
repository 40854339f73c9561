package httpapi

import (
	"errors"
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// AccountHandler serves the authenticated user's own account.
type AccountHandler struct {
	AuthService        *service.AuthService
	PreferencesService *service.PreferencesService
}

// HandleGetMe handles GET /v1/me
//
//	@Summary		Get the current account
//	@Description	Returns the authenticated user's profile and preferences.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.UserView		"The account"
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/me [get].
func (h *AccountHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	user, err := h.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Error("load account failed", "user_id", userID, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user.View())
}

// HandleUpdatePreferences handles PUT /v1/me/preferences
//
//	@Summary		Replace preferences
//	@Description	Overwrites the favorite teams list and theme in full. Order and duplicates
//	@Description	in the list are kept as submitted; an unknown theme falls back to the default.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		updatePreferencesRequest	true	"Favorite teams and theme"
//	@Success		200		{object}	domain.UserView				"The updated account"
//	@Failure		400		{object}	httpx.ErrorResponse			"Malformed request body"
//	@Failure		401		{object}	httpx.ErrorResponse			"Invalid or missing session token"
//	@Failure		422		{object}	httpx.ErrorResponse			"Validation failed"
//	@Router			/v1/me/preferences [put].
func (h *AccountHandler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "invalid_token", "No session")
		return
	}

	var req updatePreferencesRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	user, err := h.PreferencesService.Update(ctx, userID, req.FavoriteTeams, req.Theme)
	if err != nil {
		if errors.Is(err, service.ErrTooManyTeams) {
			writeError(w, http.StatusUnprocessableEntity, "too_many_teams", "Favorite teams list is too long")
			return
		}
		log.Error("update preferences failed", "user_id", userID, "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user.View())
}
