package httpapi

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// BillingHandler receives subscription state changes from the billing
// collaborator. It is the only path that writes subscription_status.
type BillingHandler struct {
	AuthService *service.AuthService
	Secret      string
}

// HandleWebhook handles POST /v1/billing/webhook
//
//	@Summary		Billing webhook
//	@Description	Applies a subscription status change pushed by the billing provider.
//	@Description	Authenticated with the X-Billing-Secret shared secret header.
//	@Tags			Billing
//	@Accept			json
//	@Param			X-Billing-Secret	header	string					true	"Shared webhook secret"
//	@Param			request				body	billingWebhookRequest	true	"User and new status"
//	@Success		204					"Status applied"
//	@Failure		401					{object}	httpx.ErrorResponse	"Bad or missing secret"
//	@Failure		404					{object}	httpx.ErrorResponse	"Unknown user"
//	@Failure		422					{object}	httpx.ErrorResponse	"Validation failed"
//	@Router			/v1/billing/webhook [post].
func (h *BillingHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.Secret == "" {
		log.Error("billing webhook called but no secret configured")
		writeError(w, http.StatusUnauthorized, "unauthorized", "Webhook not configured")
		return
	}

	provided := r.Header.Get("X-Billing-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.Secret)) != 1 {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Bad webhook secret")
		return
	}

	var req billingWebhookRequest
	if err := decodeValid(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	err := h.AuthService.UpdateSubscriptionStatus(ctx, req.UserID, domain.SubscriptionStatus(req.SubscriptionStatus))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "unknown_user", "No such user")
			return
		}
		log.Error("billing webhook failed", "user_id", req.UserID, "err", err)
		writeServerError(w)
		return
	}

	log.Info("subscription status updated", "user_id", req.UserID, "status", req.SubscriptionStatus)
	w.WriteHeader(http.StatusNoContent)
}
