package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/cern1991/rugby-league-central/pkg/jwtx"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// SessionChecker confirms that a session id still refers to a live
// (non-revoked, non-expired) session row.
type SessionChecker interface {
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

// AuthnMiddleware verifies the bearer session token and confirms the
// referenced session has not been revoked. On success the user and
// session ids are injected into the request context.
func AuthnMiddleware(v jwtx.Verifier, sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			active, err := sessions.SessionActive(ctx, claims.SessionID)
			if err != nil {
				log.Error("session lookup failed", "err", err)
				writeBearerError(w, "session lookup failed")
				return
			}
			if !active {
				writeBearerError(w, "session revoked or expired")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeySessionID, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
