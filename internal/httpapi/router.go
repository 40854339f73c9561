// Package httpapi exposes the service over HTTP. Handlers translate
// service sentinel errors into status codes: duplicate email is 409,
// bad credentials or dead sessions are 401, malformed requests are 400
// and semantically invalid ones 422.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cern1991/rugby-league-central/internal/metrics"
	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/internal/store"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
	"github.com/cern1991/rugby-league-central/pkg/slogx"

	_ "github.com/cern1991/rugby-league-central/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService        *service.AuthService
	TwoFactorService   *service.TwoFactorService
	PreferencesService *service.PreferencesService
	FeedService        *service.FeedService

	// BillingSecret authenticates the billing collaborator's webhook.
	BillingSecret string
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTwoFactor()
	r.registerAccount()
	r.registerFeeds()
	r.registerBilling()
	r.registerSystem()

	r.Mux.Handle("GET /metrics", metrics.Handler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rugby League Central API
//	@version		0.1.0
//	@description	Backend for a rugby league content platform: accounts with optional
//	@description	TOTP two-factor auth, per-user team and theme preferences, and
//	@description	league content feeds (news, fixtures, results, ladders, rosters).
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Registration and login are brute-force targets: strict by IP.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/2fa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyTwoFactor),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TwoFactorService: r.TwoFactorService}

	r.Mux.Handle("POST /v1/2fa/setup",
		httpx.Chain(http.HandlerFunc(h.HandleSetup),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Code verification endpoints are strict per user to slow down
	// TOTP guessing.
	r.Mux.Handle("POST /v1/2fa/enable",
		httpx.Chain(http.HandlerFunc(h.HandleEnable),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/2fa",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	h := &AccountHandler{
		AuthService:        r.AuthService,
		PreferencesService: r.PreferencesService,
	}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleGetMe),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/me/preferences",
		httpx.Chain(http.HandlerFunc(h.HandleUpdatePreferences),
			httpx.AuthnMiddleware(r.AuthService.Signer, r.AuthService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerFeeds() {
	h := &FeedsHandler{FeedService: r.FeedService}

	// Public read-only content endpoints.
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.PublicLimit))
	}

	r.Mux.Handle("GET /v1/leagues", public(h.HandleLeagues))
	r.Mux.Handle("GET /v1/leagues/{league}/news", public(h.HandleNews))
	r.Mux.Handle("GET /v1/leagues/{league}/fixtures", public(h.HandleFixtures))
	r.Mux.Handle("GET /v1/leagues/{league}/results", public(h.HandleResults))
	r.Mux.Handle("GET /v1/leagues/{league}/standings", public(h.HandleStandings))
	r.Mux.Handle("GET /v1/teams/{team}/roster", public(h.HandleRoster))
}

func (r *Router) registerBilling() {
	h := &BillingHandler{
		AuthService: r.AuthService,
		Secret:      r.BillingSecret,
	}

	r.Mux.Handle("POST /v1/billing/webhook",
		httpx.Chain(http.HandlerFunc(h.HandleWebhook),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
