package httpapi

import (
	"net/http"

	"github.com/cern1991/rugby-league-central/internal/service"
	"github.com/cern1991/rugby-league-central/pkg/httpx"
)

// FeedsHandler serves league content. Every endpoint degrades to an
// empty list when the upstream is down; a broken provider never
// surfaces as an error to clients.
type FeedsHandler struct {
	FeedService *service.FeedService
}

// HandleLeagues handles GET /v1/leagues
//
//	@Summary	List supported leagues
//	@Tags		Feeds
//	@Produce	json
//	@Success	200	{array}	leagueResponse
//	@Router		/v1/leagues [get].
func (h *FeedsHandler) HandleLeagues(w http.ResponseWriter, r *http.Request) {
	leagues := h.FeedService.Leagues()
	out := make([]leagueResponse, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, leagueResponse{Slug: l.Slug, Name: l.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleNews handles GET /v1/leagues/{league}/news
//
//	@Summary		League headlines
//	@Description	Normalized news items for a league. Empty when the upstream is unavailable.
//	@Tags			Feeds
//	@Produce		json
//	@Param			league	path		string	true	"League slug"
//	@Success		200		{array}		domain.NewsItem
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown league"
//	@Router			/v1/leagues/{league}/news [get].
func (h *FeedsHandler) HandleNews(w http.ResponseWriter, r *http.Request) {
	items, ok := h.FeedService.News(r.Context(), r.PathValue("league"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_league", "No such league")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleFixtures handles GET /v1/leagues/{league}/fixtures
//
//	@Summary		Upcoming matches
//	@Description	Deduplicated upcoming fixtures. Empty when the upstream is unavailable.
//	@Tags			Feeds
//	@Produce		json
//	@Param			league	path		string	true	"League slug"
//	@Success		200		{array}		domain.Fixture
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown league"
//	@Router			/v1/leagues/{league}/fixtures [get].
func (h *FeedsHandler) HandleFixtures(w http.ResponseWriter, r *http.Request) {
	fixtures, ok := h.FeedService.Fixtures(r.Context(), r.PathValue("league"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_league", "No such league")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fixtures)
}

// HandleResults handles GET /v1/leagues/{league}/results
//
//	@Summary		Recent results
//	@Tags			Feeds
//	@Produce		json
//	@Param			league	path		string	true	"League slug"
//	@Success		200		{array}		domain.Fixture
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown league"
//	@Router			/v1/leagues/{league}/results [get].
func (h *FeedsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	results, ok := h.FeedService.Results(r.Context(), r.PathValue("league"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_league", "No such league")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, results)
}

// HandleStandings handles GET /v1/leagues/{league}/standings
//
//	@Summary		League ladder
//	@Tags			Feeds
//	@Produce		json
//	@Param			league	path		string	true	"League slug"
//	@Param			season	query		string	false	"Season, defaults to the current year"
//	@Success		200		{array}		domain.Standing
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown league"
//	@Router			/v1/leagues/{league}/standings [get].
func (h *FeedsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	standings, ok := h.FeedService.Standings(r.Context(), r.PathValue("league"), r.URL.Query().Get("season"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_league", "No such league")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, standings)
}

// HandleRoster handles GET /v1/teams/{team}/roster
//
//	@Summary	Team squad
//	@Tags		Feeds
//	@Produce	json
//	@Param		team	path	string	true	"Team name"
//	@Success	200		{array}	domain.Player
//	@Router		/v1/teams/{team}/roster [get].
func (h *FeedsHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	players := h.FeedService.Roster(r.Context(), r.PathValue("team"))
	httpx.WriteJSON(w, http.StatusOK, players)
}
