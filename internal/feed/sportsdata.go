package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/metrics"
	"github.com/cern1991/rugby-league-central/internal/normalize"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// SportsClient fetches fixtures, results, ladders and rosters from a
// TheSportsDB-compatible JSON API.
type SportsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewSportsClient(baseURL, apiKey string) *SportsClient {
	return &SportsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: fetchTimeout},
	}
}

// Upstream event payloads carry every numeric field as a string.
type sportsEvent struct {
	DateEvent    string `json:"dateEvent"`
	StrTime      string `json:"strTime"`
	StrTimestamp string `json:"strTimestamp"`
	StrLeague    string `json:"strLeague"`
	StrHomeTeam  string `json:"strHomeTeam"`
	StrAwayTeam  string `json:"strAwayTeam"`
	StrHomeBadge string `json:"strHomeTeamBadge"`
	StrAwayBadge string `json:"strAwayTeamBadge"`
	IntHomeScore string `json:"intHomeScore"`
	IntAwayScore string `json:"intAwayScore"`
	StrStatus    string `json:"strStatus"`
}

type sportsTableRow struct {
	IntRank          string `json:"intRank"`
	StrTeam          string `json:"strTeam"`
	StrBadge         string `json:"strBadge"`
	IntPlayed        string `json:"intPlayed"`
	IntWin           string `json:"intWin"`
	IntDraw          string `json:"intDraw"`
	IntLoss          string `json:"intLoss"`
	IntPointsFor     string `json:"intGoalsFor"`
	IntPointsAgainst string `json:"intGoalsAgainst"`
	IntPoints        string `json:"intPoints"`
}

type sportsPlayer struct {
	StrPlayer   string `json:"strPlayer"`
	StrTeam     string `json:"strTeam"`
	StrPosition string `json:"strPosition"`
	StrCutout   string `json:"strCutout"`
}

// FetchFixtures returns upcoming matches for a league, deduplicated
// across the provider's occasionally repeated rows.
func (c *SportsClient) FetchFixtures(ctx context.Context, league League) []domain.Fixture {
	events, ok := c.fetchEvents(ctx, "eventsnextleague.php", league)
	if !ok {
		return []domain.Fixture{}
	}
	return normalize.DedupeFixtures(mapFixtures(events, league))
}

// FetchResults returns recently completed matches for a league.
func (c *SportsClient) FetchResults(ctx context.Context, league League) []domain.Fixture {
	events, ok := c.fetchEvents(ctx, "eventspastleague.php", league)
	if !ok {
		return []domain.Fixture{}
	}
	return normalize.DedupeFixtures(mapFixtures(events, league))
}

// FetchStandings returns the league ladder for a season.
func (c *SportsClient) FetchStandings(ctx context.Context, league League, season string) []domain.Standing {
	log := slogx.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/api/v1/json/%s/lookuptable.php?l=%s&s=%s",
		c.baseURL, c.apiKey, league.SportsID, url.QueryEscape(season))

	var payload struct {
		Table []sportsTableRow `json:"table"`
	}
	if !c.getJSON(ctx, endpoint, &payload) {
		return []domain.Standing{}
	}

	standings := make([]domain.Standing, 0, len(payload.Table))
	for _, row := range payload.Table {
		standings = append(standings, domain.Standing{
			Rank:          atoi(row.IntRank),
			Team:          row.StrTeam,
			Logo:          row.StrBadge,
			Played:        atoi(row.IntPlayed),
			Wins:          atoi(row.IntWin),
			Draws:         atoi(row.IntDraw),
			Losses:        atoi(row.IntLoss),
			PointsFor:     atoi(row.IntPointsFor),
			PointsAgainst: atoi(row.IntPointsAgainst),
			Points:        atoi(row.IntPoints),
		})
	}

	if len(standings) == 0 {
		log.Debug("sports: empty ladder", "league", league.Slug, "season", season)
	}
	return standings
}

// FetchRoster returns the current squad for a team name.
func (c *SportsClient) FetchRoster(ctx context.Context, team string) []domain.Player {
	endpoint := fmt.Sprintf("%s/api/v1/json/%s/searchplayers.php?t=%s",
		c.baseURL, c.apiKey, url.QueryEscape(team))

	var payload struct {
		Player []sportsPlayer `json:"player"`
	}
	if !c.getJSON(ctx, endpoint, &payload) {
		return []domain.Player{}
	}

	players := make([]domain.Player, 0, len(payload.Player))
	for _, p := range payload.Player {
		players = append(players, domain.Player{
			Name:     p.StrPlayer,
			Team:     p.StrTeam,
			Position: p.StrPosition,
			Photo:    p.StrCutout,
		})
	}
	return players
}

func (c *SportsClient) fetchEvents(ctx context.Context, path string, league League) ([]sportsEvent, bool) {
	endpoint := fmt.Sprintf("%s/api/v1/json/%s/%s?id=%s",
		c.baseURL, c.apiKey, path, league.SportsID)

	var payload struct {
		Events []sportsEvent `json:"events"`
	}
	if !c.getJSON(ctx, endpoint, &payload) {
		return nil, false
	}
	return payload.Events, true
}

// getJSON performs a GET and decodes the body. Any failure logs a
// warning, bumps the failure counter and reports false so callers
// degrade to empty results.
func (c *SportsClient) getJSON(ctx context.Context, endpoint string, dest any) bool {
	log := slogx.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warn("sports: build request", "error", err)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("sports: fetch failed", "error", err)
		metrics.UpstreamFailures.WithLabelValues("sports").Inc()
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("sports: unexpected status", "status", resp.StatusCode)
		metrics.UpstreamFailures.WithLabelValues("sports").Inc()
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		log.Warn("sports: decode failed", "error", err)
		metrics.UpstreamFailures.WithLabelValues("sports").Inc()
		return false
	}
	return true
}

func mapFixtures(events []sportsEvent, league League) []domain.Fixture {
	fixtures := make([]domain.Fixture, 0, len(events))
	for _, e := range events {
		fixtures = append(fixtures, domain.Fixture{
			Date:      e.DateEvent,
			Time:      e.StrTime,
			Timestamp: parseEventTimestamp(e.StrTimestamp),
			League:    league.Name,
			HomeTeam:  e.StrHomeTeam,
			AwayTeam:  e.StrAwayTeam,
			HomeLogo:  e.StrHomeBadge,
			AwayLogo:  e.StrAwayBadge,
			HomeScore: e.IntHomeScore,
			AwayScore: e.IntAwayScore,
			Status:    e.StrStatus,
		})
	}
	return fixtures
}

// parseEventTimestamp accepts the provider's two timestamp shapes.
// Anything else maps to zero, meaning "kickoff instant unknown".
func parseEventTimestamp(raw string) int64 {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Unix()
		}
	}
	return 0
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
