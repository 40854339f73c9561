package service

import (
	"context"
	"strconv"
	"time"

	"github.com/cern1991/rugby-league-central/internal/cache"
	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/feed"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

const (
	newsCacheTTL     = 5 * time.Minute
	fixtureCacheTTL  = 10 * time.Minute
	standingCacheTTL = 30 * time.Minute
	rosterCacheTTL   = time.Hour
)

// FeedService serves league content through a read-through cache.
// Upstream failures surface as empty slices, never as errors; a broken
// provider must not break page renders.
type FeedService struct {
	news   *feed.NewsClient
	sports *feed.SportsClient
	cache  cache.Cache
}

func NewFeedService(news *feed.NewsClient, sports *feed.SportsClient, c cache.Cache) *FeedService {
	return &FeedService{news: news, sports: sports, cache: c}
}

// Leagues lists the supported competitions.
func (s *FeedService) Leagues() []feed.League {
	return feed.Leagues()
}

// News returns headlines for a league slug. The boolean reports whether
// the slug is a known league.
func (s *FeedService) News(ctx context.Context, slug string) ([]domain.NewsItem, bool) {
	league, ok := feed.LeagueBySlug(slug)
	if !ok {
		return nil, false
	}
	return cachedFetch(ctx, s.cache, "news:"+slug, newsCacheTTL, func() []domain.NewsItem {
		return s.news.FetchNews(ctx, league)
	}), true
}

// Fixtures returns upcoming matches for a league slug.
func (s *FeedService) Fixtures(ctx context.Context, slug string) ([]domain.Fixture, bool) {
	league, ok := feed.LeagueBySlug(slug)
	if !ok {
		return nil, false
	}
	return cachedFetch(ctx, s.cache, "fixtures:"+slug, fixtureCacheTTL, func() []domain.Fixture {
		return s.sports.FetchFixtures(ctx, league)
	}), true
}

// Results returns recently completed matches for a league slug.
func (s *FeedService) Results(ctx context.Context, slug string) ([]domain.Fixture, bool) {
	league, ok := feed.LeagueBySlug(slug)
	if !ok {
		return nil, false
	}
	return cachedFetch(ctx, s.cache, "results:"+slug, fixtureCacheTTL, func() []domain.Fixture {
		return s.sports.FetchResults(ctx, league)
	}), true
}

// Standings returns the ladder for a league slug, defaulting to the
// current season.
func (s *FeedService) Standings(ctx context.Context, slug, season string) ([]domain.Standing, bool) {
	league, ok := feed.LeagueBySlug(slug)
	if !ok {
		return nil, false
	}
	if season == "" {
		season = strconv.Itoa(time.Now().Year())
	}
	return cachedFetch(ctx, s.cache, "standings:"+slug+":"+season, standingCacheTTL, func() []domain.Standing {
		return s.sports.FetchStandings(ctx, league, season)
	}), true
}

// Roster returns the squad for a team name.
func (s *FeedService) Roster(ctx context.Context, team string) []domain.Player {
	return cachedFetch(ctx, s.cache, "roster:"+team, rosterCacheTTL, func() []domain.Player {
		return s.sports.FetchRoster(ctx, team)
	})
}

// cachedFetch reads through the cache. Cache errors are logged and
// treated as misses. Empty fetch results are cached too, so a dead
// upstream is not hammered on every request.
func cachedFetch[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, fetch func() []T) []T {
	log := slogx.FromContext(ctx)

	var out []T
	hit, err := c.Get(ctx, key, &out)
	if err != nil {
		log.Warn("feed cache read failed", "key", key, "error", err)
	}
	if hit && out != nil {
		return out
	}

	out = fetch()
	if out == nil {
		out = []T{}
	}
	if err := c.Set(ctx, key, out, ttl); err != nil {
		log.Warn("feed cache write failed", "key", key, "error", err)
	}
	return out
}
