// Package feed fetches rugby league content from upstream providers and
// normalizes it into domain types. Upstream failures never propagate:
// every fetch degrades to an empty result so callers always render.
package feed

import "time"

// League identifies a competition across both upstreams.
type League struct {
	Slug     string // stable identifier used in API paths and cache keys
	Name     string // display name, also the news search term
	SportsID string // numeric id on the sports data provider
}

var leagues = []League{
	{Slug: "nrl", Name: "NRL", SportsID: "4416"},
	{Slug: "super-league", Name: "Super League", SportsID: "4415"},
	{Slug: "state-of-origin", Name: "State of Origin", SportsID: "4436"},
}

// Leagues returns the supported competitions in display order.
func Leagues() []League {
	out := make([]League, len(leagues))
	copy(out, leagues)
	return out
}

// LeagueBySlug resolves a league path segment. The boolean reports
// whether the slug is known.
func LeagueBySlug(slug string) (League, bool) {
	for _, l := range leagues {
		if l.Slug == slug {
			return l, true
		}
	}
	return League{}, false
}

const fetchTimeout = 10 * time.Second
