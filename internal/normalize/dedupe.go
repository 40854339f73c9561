package normalize

import (
	"math"
	"time"

	"github.com/cern1991/rugby-league-central/internal/domain"
)

const unknownDate = "unknown-date"

type fixtureKey struct {
	date string
	home string
	away string
}

// DedupeFixtures collapses fixtures that describe the same real-world
// match under different team-name spellings. When two fixtures collide
// on (date, home, away), the one with both team logos wins; if logo
// completeness ties, the earlier kickoff wins. Output order is
// unspecified; callers needing a stable order must sort downstream.
func DedupeFixtures(fixtures []domain.Fixture) []domain.Fixture {
	byKey := make(map[fixtureKey]domain.Fixture, len(fixtures))

	for _, f := range fixtures {
		key := keyOf(f)
		existing, ok := byKey[key]
		if !ok {
			byKey[key] = f
			continue
		}
		byKey[key] = preferFixture(existing, f)
	}

	out := make([]domain.Fixture, 0, len(byKey))
	for _, f := range byKey {
		out = append(out, f)
	}
	return out
}

func keyOf(f domain.Fixture) fixtureKey {
	date := f.Date
	if date == "" {
		date = unknownDate
	}
	return fixtureKey{
		date: date,
		home: TeamKey(f.HomeTeam),
		away: TeamKey(f.AwayTeam),
	}
}

func preferFixture(a, b domain.Fixture) domain.Fixture {
	aComplete := hasBothLogos(a)
	bComplete := hasBothLogos(b)
	if aComplete != bComplete {
		if aComplete {
			return a
		}
		return b
	}

	if kickoffInstant(b) < kickoffInstant(a) {
		return b
	}
	return a
}

func hasBothLogos(f domain.Fixture) bool {
	return f.HomeLogo != "" && f.AwayLogo != ""
}

// kickoffInstant resolves a fixture to a single unix instant for
// tie-breaking. A numeric timestamp wins; otherwise date plus
// time-of-day (midnight default). Unparsable dates sort maximal so
// they are never preferred.
func kickoffInstant(f domain.Fixture) int64 {
	if f.Timestamp > 0 {
		return f.Timestamp
	}

	if f.Date == "" {
		return math.MaxInt64
	}
	clock := f.Time
	if clock == "" {
		clock = "00:00:00"
	}

	t, err := time.Parse("2006-01-02 15:04:05", f.Date+" "+clock)
	if err != nil {
		t, err = time.Parse("2006-01-02", f.Date)
		if err != nil {
			return math.MaxInt64
		}
	}
	return t.Unix()
}
