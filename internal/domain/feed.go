package domain

import "time"

// NewsItem is a normalized article from an upstream news feed. It is
// built fresh per request and never persisted.
type NewsItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	League      string    `json:"league"`
	PublishedAt time.Time `json:"published_at"`
	Image       string    `json:"image,omitempty"`
}

// Fixture is a scheduled or completed match between two teams. Used to
// compute a deduplication key; not persisted.
type Fixture struct {
	Date      string `json:"date"` // YYYY-MM-DD, may be empty
	Time      string `json:"time,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"` // unix seconds, 0 if unknown
	League    string `json:"league"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeLogo  string `json:"home_logo,omitempty"`
	AwayLogo  string `json:"away_logo,omitempty"`
	HomeScore string `json:"home_score,omitempty"`
	AwayScore string `json:"away_score,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Standing is one row of a league ladder.
type Standing struct {
	Rank          int    `json:"rank"`
	Team          string `json:"team"`
	Logo          string `json:"logo,omitempty"`
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	Points        int    `json:"points"`
}

// Player is one squad member from a roster feed.
type Player struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position,omitempty"`
	Photo    string `json:"photo,omitempty"`
}
