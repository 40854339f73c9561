// Package theme maps team identities to named display themes. The
// lookup is an enumerated closed set with an explicit default, so an
// unknown team or preference string can never fall through as an
// undefined value.
package theme

import "github.com/cern1991/rugby-league-central/internal/normalize"

// Theme is a named display theme identifier.
type Theme string

const (
	Default  Theme = "classic"
	Dark     Theme = "dark"
	Light    Theme = "light"
	Cardinal Theme = "cardinal"
	Maroon   Theme = "maroon"
	Purple   Theme = "purple"
	SeaBlue  Theme = "sea-blue"
	Green    Theme = "green"
)

var known = map[Theme]struct{}{
	Default:  {},
	Dark:     {},
	Light:    {},
	Cardinal: {},
	Maroon:   {},
	Purple:   {},
	SeaBlue:  {},
	Green:    {},
}

// byTeamKey maps normalized team keys to their club theme.
var byTeamKey = map[string]Theme{
	"southsydneyrabbitohs":    Cardinal,
	"brisbanebroncos":         Maroon,
	"melbournestorm":          Purple,
	"manlywarringahseaeagles": SeaBlue,
	"canberraraiders":         Green,
	"penrithpanthers":         Dark,
}

// ForTeam returns the display theme associated with a team, or Default
// for teams without a club theme.
func ForTeam(team string) Theme {
	if t, ok := byTeamKey[normalize.TeamKey(team)]; ok {
		return t
	}
	return Default
}

// Normalize clamps an arbitrary preference string to a known theme,
// falling back to Default.
func Normalize(pref string) Theme {
	if _, ok := known[Theme(pref)]; ok {
		return Theme(pref)
	}
	return Default
}
