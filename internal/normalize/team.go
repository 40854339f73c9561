package normalize

import "strings"

// teamAliases maps known ambiguous short names to their full form.
// This is deliberately a closed set: feeds only ever use a handful of
// short names, and fuzzy matching would risk merging distinct clubs.
var teamAliases = map[string]string{
	"souths":    "southsydneyrabbitohs",
	"rabbitohs": "southsydneyrabbitohs",
	"manly":     "manlywarringahseaeagles",
	"seaeagles": "manlywarringahseaeagles",
	"eels":      "parramattaeels",
	"panthers":  "penrithpanthers",
	"broncos":   "brisbanebroncos",
	"storm":     "melbournestorm",
	"warriors":  "newzealandwarriors",
	"roosters":  "sydneyroosters",
}

// TeamKey canonicalizes a team name for matching: lowercase, strip
// everything outside [a-z0-9], then resolve known short-name aliases.
func TeamKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	key := b.String()

	if full, ok := teamAliases[key]; ok {
		return full
	}
	return key
}
