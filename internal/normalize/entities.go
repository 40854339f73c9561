// Package normalize reconciles messy third-party feed data into a
// stable shape: HTML entity cleanup, aggregator redirect link decoding,
// team name canonicalization and fixture deduplication. Every function
// here is total; a normalization failure degrades to a safe fallback
// and must never block display of a feed item.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// entityReplacer covers the named entities the news feeds actually emit.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&ndash;", "–",
	"&mdash;", "—",
)

var numericEntityPattern = regexp.MustCompile(`&#[0-9]+;`)

// DecodeEntities replaces a fixed set of named entities and numeric
// character references with their literal characters. Malformed numeric
// references resolve to empty string rather than failing.
func DecodeEntities(s string) string {
	if s == "" {
		return s
	}

	s = entityReplacer.Replace(s)

	return numericEntityPattern.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || n < 0 || n > 0x10FFFF || !isValidRune(rune(n)) {
			return ""
		}
		return string(rune(n))
	})
}

func isValidRune(r rune) bool {
	// Surrogate halves are not encodable characters.
	return r < 0xD800 || r > 0xDFFF
}
