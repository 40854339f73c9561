package normalize

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
)

// aggregatorHost is the news aggregator whose redirect links embed the
// real destination URL base64-encoded in the path.
const aggregatorHost = "news.google.com"

const articlesSegment = "/articles/"

// Restricted to valid URL characters so stray bytes in the decoded
// binary payload never bleed into a candidate.
var embeddedURLPattern = regexp.MustCompile(`https?://[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+`)

// DecodeAggregatorLink resolves an aggregator redirect link to the real
// article URL. Links from other hosts pass through unchanged, and any
// decode failure degrades to identity: the caller always gets a usable
// link back, at worst the original redirect.
func DecodeAggregatorLink(link string) string {
	if link == "" {
		return link
	}

	u, err := url.Parse(link)
	if err != nil || !isAggregatorHost(u.Host) {
		return link
	}

	i := strings.Index(u.Path, articlesSegment)
	if i < 0 {
		return link
	}
	payload := u.Path[i+len(articlesSegment):]
	if j := strings.IndexByte(payload, '/'); j >= 0 {
		payload = payload[:j]
	}
	if payload == "" {
		return link
	}

	raw, err := decodeURLSafeBase64(payload)
	if err != nil {
		return link
	}

	candidates := embeddedURLPattern.FindAllString(string(raw), -1)
	if len(candidates) == 0 {
		return link
	}

	for i, c := range candidates {
		candidates[i] = strings.TrimSpace(stripControlChars(c))
	}

	// AMP proxy URLs point at a cached copy, not the publisher.
	chosen := candidates[0]
	for _, c := range candidates {
		if !strings.Contains(c, "/amp/") {
			chosen = c
			break
		}
	}

	if _, err := url.ParseRequestURI(chosen); err != nil {
		return link
	}
	return chosen
}

func isAggregatorHost(host string) bool {
	host = strings.ToLower(host)
	return host == aggregatorHost || strings.HasSuffix(host, "."+aggregatorHost)
}

// decodeURLSafeBase64 translates the URL-safe alphabet back to standard
// base64 and pads to a multiple of 4 before decoding.
func decodeURLSafeBase64(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if pad := len(s) % 4; pad != 0 {
		s += strings.Repeat("=", 4-pad)
	}
	return base64.StdEncoding.DecodeString(s)
}

func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
