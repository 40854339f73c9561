package normalize

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func aggregatorLink(t *testing.T, payload string) string {
	t.Helper()
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return "https://news.google.com/rss/articles/" + encoded + "?oc=5"
}

func TestDecodeAggregatorLink_RoundTrip(t *testing.T) {
	link := aggregatorLink(t, "\x08\x13\"https://example.com/story\xd2\x01\x00")
	require.Equal(t, "https://example.com/story", DecodeAggregatorLink(link))
}

func TestDecodeAggregatorLink_PrefersNonAMP(t *testing.T) {
	payload := "https://example.com/amp/story https://example.com/story"
	link := aggregatorLink(t, payload)
	require.Equal(t, "https://example.com/story", DecodeAggregatorLink(link))
}

func TestDecodeAggregatorLink_FallsBackToFirstCandidate(t *testing.T) {
	payload := "https://example.com/amp/one https://example.com/amp/two"
	link := aggregatorLink(t, payload)
	require.Equal(t, "https://example.com/amp/one", DecodeAggregatorLink(link))
}

func TestDecodeAggregatorLink_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		link string
	}{
		{"empty", ""},
		{"other host", "https://www.nrl.com/news/some-story"},
		{"aggregator without articles path", "https://news.google.com/topstories"},
		{"empty payload", "https://news.google.com/rss/articles/"},
		{"invalid base64", "https://news.google.com/rss/articles/!!!not-base64!!!"},
		{"no embedded url", aggregatorLinkStatic("just some text, no links here")},
		{"unparsable link", "ht tp://%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.link, DecodeAggregatorLink(tt.link))
		})
	}
}

func aggregatorLinkStatic(payload string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return "https://news.google.com/rss/articles/" + encoded
}

func TestDecodeAggregatorLink_StripsControlChars(t *testing.T) {
	payload := "https://example.com/story\x01\x02"
	link := aggregatorLink(t, payload)
	require.Equal(t, "https://example.com/story", DecodeAggregatorLink(link))
}
