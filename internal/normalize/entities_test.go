package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no entities", "Broncos beat Storm", "Broncos beat Storm"},
		{"named entities", "Souths &amp; Manly &ndash; &quot;derby&quot;", `Souths & Manly – "derby"`},
		{"apostrophe", "Eels&#39; win", "Eels' win"},
		{"nbsp", "round&nbsp;12", "round 12"},
		{"numeric reference", "caf&#233;", "café"},
		{"mdash numeric", "NRL &#8212; finals", "NRL — finals"},
		{"surrogate half resolves empty", "bad&#55296;ref", "badref"},
		{"out of range resolves empty", "x&#1114112;y", "xy"},
		{"unterminated reference untouched", "score &#39 points", "score &#39 points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeEntities(tt.in))
		})
	}
}

func TestDecodeEntities_NoEscapesRemain(t *testing.T) {
	in := "&amp;&quot;&#39;&nbsp;&ndash;&mdash;&#65;&#8211;"
	out := DecodeEntities(in)
	require.NotContains(t, out, "&amp;")
	require.NotContains(t, out, "&#")
	require.NotContains(t, out, "&quot;")
}
