package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForTeam(t *testing.T) {
	tests := []struct {
		name string
		team string
		want Theme
	}{
		{"known team", "South Sydney Rabbitohs", Cardinal},
		{"alias spelling", "Souths", Cardinal},
		{"unknown team defaults", "Wigan Warriors", Default},
		{"empty defaults", "", Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ForTeam(tt.team))
		})
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, Dark, Normalize("dark"))
	require.Equal(t, Default, Normalize("classic"))
	require.Equal(t, Default, Normalize("neon-zebra"))
	require.Equal(t, Default, Normalize(""))
}
