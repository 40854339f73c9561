package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPreferencesUpdate(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuthService(t)
	prefs := &PreferencesService{Store: st}

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	teams := []string{"Broncos", "Storm", "Broncos", "Eels"}
	updated, err := prefs.Update(ctx, user.ID, teams, "dark")
	require.NoError(t, err)
	require.Equal(t, teams, updated.FavoriteTeams, "order and duplicates preserved")
	require.Equal(t, "dark", updated.Theme)
	require.WithinDuration(t, user.CreatedAt, updated.CreatedAt, time.Second, "created_at is immutable")
}

func TestPreferencesUpdate_FullOverwrite(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuthService(t)
	prefs := &PreferencesService{Store: st}

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	_, err = prefs.Update(ctx, user.ID, []string{"Broncos", "Storm"}, "dark")
	require.NoError(t, err)

	updated, err := prefs.Update(ctx, user.ID, []string{"Warriors"}, "dark")
	require.NoError(t, err)
	require.Equal(t, []string{"Warriors"}, updated.FavoriteTeams, "update replaces, never merges")

	updated, err = prefs.Update(ctx, user.ID, nil, "dark")
	require.NoError(t, err)
	require.Empty(t, updated.FavoriteTeams, "nil clears the list")
}

func TestPreferencesUpdate_UnknownThemeFallsBack(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuthService(t)
	prefs := &PreferencesService{Store: st}

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	updated, err := prefs.Update(ctx, user.ID, []string{}, "neon-zebra")
	require.NoError(t, err)
	require.Equal(t, "classic", updated.Theme)
}

func TestPreferencesUpdate_TooManyTeams(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuthService(t)
	prefs := &PreferencesService{Store: st}

	reg, err := auth.Register(ctx, "fan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	user := reg.User

	teams := make([]string, maxFavoriteTeams+1)
	for i := range teams {
		teams[i] = "Team"
	}
	_, err = prefs.Update(ctx, user.ID, teams, "dark")
	require.ErrorIs(t, err, ErrTooManyTeams)
}

func TestPreferencesUpdate_MissingUser(t *testing.T) {
	ctx := context.Background()
	_, st := newAuthService(t)
	prefs := &PreferencesService{Store: st}

	_, err := prefs.Update(ctx, "missing", []string{"Broncos"}, "dark")
	require.ErrorIs(t, err, ErrUserNotFound)
}
