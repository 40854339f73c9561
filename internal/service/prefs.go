package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/store"
	"github.com/cern1991/rugby-league-central/internal/theme"
)

const maxFavoriteTeams = 50

var ErrTooManyTeams = fmt.Errorf("favorite teams list exceeds %d entries", maxFavoriteTeams)

// PreferencesService manages a user's favorite teams and theme.
type PreferencesService struct {
	Store store.Store
}

// Update overwrites the favorite teams list and theme in full. Order
// and duplicates in the list are preserved exactly as submitted; an
// unknown theme falls back to the default rather than failing.
func (s *PreferencesService) Update(ctx context.Context, userID string, favoriteTeams []string, themePref string) (domain.User, error) {
	if len(favoriteTeams) > maxFavoriteTeams {
		return domain.User{}, ErrTooManyTeams
	}
	if favoriteTeams == nil {
		favoriteTeams = []string{}
	}

	resolved := theme.Normalize(themePref)

	err := s.Store.Users().UpdatePreferences(ctx, userID, favoriteTeams, string(resolved))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("update preferences: %w", err)
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}
