package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cern1991/rugby-league-central/internal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, password_hash, totp_enabled, totp_secret,
	subscription_status, favorite_teams, theme, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u           domain.User
		totpEnabled sql.NullTime
		totpSecret  sql.NullString
		status      string
		teamsRaw    string
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &totpEnabled, &totpSecret,
		&status, &teamsRaw, &u.Theme, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.TOTPEnabled = mapNullTimePtr(totpEnabled)
	u.TOTPSecret = mapNullStringPtr(totpSecret)
	u.SubscriptionStatus = domain.SubscriptionStatus(status)

	u.FavoriteTeams, err = decodeTeams(teamsRaw)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	teams, err := encodeTeams(u.FavoriteTeams)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, totp_enabled, totp_secret,
			subscription_status, favorite_teams, theme, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash,
		sql.NullTime{}, mapOptionalString(u.TOTPSecret),
		string(u.SubscriptionStatus), teams, u.Theme,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	// email is COLLATE NOCASE so lookups are case-insensitive at the
	// database level.
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpdatePreferences(ctx context.Context, userID string, favoriteTeams []string, theme string) error {
	teams, err := encodeTeams(favoriteTeams)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET favorite_teams = ?, theme = ?, updated_at = ?
		WHERE id = ?`,
		teams, theme, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateTOTPSecret(ctx context.Context, userID, secret string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET totp_secret = ?, updated_at = ?
		WHERE id = ?`,
		secret, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) EnableTOTP(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET totp_enabled = ?, updated_at = ?
		WHERE id = ? AND totp_secret IS NOT NULL`,
		time.Now().UTC(), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) DisableTOTP(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET totp_enabled = NULL, totp_secret = NULL, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateSubscriptionStatus(ctx context.Context, userID string, status domain.SubscriptionStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET subscription_status = ?, updated_at = ?
		WHERE id = ?`,
		string(status), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}
