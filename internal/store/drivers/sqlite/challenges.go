package sqlite

import (
	"context"
	"time"

	"github.com/cern1991/rugby-league-central/internal/domain"
)

type challengesRepo struct {
	db dbtx
}

const challengeColumns = `id, user_id, token_hash, attempts, expires_at, created_at`

func (r *challengesRepo) CreateChallenge(ctx context.Context, c domain.LoginChallenge) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO login_challenges (id, user_id, token_hash, attempts, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.TokenHash, c.Attempts, c.ExpiresAt, c.CreatedAt,
	)
	return err
}

func (r *challengesRepo) GetChallengeByTokenHash(ctx context.Context, hash string) (domain.LoginChallenge, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+challengeColumns+`
		FROM login_challenges
		WHERE token_hash = ? AND expires_at > ?`,
		hash, time.Now().UTC(),
	)

	var c domain.LoginChallenge
	err := row.Scan(&c.ID, &c.UserID, &c.TokenHash, &c.Attempts, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return domain.LoginChallenge{}, mapNotFound(err)
	}
	return c, nil
}

func (r *challengesRepo) IncrementChallengeAttempts(ctx context.Context, id string) (domain.LoginChallenge, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE login_challenges
		SET attempts = attempts + 1
		WHERE id = ?
		RETURNING `+challengeColumns,
		id,
	)

	var c domain.LoginChallenge
	err := row.Scan(&c.ID, &c.UserID, &c.TokenHash, &c.Attempts, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return domain.LoginChallenge{}, mapNotFound(err)
	}
	return c, nil
}

func (r *challengesRepo) DeleteChallenge(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM login_challenges WHERE id = ?`, id)
	return err
}

func (r *challengesRepo) DeleteExpiredChallenges(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM login_challenges WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
