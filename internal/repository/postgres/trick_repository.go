package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type trickRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrickRepository(db *DB) repository.TrickRepository {
	return &trickRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *trickRepository) ListBySpotTypes(ctx context.Context, spotTypes []string, limit int) ([]*domain.Trick, error) {
	query := `
		SELECT id, name, category, difficulty, spot_types
		FROM tricks
		WHERE spot_types && $1
		ORDER BY difficulty, name
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(spotTypes), limit)
	if err != nil {
		r.logger.Error("Failed to list tricks", zap.Strings("spot_types", spotTypes), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	defer rows.Close()

	var tricks []*domain.Trick
	for rows.Next() {
		var t domain.Trick
		var types pq.StringArray
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Difficulty, &types); err != nil {
			r.logger.Error("Failed to scan trick", zap.Error(err))
			continue
		}
		t.SpotTypes = []string(types)
		tricks = append(tricks, &t)
	}

	return tricks, rows.Err()
}

func (r *trickRepository) GetDailyChallenge(ctx context.Context, day string) (*domain.DailyChallenge, error) {
	query := `
		SELECT
			c.id, c.challenge_date, c.bonus_points,
			t.id, t.name, t.category, t.difficulty, t.spot_types
		FROM daily_challenges c
		JOIN tricks t ON t.id = c.trick_id
		WHERE c.challenge_date = $1
	`

	var ch domain.DailyChallenge
	var types pq.StringArray
	err := r.db.QueryRowContext(ctx, query, day).Scan(
		&ch.ID, &ch.ChallengeDate, &ch.BonusPoints,
		&ch.Trick.ID, &ch.Trick.Name, &ch.Trick.Category, &ch.Trick.Difficulty, &types,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrChallengeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get daily challenge", zap.String("day", day), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	ch.Trick.SpotTypes = []string(types)
	return &ch, nil
}
