package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type collectionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCollectionRepository(db *DB) repository.CollectionRepository {
	return &collectionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *collectionRepository) Create(ctx context.Context, collection *domain.Collection) error {
	query := `
		INSERT INTO collections (id, user_id, name, description, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		collection.ID, collection.UserID, collection.Name, collection.Description,
		collection.IsPublic, collection.CreatedAt, collection.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create collection", zap.String("id", collection.ID), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	query := `
		SELECT
			c.id, c.user_id, c.name, c.description, c.is_public,
			(SELECT COUNT(*) FROM collection_spots cs WHERE cs.collection_id = c.id) AS spot_count,
			c.created_at, c.updated_at
		FROM collections c
		WHERE c.id = $1
	`

	var col domain.Collection
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&col.ID, &col.UserID, &col.Name, &col.Description, &col.IsPublic,
		&col.SpotCount, &col.CreatedAt, &col.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCollectionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get collection", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return &col, nil
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Collection, error) {
	query := `
		SELECT
			c.id, c.user_id, c.name, c.description, c.is_public,
			(SELECT COUNT(*) FROM collection_spots cs WHERE cs.collection_id = c.id) AS spot_count,
			c.created_at, c.updated_at
		FROM collections c
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list collections", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	defer rows.Close()

	var collections []*domain.Collection
	for rows.Next() {
		var col domain.Collection
		if err := rows.Scan(
			&col.ID, &col.UserID, &col.Name, &col.Description, &col.IsPublic,
			&col.SpotCount, &col.CreatedAt, &col.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan collection", zap.Error(err))
			continue
		}
		collections = append(collections, &col)
	}

	return collections, rows.Err()
}

func (r *collectionRepository) AddSpot(ctx context.Context, collectionID, spotID string) error {
	query := `
		INSERT INTO collection_spots (collection_id, spot_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (collection_id, spot_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, collectionID, spotID); err != nil {
		r.logger.Error("Failed to add spot to collection",
			zap.String("collection_id", collectionID),
			zap.String("spot_id", spotID),
			zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func (r *collectionRepository) RemoveSpot(ctx context.Context, collectionID, spotID string) error {
	query := "DELETE FROM collection_spots WHERE collection_id = $1 AND spot_id = $2"

	if _, err := r.db.ExecContext(ctx, query, collectionID, spotID); err != nil {
		r.logger.Error("Failed to remove spot from collection",
			zap.String("collection_id", collectionID),
			zap.String("spot_id", spotID),
			zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}
