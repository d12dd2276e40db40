package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type spotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpotRepository(db *DB) repository.SpotRepository {
	return &spotRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// spotFilter accumulates conjunctive WHERE clauses with positional args.
type spotFilter struct {
	clauses []string
	args    []interface{}
}

func (f *spotFilter) add(clause string, args ...interface{}) {
	n := len(f.args)
	for i := range args {
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", n+i+1), 1)
	}
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
}

func (f *spotFilter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

func buildSpotFilter(opts *domain.SpotQueryOptions) *spotFilter {
	f := &spotFilter{}

	f.add("s.status = ?", string(opts.Status))
	if opts.Type != "" {
		f.add("s.type = ?", string(opts.Type))
	}
	if opts.Surface != "" {
		f.add("s.surface = ?", opts.Surface)
	}
	if opts.Difficulty != "" {
		f.add("s.difficulty = ?", string(opts.Difficulty))
	}
	if opts.Verified != nil {
		f.add("s.verified = ?", *opts.Verified)
	}
	if opts.UserID != "" {
		f.add("s.user_id = ?", opts.UserID)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		f.add("(s.name ILIKE ? OR s.description ILIKE ?)", pattern, pattern)
	}
	if opts.MinSkateabilityScore != nil {
		f.add("s.skateability_score >= ?", *opts.MinSkateabilityScore)
	}
	if opts.Near != nil {
		// Geospatial radius search replaces the plain table scan; the remaining
		// filters still apply on top of it. Radius arrives in km, PostGIS
		// geography distances are meters.
		f.add(
			"ST_DWithin(s.geom::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			opts.Near.Longitude, opts.Near.Latitude, opts.Near.RadiusKm*1000,
		)
	}

	return f
}

func (r *spotRepository) List(ctx context.Context, opts *domain.SpotQueryOptions) ([]*domain.SpotRecord, int, error) {
	f := buildSpotFilter(opts)
	whereArgs := len(f.args)

	distExpr := "NULL::double precision"
	if opts.Near != nil {
		distExpr = fmt.Sprintf(
			"ST_Distance(s.geom::geography, ST_SetSRID(ST_MakePoint($%d, $%d), 4326)::geography) / 1000.0",
			whereArgs+1, whereArgs+2,
		)
		f.args = append(f.args, opts.Near.Longitude, opts.Near.Latitude)
	}

	countQuery := "SELECT COUNT(*) FROM spots s" + f.where()

	var total int
	// Count args are the WHERE args only (distance args trail them).
	if err := r.db.QueryRowContext(ctx, countQuery, f.args[:whereArgs]...).Scan(&total); err != nil {
		r.logger.Error("Failed to count spots", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError.Wrap(err)
	}

	n := len(f.args)
	query := fmt.Sprintf(`
		SELECT
			s.id, s.name, s.description, s.type, s.difficulty, s.surface,
			s.skateability_score, s.features, s.latitude, s.longitude, s.address,
			COALESCE(
				(SELECT array_agg(i.url ORDER BY i.is_primary DESC, i.position)
				 FROM spot_images i WHERE i.spot_id = s.id),
				'{}'
			) AS images,
			s.status, s.verified, s.user_id, %s AS distance_km,
			s.created_at, s.updated_at
		FROM spots s
		%s
		ORDER BY s.%s %s
		LIMIT $%d OFFSET $%d
	`, distExpr, f.where(), opts.SortBy, strings.ToUpper(opts.SortOrder), n+1, n+2)

	args := append(f.args, opts.Limit, opts.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list spots", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError.Wrap(err)
	}
	defer rows.Close()

	var records []*domain.SpotRecord
	for rows.Next() {
		rec, err := scanSpotRecord(rows)
		if err != nil {
			r.logger.Error("Failed to scan spot row", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError.Wrap(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Spot rows iteration failed", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError.Wrap(err)
	}

	return records, total, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*domain.SpotRecord, error) {
	query := `
		SELECT
			s.id, s.name, s.description, s.type, s.difficulty, s.surface,
			s.skateability_score, s.features, s.latitude, s.longitude, s.address,
			COALESCE(
				(SELECT array_agg(i.url ORDER BY i.is_primary DESC, i.position)
				 FROM spot_images i WHERE i.spot_id = s.id),
				'{}'
			) AS images,
			s.status, s.verified, s.user_id, NULL::double precision AS distance_km,
			s.created_at, s.updated_at
		FROM spots s
		WHERE s.id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	rec, err := scanSpotRecord(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get spot by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return rec, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	featuresJSON, err := json.Marshal(spot.Features)
	if err != nil {
		return errors.ErrDatabaseError.Wrap(err)
	}

	query := `
		INSERT INTO spots (
			id, name, description, type, difficulty, surface, skateability_score,
			features, latitude, longitude, geom, address, status, verified, user_id,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, ST_SetSRID(ST_MakePoint($10, $9), 4326), $11, $12, $13, $14,
			$15, $16
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		spot.ID, spot.Name, spot.Description, string(spot.Type), string(spot.Difficulty),
		spot.Surface, spot.SkateabilityScore, featuresJSON,
		spot.Location.Latitude, spot.Location.Longitude,
		spot.Address, string(spot.Status), spot.Verified, spot.UserID,
		spot.CreatedAt, spot.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create spot", zap.String("id", spot.ID), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func (r *spotRepository) Update(ctx context.Context, id string, update *domain.SpotUpdate) (*domain.SpotRecord, error) {
	set := []string{"updated_at = NOW()"}
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		addSet("name", *update.Name)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Type != nil {
		addSet("type", string(*update.Type))
	}
	if update.Difficulty != nil {
		addSet("difficulty", string(*update.Difficulty))
	}
	if update.Surface != nil {
		addSet("surface", *update.Surface)
	}
	if update.SkateabilityScore != nil {
		addSet("skateability_score", *update.SkateabilityScore)
	}
	if update.Features != nil {
		featuresJSON, err := json.Marshal(update.Features)
		if err != nil {
			return nil, errors.ErrDatabaseError.Wrap(err)
		}
		addSet("features", featuresJSON)
	}
	if update.Address != nil {
		addSet("address", *update.Address)
	}
	if update.Location != nil {
		addSet("latitude", update.Location.Latitude)
		addSet("longitude", update.Location.Longitude)
		args = append(args, update.Location.Longitude, update.Location.Latitude)
		set = append(set, fmt.Sprintf("geom = ST_SetSRID(ST_MakePoint($%d, $%d), 4326)", len(args)-1, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE spots SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update spot", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrSpotNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *spotRepository) SetStatus(ctx context.Context, id string, status domain.SpotStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE spots SET status = $1, updated_at = NOW() WHERE id = $2",
		string(status), id,
	)
	if err != nil {
		r.logger.Error("Failed to set spot status", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrSpotNotFound
	}
	return nil
}

func (r *spotRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE spots SET verified = $1, updated_at = NOW() WHERE id = $2",
		verified, id,
	)
	if err != nil {
		r.logger.Error("Failed to set spot verified", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrSpotNotFound
	}
	return nil
}

func (r *spotRepository) AddImages(ctx context.Context, spotID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	var hasPrimary bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM spot_images WHERE spot_id = $1 AND is_primary)",
		spotID,
	).Scan(&hasPrimary)
	if err != nil {
		r.logger.Error("Failed to check primary image", zap.String("spot_id", spotID), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	query := `
		INSERT INTO spot_images (id, spot_id, url, is_primary, position, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	for i, url := range urls {
		isPrimary := i == 0 && !hasPrimary
		if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), spotID, url, isPrimary, i); err != nil {
			r.logger.Error("Failed to link spot image",
				zap.String("spot_id", spotID),
				zap.String("url", url),
				zap.Error(err))
			return errors.ErrDatabaseError.Wrap(err)
		}
	}

	return nil
}

func (r *spotRepository) GetImages(ctx context.Context, spotID string) ([]*domain.SpotImage, error) {
	query := `
		SELECT id, spot_id, url, is_primary, position, created_at
		FROM spot_images
		WHERE spot_id = $1
		ORDER BY is_primary DESC, position
	`

	rows, err := r.db.QueryContext(ctx, query, spotID)
	if err != nil {
		r.logger.Error("Failed to get spot images", zap.String("spot_id", spotID), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	defer rows.Close()

	var images []*domain.SpotImage
	for rows.Next() {
		var img domain.SpotImage
		if err := rows.Scan(&img.ID, &img.SpotID, &img.URL, &img.IsPrimary, &img.Position, &img.CreatedAt); err != nil {
			r.logger.Error("Failed to scan spot image", zap.Error(err))
			continue
		}
		images = append(images, &img)
	}

	return images, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpotRecord(row rowScanner) (*domain.SpotRecord, error) {
	var rec domain.SpotRecord
	var featuresJSON []byte
	var images pq.StringArray

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Type, &rec.Difficulty, &rec.Surface,
		&rec.SkateabilityScore, &featuresJSON, &rec.Latitude, &rec.Longitude, &rec.Address,
		&images, &rec.Status, &rec.Verified, &rec.UserID, &rec.DistanceKm,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Images = []string(images)

	if len(featuresJSON) > 0 {
		features := domain.FeatureMap{}
		if err := json.Unmarshal(featuresJSON, &features); err == nil {
			rec.Features = features
		}
	}

	return &rec, nil
}
