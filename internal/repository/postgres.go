package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wemoment-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSnapshotRepository stores the state document in the app_snapshots table
type PostgresSnapshotRepository struct {
	db  *pgxpool.Pool
	key string
}

// NewPostgresSnapshotRepository creates a new snapshot repository
func NewPostgresSnapshotRepository(db *pgxpool.Pool, key string) *PostgresSnapshotRepository {
	if key == "" {
		key = DefaultKey
	}
	return &PostgresSnapshotRepository{db: db, key: key}
}

// Load retrieves the stored state, or nil when no usable row exists
func (r *PostgresSnapshotRepository) Load(ctx context.Context) (*models.AppState, error) {
	query := `
		SELECT data
		FROM app_snapshots
		WHERE key = $1
	`
	var data []byte
	err := r.db.QueryRow(ctx, query, r.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return decodeSnapshot(r.key, data), nil
}

// Save upserts the full state document
func (r *PostgresSnapshotRepository) Save(ctx context.Context, state models.AppState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO app_snapshots (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, r.key, data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Clear deletes the stored document
func (r *PostgresSnapshotRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM app_snapshots WHERE key = $1`
	if _, err := r.db.Exec(ctx, query, r.key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
