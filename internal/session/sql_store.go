package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"phonekart/internal/logger"

	"go.uber.org/zap"
)

// SQLStore keeps client state in the client_state table so several kiosk
// terminals can share one device profile.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_state WHERE key = $1`,
		key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to load client state",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrFailedLoadState, err)
	}
	return value, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to save client state",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrFailedSaveState, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client_state WHERE key = $1`, key)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete client state",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrFailedDeleteState, err)
	}
	return nil
}
