package store

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/models"
)

type shareKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareKeyRepository constructs the SQLite-backed
// [ShareKeyDatasource].
func NewShareKeyRepository(db *DB, logger *logger.Logger) ShareKeyDatasource {
	return &shareKeyRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertShareKeys implements [ShareKeyDatasource]. Rotations are
// written in a single transaction, all or nothing.
func (s *shareKeyRepository) UpsertShareKeys(ctx context.Context, shareID string, keys ...models.ShareKey) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shareKeyRepository.UpsertShareKeys").
			Str("share_id", shareID).
			Msg("failed to begin upsert transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		query, args, buildErr := buildUpsertShareKeyQuery(shareID, key)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "shareKeyRepository.UpsertShareKeys").
				Str("share_id", shareID).
				Int64("key_rotation", key.KeyRotation).
				Msg("failed to execute upsert for share key")
			return fmt.Errorf("%w (key_rotation=%d): %w", ErrBatchInsert, key.KeyRotation, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "shareKeyRepository.UpsertShareKeys").
			Str("share_id", shareID).
			Msg("failed to commit upsert transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetShareKeys implements [ShareKeyDatasource].
func (s *shareKeyRepository) GetShareKeys(ctx context.Context, shareID string, page, pageSize int) ([]models.ShareKey, error) {
	log := logger.FromContext(ctx)

	if shareID == "" {
		return nil, nil
	}

	query, args, err := buildGetShareKeysQuery(shareID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shareKeyRepository.GetShareKeys").
			Str("share_id", shareID).
			Msg("failed to execute query for getting share keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.ShareKey

	for rows.Next() {
		var key models.ShareKey

		scanErr := rows.Scan(
			&key.KeyRotation,
			&key.Key,
			&key.UserKeyID,
			&key.CreateTime,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "shareKeyRepository.GetShareKeys").
				Str("share_id", shareID).
				Msg("failed to scan share key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		keys = append(keys, key)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "shareKeyRepository.GetShareKeys").
			Str("share_id", shareID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}
