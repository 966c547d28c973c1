package store

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/models"
)

type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs the SQLite-backed [ShareDatasource].
func NewShareRepository(db *DB, logger *logger.Logger) ShareDatasource {
	return &shareRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertShares implements [ShareDatasource]. The batch is written in a
// single transaction: either every share lands in the cache or none
// does, so a half-synced share list can never be observed.
func (s *shareRepository) UpsertShares(ctx context.Context, userID string, shares ...models.EncryptedShare) error {
	log := logger.FromContext(ctx)

	if len(shares) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.UpsertShares").
			Str("user_id", userID).
			Msg("failed to begin upsert transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, share := range shares {
		query, args, buildErr := buildUpsertShareQuery(userID, share)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "shareRepository.UpsertShares").
				Str("user_id", userID).
				Str("share_id", share.ShareID).
				Msg("failed to execute upsert for share")
			return fmt.Errorf("%w (share_id=%s): %w", ErrBatchInsert, share.ShareID, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "shareRepository.UpsertShares").
			Str("user_id", userID).
			Msg("failed to commit upsert transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetAllShares implements [ShareDatasource]. An empty userID matches
// nothing by construction, so the query is skipped entirely.
func (s *shareRepository) GetAllShares(ctx context.Context, userID string) ([]models.EncryptedShare, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, nil
	}

	query, args, err := buildGetAllSharesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.GetAllShares").
			Str("user_id", userID).
			Msg("failed to execute query for getting all shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var shares []models.EncryptedShare

	for rows.Next() {
		var share models.EncryptedShare

		scanErr := rows.Scan(
			&share.ShareID,
			&share.VaultID,
			&share.AddressID,
			&share.TargetType,
			&share.TargetID,
			&share.Permission,
			&share.ShareRoleID,
			&share.Owner,
			&share.Shared,
			&share.TargetMembers,
			&share.TargetMaxMembers,
			&share.EncryptedContent,
			&share.ContentKeyRotation,
			&share.ContentFormatVersion,
			&share.CreateTime,
			&share.ExpireTime,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "shareRepository.GetAllShares").
				Str("user_id", userID).
				Msg("failed to scan share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "shareRepository.GetAllShares").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

// RemoveAllShares implements [ShareDatasource].
func (s *shareRepository) RemoveAllShares(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil
	}

	query, args, err := buildRemoveAllSharesQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "shareRepository.RemoveAllShares").
			Str("user_id", userID).
			Msg("failed to remove all shares")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveShare implements [ShareDatasource].
func (s *shareRepository) RemoveShare(ctx context.Context, userID, shareID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveShareQuery(userID, shareID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shareRepository.RemoveShare").
			Str("user_id", userID).
			Str("share_id", shareID).
			Msg("failed to remove share")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "shareRepository.RemoveShare").
			Str("user_id", userID).
			Str("share_id", shareID).
			Msg("no rows affected during share removal: share not cached")
		return fmt.Errorf("%w (share_id=%s)", ErrShareNotFound, shareID)
	}

	return nil
}
