package store

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs the SQLite-backed
// [CredentialDatasource].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialDatasource {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertCredentials implements [CredentialDatasource]. The batch is
// written in a single transaction, all or nothing.
func (c *credentialRepository) UpsertCredentials(ctx context.Context, credentials ...models.AutoFillCredential) error {
	log := logger.FromContext(ctx)

	if len(credentials) == 0 {
		return nil
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.UpsertCredentials").
			Msg("failed to begin upsert transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, credential := range credentials {
		query, args, buildErr := buildUpsertCredentialQuery(credential)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "credentialRepository.UpsertCredentials").
				Str("item_id", credential.ItemID).
				Str("url", credential.URL).
				Msg("failed to execute upsert for credential")
			return fmt.Errorf("%w (item_id=%s): %w", ErrBatchInsert, credential.ItemID, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.UpsertCredentials").
			Msg("failed to commit upsert transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetAllCredentials implements [CredentialDatasource]. Rows come back
// most recently used first, the order the autofill provider presents
// them in.
func (c *credentialRepository) GetAllCredentials(ctx context.Context) ([]models.AutoFillCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllCredentialsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.GetAllCredentials").
			Msg("failed to execute query for getting all credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.AutoFillCredential

	for rows.Next() {
		var credential models.AutoFillCredential

		scanErr := rows.Scan(
			&credential.ShareID,
			&credential.ItemID,
			&credential.Username,
			&credential.URL,
			&credential.LastUseTime,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.GetAllCredentials").
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.GetAllCredentials").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credentials, nil
}

// RemoveAllCredentials implements [CredentialDatasource].
func (c *credentialRepository) RemoveAllCredentials(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveAllCredentialsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.RemoveAllCredentials").
			Msg("failed to remove all credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
