package store

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/config"
	"github.com/passhold/vault-engine/internal/logger"
)

// Storages groups the local cache repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Shares is the SQLite-backed datasource for device-encrypted shares.
	Shares ShareDatasource

	// ShareKeys is the datasource for cached share key rotations.
	ShareKeys ShareKeyDatasource

	// Credentials is the datasource for the autofill credential index.
	Credentials CredentialDatasource
}

// NewStorages initialises the local cache layer using the supplied
// configuration and logger. It opens an SQLite connection to the file
// path in cfg.DB.DSN (creating the file if needed), runs pending schema
// migrations via [DB.Migrate], and wires up the repositories.
func NewStorages(cfg config.EnvironmentStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Shares:      NewShareRepository(db, logger),
		ShareKeys:   NewShareKeyRepository(db, logger),
		Credentials: NewCredentialRepository(db, logger),
	}, nil
}
