package adapter

import (
	"context"

	"github.com/passhold/vault-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteDatasource is the authenticated client of the vault API. It
// performs no caching and no retries; callers decide what to persist
// and when to try again.
type RemoteDatasource interface {
	// SetToken installs the session bearer token. The user ID is read
	// from the token's subject claim.
	SetToken(token string) error

	// UserID returns the subject of the installed token, or "" before
	// SetToken succeeds.
	UserID() string

	// GetShares fetches the user's share stubs and then the full detail
	// of every share in parallel. Any single failure fails the whole
	// call; a partial share list is never returned.
	GetShares(ctx context.Context) ([]models.Share, error)

	// GetShareKeys fetches one page of a share's key rotations.
	GetShareKeys(ctx context.Context, shareID string, page, pageSize int) ([]models.ShareKey, error)

	// CreateVault submits a vault creation payload and returns the
	// share granting access to the new vault.
	CreateVault(ctx context.Context, req models.CreateVaultRequest) (models.Share, error)

	// UpdateVault submits re-encrypted vault metadata for the share.
	UpdateVault(ctx context.Context, shareID string, req models.UpdateVaultRequest) (models.Share, error)

	// DeleteVault deletes the vault behind the share.
	DeleteVault(ctx context.Context, shareID string) error

	// CreateItem creates an item inside the share.
	CreateItem(ctx context.Context, shareID string, req models.CreateItemRequest) (models.ItemData, error)
}
