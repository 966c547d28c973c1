package store

import (
	"context"

	"github.com/passhold/vault-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ShareDatasource is the local cache of the user's shares. Rows are
// scoped by user so stale rows from a previous login never leak into
// the current session.
type ShareDatasource interface {
	// UpsertShares writes shares keyed by (user_id, share_id), all or
	// nothing. An empty slice is a no-op.
	UpsertShares(ctx context.Context, userID string, shares ...models.EncryptedShare) error

	// GetAllShares returns every cached share of the user. An empty
	// userID matches nothing and never touches the database.
	GetAllShares(ctx context.Context, userID string) ([]models.EncryptedShare, error)

	// RemoveAllShares drops every cached share of the user.
	RemoveAllShares(ctx context.Context, userID string) error

	// RemoveShare drops a single cached share.
	RemoveShare(ctx context.Context, userID, shareID string) error
}

// ShareKeyDatasource is the local cache of share key rotations.
type ShareKeyDatasource interface {
	// UpsertShareKeys writes key rotations for a share, all or nothing.
	UpsertShareKeys(ctx context.Context, shareID string, keys ...models.ShareKey) error

	// GetShareKeys returns one page of key rotations ordered by
	// rotation ascending. pageSize <= 0 returns everything.
	GetShareKeys(ctx context.Context, shareID string, page, pageSize int) ([]models.ShareKey, error)
}

// CredentialDatasource is the local index the OS autofill provider
// reads ranked credentials from.
type CredentialDatasource interface {
	// UpsertCredentials writes credential rows keyed by
	// (share_id, item_id, url), all or nothing. An empty slice is a
	// no-op.
	UpsertCredentials(ctx context.Context, credentials ...models.AutoFillCredential) error

	// GetAllCredentials returns every indexed credential.
	GetAllCredentials(ctx context.Context) ([]models.AutoFillCredential, error)

	// RemoveAllCredentials empties the index.
	RemoveAllCredentials(ctx context.Context) error
}
