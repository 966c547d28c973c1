package service

import (
	"context"
	"time"

	"github.com/passhold/vault-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ShareRepository coordinates the user's shares between the remote API
// and the local cache. Reads are cache-aside: the cache is consulted
// first unless the caller forces a refresh, and every remote fetch is
// persisted before it is returned so the next non-forced call observes
// it.
type ShareRepository interface {
	// GetShares returns the user's shares. With forceUpdate the remote
	// is always hit and the cache overwritten; otherwise the cache
	// serves the call unless it is empty.
	GetShares(ctx context.Context, forceUpdate bool) ([]models.Share, error)

	// GetShareKeys returns one page of a share's key rotations with the
	// same cache-aside semantics as GetShares. An empty page means the
	// share has no key material, not "wrong page".
	GetShareKeys(ctx context.Context, forceUpdate bool, shareID string, page, pageSize int) ([]models.ShareKey, error)

	// LatestShareKey returns the key of the highest known rotation for
	// the share. Fails with [ErrNoShareKey] if the share has none.
	LatestShareKey(ctx context.Context, shareID string) (models.ShareKey, error)

	// CreateVault builds the encrypted creation payload for a new
	// vault, submits it, and caches the share the server answers with.
	CreateVault(ctx context.Context, addressKey models.AddressKey, vault models.VaultContent) (models.Share, error)

	// EditVault re-encrypts the vault metadata under the share's latest
	// key rotation, submits it, and caches the updated share.
	EditVault(ctx context.Context, shareID string, vault models.VaultContent) (models.Share, error)

	// DeleteVault deletes the vault remotely, then drops its share from
	// the cache.
	DeleteVault(ctx context.Context, shareID string) error

	// DeleteAllLocalShares empties the user's local cache. Called on
	// logout; the remote is not touched.
	DeleteAllLocalShares(ctx context.Context) error
}

// CredentialRankUpdater maintains the local index the OS reads ranked
// credential suggestions from.
type CredentialRankUpdater interface {
	// UpdateCredentialRank records that item was autofilled for the
	// given service identifiers at lastUseTime. One credential row is
	// written per item URL that matches any identifier; zero matches is
	// a success, not an error. Fails with [ErrNotLoginItem] for
	// non-login items.
	UpdateCredentialRank(ctx context.Context, item models.ItemContent, identifiers []models.ServiceIdentifier, lastUseTime time.Time) error

	// ReindexAllCredentials rebuilds the whole index from the given
	// items: the existing rows are dropped and one row is written per
	// parsable URL of every login item. Non-login items are skipped.
	ReindexAllCredentials(ctx context.Context, items ...models.ItemContent) error
}

// AutofillService normalizes OS credential requests and serves the
// ranked credential list to the autofill extension.
type AutofillService interface {
	// NormalizeRequest reduces a platform credential request to the
	// engine's single request shape. It returns nil for passkey
	// registrations and unrecognized request kinds, and also when a
	// recognized request carries an identity payload of the wrong type.
	NormalizeRequest(request models.OSCredentialRequest) *models.AutoFillRequest

	// Credentials returns every indexed credential, most recently used
	// first.
	Credentials(ctx context.Context) ([]models.AutoFillCredential, error)
}
