// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package service

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/adapter"
	"github.com/passhold/vault-engine/internal/crypto"
	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/internal/store"
	"github.com/passhold/vault-engine/models"
)

type shareRepository struct {
	shares      store.ShareDatasource
	shareKeys   store.ShareKeyDatasource
	remote      adapter.RemoteDatasource
	codec       crypto.VaultRequestCodec
	cacheCipher crypto.CacheCipher
}

// NewShareRepository constructs the cache-aside [ShareRepository]. The
// user the cache is scoped to is whoever the remote datasource holds a
// session token for.
func NewShareRepository(
	shares store.ShareDatasource,
	shareKeys store.ShareKeyDatasource,
	remote adapter.RemoteDatasource,
	codec crypto.VaultRequestCodec,
	cacheCipher crypto.CacheCipher,
) ShareRepository {
	return &shareRepository{
		shares:      shares,
		shareKeys:   shareKeys,
		remote:      remote,
		codec:       codec,
		cacheCipher: cacheCipher,
	}
}

// GetShares implements [ShareRepository]. An empty local result is the
// only cache-miss signal: an account that genuinely has zero shares
// re-fetches on every call until it gains one.
func (r *shareRepository) GetShares(ctx context.Context, forceUpdate bool) ([]models.Share, error) {
	if forceUpdate {
		return r.fetchRemoteSharesThenCache(ctx)
	}

	local, err := r.shares.GetAllShares(ctx, r.remote.UserID())
	if err != nil {
		return nil, fmt.Errorf("fetch cached shares: %w", err)
	}
	if len(local) == 0 {
		return r.fetchRemoteSharesThenCache(ctx)
	}

	return r.decryptCachedShares(local)
}

// fetchRemoteSharesThenCache persists the fetched shares before
// returning them, so the next non-forced call observes this result.
func (r *shareRepository) fetchRemoteSharesThenCache(ctx context.Context) ([]models.Share, error) {
	log := logger.FromContext(ctx)

	shares, err := r.remote.GetShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch remote shares: %w", err)
	}

	encrypted, err := r.encryptSharesForCache(shares)
	if err != nil {
		return nil, err
	}

	if err = r.shares.UpsertShares(ctx, r.remote.UserID(), encrypted...); err != nil {
		return nil, fmt.Errorf("cache fetched shares: %w", err)
	}

	log.Debug().
		Str("func", "shareRepository.fetchRemoteSharesThenCache").
		Int("count", len(shares)).
		Msg("refreshed share cache from remote")

	return shares, nil
}

// GetShareKeys implements [ShareRepository].
func (r *shareRepository) GetShareKeys(ctx context.Context, forceUpdate bool, shareID string, page, pageSize int) ([]models.ShareKey, error) {
	if forceUpdate {
		return r.fetchRemoteShareKeysThenCache(ctx, shareID, page, pageSize)
	}

	local, err := r.shareKeys.GetShareKeys(ctx, shareID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch cached share keys: %w", err)
	}
	if len(local) == 0 {
		return r.fetchRemoteShareKeysThenCache(ctx, shareID, page, pageSize)
	}

	return local, nil
}

func (r *shareRepository) fetchRemoteShareKeysThenCache(ctx context.Context, shareID string, page, pageSize int) ([]models.ShareKey, error) {
	keys, err := r.remote.GetShareKeys(ctx, shareID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch remote share keys: %w", err)
	}

	if err = r.shareKeys.UpsertShareKeys(ctx, shareID, keys...); err != nil {
		return nil, fmt.Errorf("cache fetched share keys: %w", err)
	}

	return keys, nil
}

// LatestShareKey implements [ShareRepository].
func (r *shareRepository) LatestShareKey(ctx context.Context, shareID string) (models.ShareKey, error) {
	keys, err := r.GetShareKeys(ctx, false, shareID, 0, 0)
	if err != nil {
		return models.ShareKey{}, err
	}
	if len(keys) == 0 {
		return models.ShareKey{}, fmt.Errorf("%w (share_id=%s)", ErrNoShareKey, shareID)
	}

	latest := keys[0]
	for _, key := range keys[1:] {
		if key.KeyRotation > latest.KeyRotation {
			latest = key
		}
	}

	return latest, nil
}

// CreateVault implements [ShareRepository]. Key material only exists
// inside the codec call; by the time anything is cached, the request
// has already been accepted by the server.
func (r *shareRepository) CreateVault(ctx context.Context, addressKey models.AddressKey, vault models.VaultContent) (models.Share, error) {
	log := logger.FromContext(ctx)

	request, err := r.codec.EncodeCreateVaultRequest(addressKey, vault)
	if err != nil {
		return models.Share{}, fmt.Errorf("encode create vault request: %w", err)
	}

	share, err := r.remote.CreateVault(ctx, request)
	if err != nil {
		return models.Share{}, fmt.Errorf("create vault: %w", err)
	}

	if err = r.cacheShare(ctx, share); err != nil {
		return models.Share{}, err
	}

	log.Info().
		Str("func", "shareRepository.CreateVault").
		Str("share_id", share.ShareID).
		Msg("vault created")

	return share, nil
}

// EditVault implements [ShareRepository].
func (r *shareRepository) EditVault(ctx context.Context, shareID string, vault models.VaultContent) (models.Share, error) {
	shareKey, err := r.LatestShareKey(ctx, shareID)
	if err != nil {
		return models.Share{}, err
	}

	request, err := r.codec.EncodeUpdateVaultRequest(vault, shareKey)
	if err != nil {
		return models.Share{}, fmt.Errorf("encode update vault request: %w", err)
	}

	share, err := r.remote.UpdateVault(ctx, shareID, request)
	if err != nil {
		return models.Share{}, fmt.Errorf("update vault: %w", err)
	}

	if err = r.cacheShare(ctx, share); err != nil {
		return models.Share{}, err
	}

	return share, nil
}

// DeleteVault implements [ShareRepository]. Remote first: a share must
// never disappear locally while the server still serves it.
func (r *shareRepository) DeleteVault(ctx context.Context, shareID string) error {
	if err := r.remote.DeleteVault(ctx, shareID); err != nil {
		return fmt.Errorf("delete vault: %w", err)
	}

	if err := r.shares.RemoveShare(ctx, r.remote.UserID(), shareID); err != nil {
		return fmt.Errorf("remove cached share: %w", err)
	}

	return nil
}

// DeleteAllLocalShares implements [ShareRepository].
func (r *shareRepository) DeleteAllLocalShares(ctx context.Context) error {
	if err := r.shares.RemoveAllShares(ctx, r.remote.UserID()); err != nil {
		return fmt.Errorf("remove cached shares: %w", err)
	}
	return nil
}

func (r *shareRepository) cacheShare(ctx context.Context, share models.Share) error {
	encrypted, err := r.encryptSharesForCache([]models.Share{share})
	if err != nil {
		return err
	}

	if err = r.shares.UpsertShares(ctx, r.remote.UserID(), encrypted...); err != nil {
		return fmt.Errorf("cache share: %w", err)
	}

	return nil
}

// encryptSharesForCache re-encrypts share content under the device key.
// The cache never persists content in the form the server serves it.
func (r *shareRepository) encryptSharesForCache(shares []models.Share) ([]models.EncryptedShare, error) {
	encrypted := make([]models.EncryptedShare, 0, len(shares))

	for _, share := range shares {
		es := models.EncryptedShare{Share: share}
		es.Content = ""

		if share.Content != "" {
			content, err := r.cacheCipher.EncryptString(share.Content)
			if err != nil {
				return nil, fmt.Errorf("encrypt share content for cache (share_id=%s): %w", share.ShareID, err)
			}
			es.EncryptedContent = content
		}

		encrypted = append(encrypted, es)
	}

	return encrypted, nil
}

func (r *shareRepository) decryptCachedShares(encrypted []models.EncryptedShare) ([]models.Share, error) {
	shares := make([]models.Share, 0, len(encrypted))

	for _, es := range encrypted {
		share := es.Share

		if es.EncryptedContent != "" {
			content, err := r.cacheCipher.DecryptString(es.EncryptedContent)
			if err != nil {
				return nil, fmt.Errorf("decrypt cached share content (share_id=%s): %w", es.ShareID, err)
			}
			share.Content = content
		}

		shares = append(shares, share)
	}

	return shares, nil
}
