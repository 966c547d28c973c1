// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/internal/store"
	"github.com/passhold/vault-engine/internal/urlmatch"
	"github.com/passhold/vault-engine/models"
)

type credentialRankUpdater struct {
	credentials store.CredentialDatasource
}

// NewCredentialRankUpdater constructs the [CredentialRankUpdater] on
// top of the local credential index.
func NewCredentialRankUpdater(credentials store.CredentialDatasource) CredentialRankUpdater {
	return &credentialRankUpdater{credentials: credentials}
}

// UpdateCredentialRank implements [CredentialRankUpdater]. Unparsable
// item URLs are dropped silently: partial matching is the intended
// behavior, not an error.
func (c *credentialRankUpdater) UpdateCredentialRank(ctx context.Context, item models.ItemContent, identifiers []models.ServiceIdentifier, lastUseTime time.Time) error {
	log := logger.FromContext(ctx)

	if !item.IsLogin() {
		return fmt.Errorf("%w (item_id=%s)", ErrNotLoginItem, item.ItemID)
	}

	itemURLs := parsableURLs(item.Login.URLs)

	requested := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		requested = append(requested, urlmatch.NormalizeServiceIdentifier(ctx, identifier))
	}

	// Existential match: an item URL qualifies as soon as any requested
	// URL matches it.
	var rows []models.AutoFillCredential
	for _, itemURL := range itemURLs {
		if !matchesAny(itemURL, requested) {
			continue
		}
		rows = append(rows, models.AutoFillCredential{
			ShareID:     item.ShareID,
			ItemID:      item.ItemID,
			Username:    item.Login.Username,
			URL:         itemURL,
			LastUseTime: lastUseTime.Unix(),
		})
	}

	if len(rows) == 0 {
		// The OS simply will not suggest this item for the identifier.
		log.Debug().
			Str("func", "credentialRankUpdater.UpdateCredentialRank").
			Str("item_id", item.ItemID).
			Msg("no item url matched the requested service, nothing to rank")
		return nil
	}

	if err := c.credentials.UpsertCredentials(ctx, rows...); err != nil {
		return fmt.Errorf("persist credential ranking: %w", err)
	}

	return nil
}

// ReindexAllCredentials implements [CredentialRankUpdater]. The rebuilt
// rows carry a zero last-use time: ranking history does not survive a
// re-population.
func (c *credentialRankUpdater) ReindexAllCredentials(ctx context.Context, items ...models.ItemContent) error {
	if err := c.credentials.RemoveAllCredentials(ctx); err != nil {
		return fmt.Errorf("clear credential index: %w", err)
	}

	var rows []models.AutoFillCredential
	for _, item := range items {
		if !item.IsLogin() {
			continue
		}
		for _, itemURL := range parsableURLs(item.Login.URLs) {
			rows = append(rows, models.AutoFillCredential{
				ShareID:  item.ShareID,
				ItemID:   item.ItemID,
				Username: item.Login.Username,
				URL:      itemURL,
			})
		}
	}

	if err := c.credentials.UpsertCredentials(ctx, rows...); err != nil {
		return fmt.Errorf("rebuild credential index: %w", err)
	}

	return nil
}

func parsableURLs(raw []string) []string {
	parsed := make([]string, 0, len(raw))
	for _, candidate := range raw {
		u, err := url.Parse(candidate)
		if err != nil || u.Host == "" {
			continue
		}
		parsed = append(parsed, candidate)
	}
	return parsed
}

func matchesAny(itemURL string, requested []string) bool {
	for _, requestedURL := range requested {
		if urlmatch.Match(itemURL, requestedURL) == urlmatch.Matched {
			return true
		}
	}
	return false
}
