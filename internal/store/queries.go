// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/passhold/vault-engine/models"
)

var shareColumns = []string{
	"user_id",
	"share_id",
	"vault_id",
	"address_id",
	"target_type",
	"target_id",
	"permission",
	"share_role_id",
	"owner",
	"shared",
	"target_members",
	"target_max_members",
	"content",
	"content_key_rotation",
	"content_format_version",
	"create_time",
	"expire_time",
}

// buildUpsertShareQuery builds the per-row share upsert. The content
// column always carries the device-encrypted form.
func buildUpsertShareQuery(userID string, share models.EncryptedShare) (string, []any, error) {
	return sq.Insert("shares").
		Columns(shareColumns...).
		Values(
			userID,
			share.ShareID,
			share.VaultID,
			share.AddressID,
			share.TargetType,
			share.TargetID,
			share.Permission,
			share.ShareRoleID,
			share.Owner,
			share.Shared,
			share.TargetMembers,
			share.TargetMaxMembers,
			share.EncryptedContent,
			share.ContentKeyRotation,
			share.ContentFormatVersion,
			share.CreateTime,
			share.ExpireTime,
		).
		Suffix(`ON CONFLICT (user_id, share_id) DO UPDATE SET
			vault_id               = excluded.vault_id,
			address_id             = excluded.address_id,
			target_type            = excluded.target_type,
			target_id              = excluded.target_id,
			permission             = excluded.permission,
			share_role_id          = excluded.share_role_id,
			owner                  = excluded.owner,
			shared                 = excluded.shared,
			target_members         = excluded.target_members,
			target_max_members     = excluded.target_max_members,
			content                = excluded.content,
			content_key_rotation   = excluded.content_key_rotation,
			content_format_version = excluded.content_format_version,
			create_time            = excluded.create_time,
			expire_time            = excluded.expire_time`).
		ToSql()
}

func buildGetAllSharesQuery(userID string) (string, []any, error) {
	return sq.Select(shareColumns[1:]...).
		From("shares").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("create_time ASC", "share_id ASC").
		ToSql()
}

func buildRemoveAllSharesQuery(userID string) (string, []any, error) {
	return sq.Delete("shares").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildRemoveShareQuery(userID, shareID string) (string, []any, error) {
	return sq.Delete("shares").
		Where(sq.Eq{"user_id": userID, "share_id": shareID}).
		ToSql()
}

func buildUpsertShareKeyQuery(shareID string, key models.ShareKey) (string, []any, error) {
	return sq.Insert("share_keys").
		Columns("share_id", "key_rotation", "key", "user_key_id", "create_time").
		Values(shareID, key.KeyRotation, key.Key, key.UserKeyID, key.CreateTime).
		Suffix(`ON CONFLICT (share_id, key_rotation) DO UPDATE SET
			key         = excluded.key,
			user_key_id = excluded.user_key_id,
			create_time = excluded.create_time`).
		ToSql()
}

func buildGetShareKeysQuery(shareID string, page, pageSize int) (string, []any, error) {
	query := sq.Select("key_rotation", "key", "user_key_id", "create_time").
		From("share_keys").
		Where(sq.Eq{"share_id": shareID}).
		OrderBy("key_rotation ASC")

	if pageSize > 0 {
		query = query.Limit(uint64(pageSize)).Offset(uint64(page) * uint64(pageSize))
	}

	return query.ToSql()
}

func buildUpsertCredentialQuery(credential models.AutoFillCredential) (string, []any, error) {
	return sq.Insert("autofill_credentials").
		Columns("share_id", "item_id", "username", "url", "last_use_time").
		Values(credential.ShareID, credential.ItemID, credential.Username, credential.URL, credential.LastUseTime).
		Suffix(`ON CONFLICT (share_id, item_id, url) DO UPDATE SET
			username      = excluded.username,
			last_use_time = excluded.last_use_time`).
		ToSql()
}

func buildGetAllCredentialsQuery() (string, []any, error) {
	return sq.Select("share_id", "item_id", "username", "url", "last_use_time").
		From("autofill_credentials").
		OrderBy("last_use_time DESC", "share_id ASC", "item_id ASC").
		ToSql()
}

func buildRemoveAllCredentialsQuery() (string, []any, error) {
	return sq.Delete("autofill_credentials").ToSql()
}
