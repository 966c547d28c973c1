package models

import "encoding/json"

// ShareTargetType discriminates what a share grants access to.
type ShareTargetType int

const (
	// ShareTargetVault is a share covering a whole vault.
	ShareTargetVault ShareTargetType = 1

	// ShareTargetItem is a share covering a single item.
	ShareTargetItem ShareTargetType = 2
)

// Share is the server-side representation of a vault or item-sharing
// grant. It is fetched in bulk from the remote datasource and cached
// locally; the server remains the source of truth.
type Share struct {
	// ShareID is the stable identifier of the share.
	ShareID string `json:"ShareID"`

	// VaultID identifies the vault this share belongs to.
	VaultID string `json:"VaultID"`

	// AddressID is the address through which the user accesses the share.
	AddressID string `json:"AddressID"`

	// TargetType tells whether the share covers a vault or a single item.
	TargetType ShareTargetType `json:"TargetType"`

	// TargetID is the ID of the covered vault or item.
	TargetID string `json:"TargetID"`

	// Permission is the raw permission bitmask granted by the share.
	Permission int `json:"Permission"`

	// ShareRoleID is the role (admin/write/read) the user holds on the share.
	ShareRoleID string `json:"ShareRoleID"`

	// Owner reports whether the current user owns the underlying vault.
	Owner bool `json:"Owner"`

	// Shared reports whether the vault is shared with other users.
	Shared bool `json:"Shared"`

	// TargetMembers is the current member count of the target.
	TargetMembers int `json:"TargetMembers"`

	// TargetMaxMembers is the member limit of the target.
	TargetMaxMembers int `json:"TargetMaxMembers"`

	// Content is the vault content encrypted under the vault key,
	// base64-encoded. Empty for item shares.
	Content string `json:"Content"`

	// ContentKeyRotation is the key rotation the content was encrypted
	// under. Zero when Content is empty.
	ContentKeyRotation int64 `json:"ContentKeyRotation"`

	// ContentFormatVersion is the format version of the decrypted content.
	ContentFormatVersion int `json:"ContentFormatVersion"`

	// CreateTime and ExpireTime are epoch seconds. ExpireTime is zero for
	// non-expiring shares.
	CreateTime int64 `json:"CreateTime"`
	ExpireTime int64 `json:"ExpireTime"`
}

// IsVault reports whether the share represents a whole vault.
func (s Share) IsVault() bool {
	return s.TargetType == ShareTargetVault
}

// ShareKey is one rotation of a share's key material as served by the
// remote datasource. KeyRotation grows monotonically; a ciphertext is
// only decryptable with the key of the rotation it names.
type ShareKey struct {
	// KeyRotation identifies the key version, starting at 1.
	KeyRotation int64 `json:"KeyRotation"`

	// Key is the base64-encoded key material.
	Key string `json:"Key"`

	// UserKeyID is the user key the material is encrypted under.
	UserKeyID string `json:"UserKeyID"`

	// CreateTime is the rotation creation time in epoch seconds.
	CreateTime int64 `json:"CreateTime"`
}

// VaultContent is the plaintext metadata of a vault. It is what gets
// encrypted into Share.Content and CreateVaultRequest.Content.
type VaultContent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Data serializes the vault content to its canonical byte form used for
// encryption and signing. Both signatures of a vault creation request
// are computed over exactly these bytes.
func (v VaultContent) Data() ([]byte, error) {
	return json.Marshal(v)
}

// EncryptedShare pairs a remote share with its content re-encrypted
// under the device-local symmetric key, which is the only form the
// local cache is allowed to persist.
type EncryptedShare struct {
	Share

	// EncryptedContent is the locally re-encrypted vault content,
	// base64-encoded. Empty when the share carries no content.
	EncryptedContent string
}
