// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package models

// VaultContentFormatVersion is the current version of the vault content
// format carried in create and update requests.
const VaultContentFormatVersion = 1

// CreateVaultRequest is the wire payload of a vault creation call. Every
// signature field must verify against the specific key its name points
// to (address vs vault vs signing key); the request builder computes
// each one with exactly that key so a mix-up cannot be produced.
type CreateVaultRequest struct {
	// AddressID is the address performing the creation.
	AddressID string `json:"AddressID"`

	// Content is the vault content encrypted under the vault key,
	// base64-encoded.
	Content string `json:"Content"`

	// ContentFormatVersion is the version of the content format.
	ContentFormatVersion int `json:"ContentFormatVersion"`

	// ContentEncryptedAddressSignature is the address-key signature over
	// the plaintext content, re-encrypted under the vault key. Base64.
	ContentEncryptedAddressSignature string `json:"ContentEncryptedAddressSignature"`

	// ContentEncryptedVaultSignature is the vault-key signature over the
	// plaintext content, re-encrypted under the vault key. Base64.
	ContentEncryptedVaultSignature string `json:"ContentEncryptedVaultSignature"`

	// VaultKey is the armored vault key, locked with the passphrase
	// carried (encrypted) in VaultKeyPassphrase.
	VaultKey string `json:"VaultKey"`

	// VaultKeyPassphrase is the data packet of the vault key passphrase
	// encrypted with the address key. Base64.
	VaultKeyPassphrase string `json:"VaultKeyPassphrase"`

	// VaultKeySignature is the signing-key signature over the vault key
	// fingerprint. Base64.
	VaultKeySignature string `json:"VaultKeySignature"`

	// KeyPacket is the session-key packet of the encrypted vault key
	// passphrase. Base64.
	KeyPacket string `json:"KeyPacket"`

	// KeyPacketSignature is the vault-key signature over the raw key
	// packet bytes. Base64.
	KeyPacketSignature string `json:"KeyPacketSignature"`

	// SigningKey is the armored signing key, locked with the passphrase
	// carried (encrypted) in SigningKeyPassphrase.
	SigningKey string `json:"SigningKey"`

	// SigningKeyPassphrase is the data packet of the signing key
	// passphrase encrypted with the address key. Base64.
	SigningKeyPassphrase string `json:"SigningKeyPassphrase"`

	// SigningKeyPassphraseKeyPacket is the matching session-key packet.
	// Base64.
	SigningKeyPassphraseKeyPacket string `json:"SigningKeyPassphraseKeyPacket"`

	// AcceptanceSignature is the address-key signature over the signing
	// key fingerprint. Base64.
	AcceptanceSignature string `json:"AcceptanceSignature"`

	// ItemKey is the armored item key, locked with the passphrase carried
	// (encrypted) in ItemKeyPassphrase.
	ItemKey string `json:"ItemKey"`

	// ItemKeyPassphrase is the data packet of the item key passphrase
	// encrypted with the vault key. Base64.
	ItemKeyPassphrase string `json:"ItemKeyPassphrase"`

	// ItemKeyPassphraseKeyPacket is the matching session-key packet.
	// Base64.
	ItemKeyPassphraseKeyPacket string `json:"ItemKeyPassphraseKeyPacket"`

	// ItemKeySignature is the signing-key signature over the item key
	// fingerprint. Base64.
	ItemKeySignature string `json:"ItemKeySignature"`
}

// UpdateVaultRequest is the wire payload of a vault metadata update. No
// new key material is generated: the content is re-encrypted directly
// with the share key of the given rotation.
type UpdateVaultRequest struct {
	// Content is the re-encrypted vault content, base64-encoded.
	// Decodes to at least 28 bytes.
	Content string `json:"Content"`

	// ContentFormatVersion is the version of the content format.
	ContentFormatVersion int `json:"ContentFormatVersion"`

	// KeyRotation names the share key rotation Content was encrypted
	// under. Always > 0.
	KeyRotation int64 `json:"KeyRotation"`
}
