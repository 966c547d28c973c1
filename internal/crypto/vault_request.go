// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/passhold/vault-engine/models"
)

// aadVaultContent domain-separates vault content ciphertexts from any
// other AES-GCM use of the same share key.
const aadVaultContent = "vaultcontent"

// minEncryptedContentLength is the smallest valid encrypted content
// blob: a 12-byte GCM nonce plus a 16-byte authentication tag. Anything
// shorter cannot have come from a real seal and is rejected before it
// reaches the wire.
const minEncryptedContentLength = 28

// sealFunc is the symmetric seal used by the update path. Swappable so
// the floor check can be exercised against a degenerate implementation.
type sealFunc func(key, plaintext, additionalData []byte) ([]byte, error)

// vaultRequestCodec is the private implementation of
// [VaultRequestCodec].
type vaultRequestCodec struct {
	builder KeyHierarchyBuilder
	seal    sealFunc
}

// NewVaultRequestCodec constructs a [VaultRequestCodec] on top of the
// given key hierarchy builder.
func NewVaultRequestCodec(builder KeyHierarchyBuilder) VaultRequestCodec {
	return &vaultRequestCodec{
		builder: builder,
		seal:    encryptGCM,
	}
}

// EncodeCreateVaultRequest implements [VaultRequestCodec]. It builds a
// fresh key hierarchy, encrypts the vault content under the new vault
// key, and produces the dual content signatures: one by the address
// key, one by the vault key, both re-encrypted under the vault key so
// the server never sees a plaintext signature over plaintext content.
func (c *vaultRequestCodec) EncodeCreateVaultRequest(addressKey models.AddressKey, vault models.VaultContent) (models.CreateVaultRequest, error) {
	material, err := c.builder.BuildVaultKeys(addressKey)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	defer material.Wipe()

	if material.Vault.keyRing == nil || material.Signing.keyRing == nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: missing keyring", ErrEncoding)
	}

	addressKR, err := unlockKeyRing(addressKey.PrivateKey, []byte(addressKey.Passphrase))
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: unlock address key: %v", ErrEncoding, err)
	}

	content, err := vault.Data()
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: serialize content: %v", ErrEncoding, err)
	}

	encryptedContent, err := encryptBinary(content, material.Vault.keyRing)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: encrypt content: %v", ErrEncoding, err)
	}
	// A truncated result means the key hierarchy is broken; reject it
	// before the request reaches the server.
	if len(encryptedContent) < minEncryptedContentLength {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: encrypted content is %d bytes, want at least %d", ErrEncoding, len(encryptedContent), minEncryptedContentLength)
	}

	// Both signatures cover the plaintext content; they differ only in
	// the signing key. Each is re-encrypted under the vault key.
	addressSignature, err := signDetached(content, addressKR)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: address signature: %v", ErrEncoding, err)
	}
	encryptedAddressSignature, err := encryptBinary(addressSignature, material.Vault.keyRing)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: encrypt address signature: %v", ErrEncoding, err)
	}

	vaultSignature, err := signDetached(content, material.Vault.keyRing)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: vault signature: %v", ErrEncoding, err)
	}
	encryptedVaultSignature, err := encryptBinary(vaultSignature, material.Vault.keyRing)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: encrypt vault signature: %v", ErrEncoding, err)
	}

	// The key packet itself is vouched for by the vault key.
	keyPacketSignature, err := signDetached(material.VaultPassphrase.KeyPacket, material.Vault.keyRing)
	if err != nil {
		return models.CreateVaultRequest{}, fmt.Errorf("%w: key packet signature: %v", ErrEncoding, err)
	}

	return models.CreateVaultRequest{
		AddressID:            addressKey.AddressID,
		Content:              encodeBase64(encryptedContent),
		ContentFormatVersion: models.VaultContentFormatVersion,

		ContentEncryptedAddressSignature: encodeBase64(encryptedAddressSignature),
		ContentEncryptedVaultSignature:   encodeBase64(encryptedVaultSignature),

		VaultKey:           material.Vault.ArmoredKey,
		VaultKeyPassphrase: encodeBase64(material.VaultPassphrase.DataPacket),
		VaultKeySignature:  encodeBase64(material.VaultPassphrase.Signature),
		KeyPacket:          encodeBase64(material.VaultPassphrase.KeyPacket),
		KeyPacketSignature: encodeBase64(keyPacketSignature),

		SigningKey:                    material.Signing.ArmoredKey,
		SigningKeyPassphrase:          encodeBase64(material.SigningPassphrase.DataPacket),
		SigningKeyPassphraseKeyPacket: encodeBase64(material.SigningPassphrase.KeyPacket),
		AcceptanceSignature:           encodeBase64(material.SigningPassphrase.Signature),

		ItemKey:                    material.Item.ArmoredKey,
		ItemKeyPassphrase:          encodeBase64(material.ItemPassphrase.DataPacket),
		ItemKeyPassphraseKeyPacket: encodeBase64(material.ItemPassphrase.KeyPacket),
		ItemKeySignature:           encodeBase64(material.ItemPassphrase.Signature),
	}, nil
}

// EncodeUpdateVaultRequest implements [VaultRequestCodec]. The update
// path generates no key material: content is sealed directly with the
// share key of the given rotation under the vault content AAD.
func (c *vaultRequestCodec) EncodeUpdateVaultRequest(vault models.VaultContent, shareKey models.ShareKey) (models.UpdateVaultRequest, error) {
	if shareKey.KeyRotation <= 0 {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: key rotation %d", ErrEncryption, shareKey.KeyRotation)
	}

	key, err := base64.StdEncoding.DecodeString(shareKey.Key)
	if err != nil {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: decode share key: %v", ErrEncryption, err)
	}
	if len(key) != 32 {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: share key is %d bytes, want 32", ErrEncryption, len(key))
	}

	content, err := vault.Data()
	if err != nil {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: serialize content: %v", ErrEncryption, err)
	}

	blob, err := c.seal(key, content, []byte(aadVaultContent))
	if err != nil {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	if len(blob) < minEncryptedContentLength {
		return models.UpdateVaultRequest{}, fmt.Errorf("%w: sealed content is %d bytes, want at least %d", ErrEncryption, len(blob), minEncryptedContentLength)
	}

	return models.UpdateVaultRequest{
		Content:              encodeBase64(blob),
		ContentFormatVersion: models.VaultContentFormatVersion,
		KeyRotation:          shareKey.KeyRotation,
	}, nil
}
