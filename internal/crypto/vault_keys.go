// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package crypto

import (
	"fmt"

	gopgp "github.com/ProtonMail/gopenpgp/v2/crypto"

	"github.com/passhold/vault-engine/models"
)

// wrappedPassphrase is a key passphrase encrypted for the key that
// guards it, plus the detached signature over the owning key's
// fingerprint made by the key that vouches for it.
type wrappedPassphrase struct {
	// KeyPacket is the binary PGP session-key packet.
	KeyPacket []byte
	// DataPacket is the binary PGP data packet.
	DataPacket []byte
	// Signature is the binary detached signature over the owning key's
	// fingerprint.
	Signature []byte
}

// VaultKeyMaterial is the transient output of one key hierarchy build.
// It exists in memory for the duration of a single vault creation call
// and must be wiped once the request body is assembled. It is never
// logged and never cached.
type VaultKeyMaterial struct {
	// Signing vouches for the vault and item keys. Its passphrase is
	// encrypted with the address key; its fingerprint is signed by the
	// address key (the acceptance signature).
	Signing           generatedKey
	SigningPassphrase wrappedPassphrase

	// Vault encrypts vault content. Its passphrase is encrypted with
	// the address key; its fingerprint is signed by the signing key.
	Vault           generatedKey
	VaultPassphrase wrappedPassphrase

	// Item encrypts item content. Its passphrase is encrypted with the
	// vault key; its fingerprint is signed by the signing key.
	Item           generatedKey
	ItemPassphrase wrappedPassphrase
}

// Wipe zeroes every passphrase and drops the unlocked keyrings. The
// armored keys stay readable; without their passphrases they are inert.
func (m *VaultKeyMaterial) Wipe() {
	for _, p := range [][]byte{m.Signing.Passphrase, m.Vault.Passphrase, m.Item.Passphrase} {
		for i := range p {
			p[i] = 0
		}
	}
	m.Signing.keyRing = nil
	m.Vault.keyRing = nil
	m.Item.keyRing = nil
}

// keyHierarchyBuilder is the private implementation of
// [KeyHierarchyBuilder].
type keyHierarchyBuilder struct{}

// NewKeyHierarchyBuilder constructs a [KeyHierarchyBuilder].
func NewKeyHierarchyBuilder() KeyHierarchyBuilder {
	return &keyHierarchyBuilder{}
}

// BuildVaultKeys implements [KeyHierarchyBuilder]. Keys are generated
// in dependency order so that each wrapping key exists before the key
// it guards: signing first (vouched for by the address key), then
// vault (vouched for by signing), then item (guarded by vault, vouched
// for by signing). Any failure aborts the whole build.
func (b *keyHierarchyBuilder) BuildVaultKeys(addressKey models.AddressKey) (*VaultKeyMaterial, error) {
	addressKR, err := unlockKeyRing(addressKey.PrivateKey, []byte(addressKey.Passphrase))
	if err != nil {
		return nil, fmt.Errorf("%w: unlock address key: %v", ErrKeyGeneration, err)
	}

	material := &VaultKeyMaterial{}

	// Signing key: passphrase wrapped for the address key, fingerprint
	// signed by the address key.
	material.Signing, err = generateLockedKey("vault signing key", "vault_signing@passhold.local")
	if err != nil {
		return nil, fmt.Errorf("%w: signing key: %v", ErrKeyGeneration, err)
	}
	material.SigningPassphrase, err = wrapPassphrase(material.Signing, addressKR, addressKR)
	if err != nil {
		return nil, fmt.Errorf("%w: signing key passphrase: %v", ErrKeyGeneration, err)
	}

	// Vault key: passphrase wrapped for the address key, fingerprint
	// signed by the signing key.
	material.Vault, err = generateLockedKey("vault key", "vault@passhold.local")
	if err != nil {
		return nil, fmt.Errorf("%w: vault key: %v", ErrKeyGeneration, err)
	}
	material.VaultPassphrase, err = wrapPassphrase(material.Vault, addressKR, material.Signing.keyRing)
	if err != nil {
		return nil, fmt.Errorf("%w: vault key passphrase: %v", ErrKeyGeneration, err)
	}

	// Item key: passphrase wrapped for the vault key, fingerprint
	// signed by the signing key.
	material.Item, err = generateLockedKey("item key", "item@passhold.local")
	if err != nil {
		return nil, fmt.Errorf("%w: item key: %v", ErrKeyGeneration, err)
	}
	material.ItemPassphrase, err = wrapPassphrase(material.Item, material.Vault.keyRing, material.Signing.keyRing)
	if err != nil {
		return nil, fmt.Errorf("%w: item key passphrase: %v", ErrKeyGeneration, err)
	}

	return material, nil
}

// wrapPassphrase encrypts key's passphrase for recipient and signs
// key's fingerprint with voucher.
func wrapPassphrase(key generatedKey, recipient, voucher *gopgp.KeyRing) (wrappedPassphrase, error) {
	keyPacket, dataPacket, err := encryptAndSplit(key.Passphrase, recipient)
	if err != nil {
		return wrappedPassphrase{}, err
	}

	signature, err := signDetached([]byte(key.Fingerprint), voucher)
	if err != nil {
		return wrappedPassphrase{}, err
	}

	return wrappedPassphrase{
		KeyPacket:  keyPacket,
		DataPacket: dataPacket,
		Signature:  signature,
	}, nil
}
