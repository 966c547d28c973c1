package crypto

import "github.com/passhold/vault-engine/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyHierarchyBuilder generates the full key hierarchy for a new vault.
// It knows nothing about the network or the cache; its only job is to
// produce and protect keys.
//
// The hierarchy, anchored on the user's address key:
//
//	address key  — signs the signing key (acceptance)
//	signing key  — vouches for the vault and item keys
//	vault key    — encrypts vault content and the item key passphrase
//	item key     — encrypts item content inside the vault
type KeyHierarchyBuilder interface {
	// BuildVaultKeys generates a signing key, a vault key, and an item
	// key, wraps each passphrase for the key that guards it, and signs
	// each fingerprint with the key that vouches for it. The returned
	// material is transient: the caller must Wipe it once the request
	// body is assembled. Fails with [ErrKeyGeneration].
	BuildVaultKeys(addressKey models.AddressKey) (*VaultKeyMaterial, error)
}

// VaultRequestCodec turns plaintext vault metadata into the encrypted
// wire payloads the remote API accepts.
type VaultRequestCodec interface {
	// EncodeCreateVaultRequest builds the complete vault creation
	// payload: fresh key hierarchy, encrypted content, and the dual
	// content signatures. Fails with [ErrEncoding].
	EncodeCreateVaultRequest(addressKey models.AddressKey, vault models.VaultContent) (models.CreateVaultRequest, error)

	// EncodeUpdateVaultRequest re-encrypts vault metadata under the
	// given share key rotation. No new key material is generated. Fails
	// with [ErrEncryption] if the share key is unusable or the
	// ciphertext comes out shorter than the wire minimum.
	EncodeUpdateVaultRequest(vault models.VaultContent, shareKey models.ShareKey) (models.UpdateVaultRequest, error)
}

// CacheCipher protects share content at rest in the local cache. The
// key is derived from the device secret, so cached rows are opaque
// without it.
type CacheCipher interface {
	// EncryptString encrypts plaintext and returns a base64 blob.
	EncryptString(plaintext string) (string, error)

	// DecryptString reverses [CacheCipher.EncryptString]. Fails with
	// [ErrDecryption] on a wrong key or corrupted blob.
	DecryptString(encoded string) (string, error)
}
