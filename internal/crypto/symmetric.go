// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// aadCachedShare domain-separates cached share blobs from vault
// content ciphertexts.
const aadCachedShare = "cachedshare"

// cacheKeySalt keeps cache key derivation deterministic for a given
// device secret, so a restart can decrypt what the previous run wrote.
var cacheKeySalt = []byte("passhold.cache.v1")

// encryptGCM seals plaintext with AES-256-GCM. A random 12-byte nonce
// is prepended to the ciphertext: blob = nonce ‖ ciphertext.
func encryptGCM(key, plaintext, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, additionalData)
	return append(nonce, ciphertext...), nil
}

// decryptGCM reverses [encryptGCM]. The blob must carry the nonce as
// its first 12 bytes. An authentication failure almost always means a
// wrong key or mismatched additional data.
func decryptGCM(key, blob, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return plaintext, nil
}

// cacheCipher is the private implementation of [CacheCipher].
type cacheCipher struct {
	key []byte
}

// NewCacheCipher derives the local cache key from the device secret
// with Argon2id using the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCacheCipher(deviceSecret string) CacheCipher {
	return &cacheCipher{
		key: argon2.IDKey(
			[]byte(deviceSecret),
			cacheKeySalt,
			1,
			64*1024, // 64 MiB
			4,
			32, // 256 bits
		),
	}
}

// EncryptString implements [CacheCipher].
func (c *cacheCipher) EncryptString(plaintext string) (string, error) {
	blob, err := encryptGCM(c.key, []byte(plaintext), []byte(aadCachedShare))
	if err != nil {
		return "", fmt.Errorf("encrypt cached share: %w", err)
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString implements [CacheCipher].
func (c *cacheCipher) DecryptString(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode cached share: %w", err)
	}

	plaintext, err := decryptGCM(c.key, blob, []byte(aadCachedShare))
	if err != nil {
		return "", fmt.Errorf("decrypt cached share: %w", err)
	}

	return string(plaintext), nil
}
