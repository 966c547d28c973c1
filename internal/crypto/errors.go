package crypto

import "errors"

var (
	// ErrKeyGeneration indicates that building the vault key hierarchy
	// failed at some stage (key generation, passphrase wrapping, or
	// fingerprint signing).
	ErrKeyGeneration = errors.New("vault key generation failed")

	// ErrEncoding indicates that assembling a vault creation request
	// failed (missing keyring, unarmor failure, or content encryption).
	ErrEncoding = errors.New("vault request encoding failed")

	// ErrEncryption indicates that symmetric content encryption failed
	// or produced a ciphertext shorter than the minimum wire length.
	ErrEncryption = errors.New("vault content encryption failed")

	// ErrDecryption indicates that an authenticated decryption failed,
	// typically because of a wrong key or corrupted blob.
	ErrDecryption = errors.New("decryption failed")
)
