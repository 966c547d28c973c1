// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package crypto

import (
	"encoding/base64"
	"fmt"

	gopgp "github.com/ProtonMail/gopenpgp/v2/crypto"
)

// generatedKey is one freshly generated, passphrase-locked key of the
// vault hierarchy. The unlocked keyring is kept alongside so the
// request builder can sign and encrypt without a second unlock.
type generatedKey struct {
	// ArmoredKey is the locked private key, armored.
	ArmoredKey string
	// Fingerprint is the primary key fingerprint, lowercase hex.
	Fingerprint string
	// Passphrase unlocks ArmoredKey.
	Passphrase []byte

	keyRing *gopgp.KeyRing
}

// generateLockedKey creates a fresh x25519 key locked with a random
// 256-bit passphrase.
func generateLockedKey(name, email string) (generatedKey, error) {
	key, err := gopgp.GenerateKey(name, email, "x25519", 0)
	if err != nil {
		return generatedKey{}, fmt.Errorf("generate key: %w", err)
	}

	token, err := gopgp.RandomToken(32)
	if err != nil {
		return generatedKey{}, fmt.Errorf("generate passphrase: %w", err)
	}
	passphrase := []byte(base64.StdEncoding.EncodeToString(token))

	locked, err := key.Lock(passphrase)
	if err != nil {
		return generatedKey{}, fmt.Errorf("lock key: %w", err)
	}

	armored, err := locked.Armor()
	if err != nil {
		return generatedKey{}, fmt.Errorf("armor key: %w", err)
	}

	keyRing, err := gopgp.NewKeyRing(key)
	if err != nil {
		return generatedKey{}, fmt.Errorf("build keyring: %w", err)
	}

	return generatedKey{
		ArmoredKey:  armored,
		Fingerprint: key.GetFingerprint(),
		Passphrase:  passphrase,
		keyRing:     keyRing,
	}, nil
}

// unlockKeyRing builds a keyring from an armored private key and its
// passphrase, ready for signing and decryption.
func unlockKeyRing(armoredKey string, passphrase []byte) (*gopgp.KeyRing, error) {
	key, err := gopgp.NewKeyFromArmored(armoredKey)
	if err != nil {
		return nil, fmt.Errorf("parse armored key: %w", err)
	}

	unlocked, err := key.Unlock(passphrase)
	if err != nil {
		return nil, fmt.Errorf("unlock key: %w", err)
	}

	keyRing, err := gopgp.NewKeyRing(unlocked)
	if err != nil {
		return nil, fmt.Errorf("build keyring: %w", err)
	}

	return keyRing, nil
}

// encryptAndSplit encrypts plaintext to the recipient keyring and
// splits the resulting PGP message into its session-key packet and
// data packet, the form the wire format carries them in.
func encryptAndSplit(plaintext []byte, recipient *gopgp.KeyRing) (keyPacket, dataPacket []byte, err error) {
	message, err := recipient.Encrypt(gopgp.NewPlainMessage(plaintext), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("encrypt: %w", err)
	}

	split, err := message.SplitMessage()
	if err != nil {
		return nil, nil, fmt.Errorf("split message: %w", err)
	}

	return split.GetBinaryKeyPacket(), split.GetBinaryDataPacket(), nil
}

// encryptBinary encrypts plaintext to the recipient keyring and
// returns the whole binary PGP message.
func encryptBinary(plaintext []byte, recipient *gopgp.KeyRing) ([]byte, error) {
	message, err := recipient.Encrypt(gopgp.NewPlainMessage(plaintext), nil)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return message.GetBinary(), nil
}

// signDetached produces a binary detached signature over data.
func signDetached(data []byte, signer *gopgp.KeyRing) ([]byte, error) {
	signature, err := signer.SignDetached(gopgp.NewPlainMessage(data))
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return signature.GetBinary(), nil
}

// encodeBase64 is the wire encoding for all binary packet and
// signature fields.
func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
