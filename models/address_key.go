package models

// AddressKey is the user's cryptographic identity key for one email
// address. It anchors the vault key hierarchy: everything created for a
// vault is ultimately vouched for by this key.
//
// The value is owned by the authenticated session and is immutable for
// its lifetime. The passphrase never leaves client memory.
type AddressKey struct {
	// AddressID is the server-side identifier of the address.
	AddressID string

	// PrivateKey is the armored private key, locked with Passphrase.
	PrivateKey string

	// PublicKey is the armored public counterpart.
	PublicKey string

	// Passphrase unlocks PrivateKey.
	Passphrase string
}
