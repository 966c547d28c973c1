package service

import "errors"

var (
	// ErrNotLoginItem is returned when a credential-rank update is
	// invoked on an item that carries no login payload. This is a caller
	// error; nothing is written.
	ErrNotLoginItem = errors.New("item is not a login item")

	// ErrNoShareKey is returned when a share has no key material at all.
	ErrNoShareKey = errors.New("share has no key material")

	// ErrVaultNotFound is returned when no vault share matches the share
	// ID an object claims to belong to.
	ErrVaultNotFound = errors.New("no vault found for share")
)
