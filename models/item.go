package models

import "github.com/google/uuid"

// ItemType discriminates the payload stored inside an item.
type ItemType int

const (
	// ItemTypeLogin is a username/password credential with URLs.
	ItemTypeLogin ItemType = 1

	// ItemTypeNote is a free-form secure note.
	ItemTypeNote ItemType = 2

	// ItemTypeAlias is an email alias reference.
	ItemTypeAlias ItemType = 3
)

// LoginItemData is the decrypted payload of a login item.
type LoginItemData struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	URLs     []string `json:"urls"`
	TOTPURI  string   `json:"totpUri,omitempty"`
}

// ItemContent is the decrypted content of an item together with the
// identifiers needed to address it inside its share.
type ItemContent struct {
	ShareID string
	ItemID  string

	Name string
	Note string
	Type ItemType

	// Login is set only when Type is ItemTypeLogin.
	Login *LoginItemData
}

// IsLogin reports whether the item carries login credentials.
func (c ItemContent) IsLogin() bool {
	return c.Type == ItemTypeLogin && c.Login != nil
}

// ItemData is the server-side record of an item revision returned by
// item creation and listing calls.
type ItemData struct {
	// ItemID is the stable identifier of the item inside its share.
	ItemID string `json:"ItemID"`

	// Revision grows by one on every item modification.
	Revision int64 `json:"Revision"`

	// KeyRotation names the share key rotation the item content was
	// encrypted under.
	KeyRotation int64 `json:"KeyRotation"`

	// ContentFormatVersion is the format version of the item content.
	ContentFormatVersion int `json:"ContentFormatVersion"`

	// Content is the encrypted item payload, base64-encoded.
	Content string `json:"Content"`

	// State is 1 for active items, 2 for trashed ones.
	State int `json:"State"`

	// CreateTime, ModifyTime and LastUseTime are epoch seconds.
	// LastUseTime is zero until the item is autofilled once.
	CreateTime  int64 `json:"CreateTime"`
	ModifyTime  int64 `json:"ModifyTime"`
	LastUseTime int64 `json:"LastUseTime"`
}

// CreateItemRequest is the wire payload for creating an item inside a
// share. Content is encrypted under the share's item key before the
// request leaves the device.
type CreateItemRequest struct {
	// KeyRotation names the share key rotation used for encryption.
	KeyRotation int64 `json:"KeyRotation"`

	// ContentFormatVersion is the format version of the plaintext.
	ContentFormatVersion int `json:"ContentFormatVersion"`

	// Content is the encrypted item payload, base64-encoded.
	Content string `json:"Content"`

	// ItemKey is the per-item session key wrapped with the share key,
	// base64-encoded.
	ItemKey string `json:"ItemKey"`
}

// NewClientItemID mints a client-side identifier for an item that has
// not yet been acknowledged by the server.
func NewClientItemID() string {
	return uuid.NewString()
}
