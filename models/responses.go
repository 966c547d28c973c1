package models

// GetSharesResponse is the body of the share list endpoint. It carries
// lightweight share stubs; full share details come from per-share
// fetches.
type GetSharesResponse struct {
	Shares []Share `json:"Shares"`
}

// GetShareResponse is the body of the single-share detail endpoint.
type GetShareResponse struct {
	Share Share `json:"Share"`
}

// GetShareKeysResponse is the paginated body of the share key endpoint.
// Total is the overall number of rotations, independent of the page
// actually returned.
type GetShareKeysResponse struct {
	Keys  []ShareKey `json:"Keys"`
	Total int64      `json:"Total"`
}

// CreateVaultResponse is the body returned by vault creation and update
// calls: the share granting the user access to the vault.
type CreateVaultResponse struct {
	Share Share `json:"Share"`
}

// CreateItemResponse is the body returned by item creation.
type CreateItemResponse struct {
	Item ItemData `json:"Item"`
}
