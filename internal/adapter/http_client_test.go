package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passhold/vault-engine/internal/config"
	"github.com/passhold/vault-engine/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) RemoteDatasource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewVaultAPIAdapter(config.EnvironmentAdapter{
		HTTPAddress:    server.URL,
		RequestTimeout: 5 * time.Second,
	})
}

func signedTestToken(t *testing.T, subject string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSetToken_ParsesSubject(t *testing.T) {
	a := NewVaultAPIAdapter(config.EnvironmentAdapter{})

	require.NoError(t, a.SetToken(signedTestToken(t, "user-42")))
	assert.Equal(t, "user-42", a.UserID())
}

func TestSetToken_Invalid(t *testing.T) {
	a := NewVaultAPIAdapter(config.EnvironmentAdapter{})

	assert.Error(t, a.SetToken("not-a-jwt"))
	assert.Empty(t, a.UserID())
}

func TestGetShares_FetchesAllDetails(t *testing.T) {
	stubs := []models.Share{{ShareID: "share-1"}, {ShareID: "share-2"}, {ShareID: "share-3"}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vault/shares", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")
		json.NewEncoder(w).Encode(models.GetSharesResponse{Shares: stubs})
	})
	mux.HandleFunc("GET /api/vault/shares/{shareID}", func(w http.ResponseWriter, r *http.Request) {
		shareID := r.PathValue("shareID")
		json.NewEncoder(w).Encode(models.GetShareResponse{
			Share: models.Share{ShareID: shareID, VaultID: "vault-of-" + shareID, Content: "content"},
		})
	})

	a := newTestAdapter(t, mux)
	require.NoError(t, a.SetToken(signedTestToken(t, "user-1")))

	shares, err := a.GetShares(context.Background())

	require.NoError(t, err)
	require.Len(t, shares, 3)
	// detail results land in stub order regardless of fetch order
	for i, share := range shares {
		assert.Equal(t, stubs[i].ShareID, share.ShareID)
		assert.Equal(t, "vault-of-"+stubs[i].ShareID, share.VaultID)
	}
}

func TestGetShares_DetailFailureFailsAll(t *testing.T) {
	var detailCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vault/shares", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.GetSharesResponse{Shares: []models.Share{
			{ShareID: "share-1"}, {ShareID: "share-2"},
		}})
	})
	mux.HandleFunc("GET /api/vault/shares/{shareID}", func(w http.ResponseWriter, r *http.Request) {
		detailCalls.Add(1)
		if r.PathValue("shareID") == "share-2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.GetShareResponse{Share: models.Share{ShareID: "share-1"}})
	})

	a := newTestAdapter(t, mux)

	shares, err := a.GetShares(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Nil(t, shares)
	assert.Equal(t, int32(2), detailCalls.Load())
}

func TestGetShares_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vault/shares", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.GetSharesResponse{})
	})

	a := newTestAdapter(t, mux)

	shares, err := a.GetShares(context.Background())

	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestGetShareKeys(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vault/shares/share-1/keys", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("Page"))
		assert.Equal(t, "10", r.URL.Query().Get("PageSize"))
		json.NewEncoder(w).Encode(models.GetShareKeysResponse{
			Keys:  []models.ShareKey{{KeyRotation: 1, Key: "a2V5"}},
			Total: 1,
		})
	})

	a := newTestAdapter(t, mux)

	keys, err := a.GetShareKeys(context.Background(), "share-1", 2, 10)

	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, int64(1), keys[0].KeyRotation)
}

func TestCreateVault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/vault/vaults", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateVaultRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "address-1", req.AddressID)

		json.NewEncoder(w).Encode(models.CreateVaultResponse{
			Share: models.Share{ShareID: "share-new", Content: req.Content},
		})
	})

	a := newTestAdapter(t, mux)

	share, err := a.CreateVault(context.Background(), models.CreateVaultRequest{
		AddressID: "address-1",
		Content:   "encrypted",
	})

	require.NoError(t, err)
	assert.Equal(t, "share-new", share.ShareID)
	assert.Equal(t, "encrypted", share.Content)
}

func TestUpdateVault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/vault/vaults/share-1", func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateVaultRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(2), req.KeyRotation)

		json.NewEncoder(w).Encode(models.CreateVaultResponse{
			Share: models.Share{ShareID: "share-1", Content: req.Content, ContentKeyRotation: req.KeyRotation},
		})
	})

	a := newTestAdapter(t, mux)

	share, err := a.UpdateVault(context.Background(), "share-1", models.UpdateVaultRequest{
		Content:              "re-encrypted",
		ContentFormatVersion: models.VaultContentFormatVersion,
		KeyRotation:          2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), share.ContentKeyRotation)
}

func TestDeleteVault_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/vault/vaults/{shareID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	a := newTestAdapter(t, mux)

	err := a.DeleteVault(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateItem(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/vault/shares/share-1/items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CreateItemResponse{
			Item: models.ItemData{ItemID: "item-1", Revision: 1, State: 1},
		})
	})

	a := newTestAdapter(t, mux)

	item, err := a.CreateItem(context.Background(), "share-1", models.CreateItemRequest{KeyRotation: 1})

	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ItemID)
}
