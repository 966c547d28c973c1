package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/passhold/vault-engine/internal/mock"
	"github.com/passhold/vault-engine/models"
)

func loginItem(urls ...string) models.ItemContent {
	return models.ItemContent{
		ShareID: "share-1",
		ItemID:  "item-1",
		Name:    "Example login",
		Type:    models.ItemTypeLogin,
		Login: &models.LoginItemData{
			Username: "alice",
			Password: "hunter2",
			URLs:     urls,
		},
	}
}

func TestUpdateCredentialRank_DomainIdentifierMatchesOneURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	item := loginItem("https://a.example.com/login", "https://other.net")
	identifiers := []models.ServiceIdentifier{
		{Type: models.ServiceIdentifierDomain, Identifier: "a.example.com"},
	}
	lastUse := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	credentials.EXPECT().UpsertCredentials(ctx, models.AutoFillCredential{
		ShareID:     "share-1",
		ItemID:      "item-1",
		Username:    "alice",
		URL:         "https://a.example.com/login",
		LastUseTime: lastUse.Unix(),
	}).Return(nil)

	require.NoError(t, updater.UpdateCredentialRank(ctx, item, identifiers, lastUse))
}

func TestUpdateCredentialRank_NoMatchIsStillSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	item := loginItem("https://unrelated.org/login")
	identifiers := []models.ServiceIdentifier{
		{Type: models.ServiceIdentifierDomain, Identifier: "a.example.com"},
	}
	// UpsertCredentials must not be called for zero rows

	require.NoError(t, updater.UpdateCredentialRank(ctx, item, identifiers, time.Now()))
}

func TestUpdateCredentialRank_UnparsableURLsAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	item := loginItem("not a url at all", "https://a.example.com/login")
	identifiers := []models.ServiceIdentifier{
		{Type: models.ServiceIdentifierURL, Identifier: "https://a.example.com"},
	}

	credentials.EXPECT().UpsertCredentials(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rows ...models.AutoFillCredential) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "https://a.example.com/login", rows[0].URL)
			return nil
		})

	require.NoError(t, updater.UpdateCredentialRank(ctx, item, identifiers, time.Now()))
}

func TestUpdateCredentialRank_RejectsNonLoginItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)

	note := models.ItemContent{ShareID: "share-1", ItemID: "note-1", Type: models.ItemTypeNote}

	err := updater.UpdateCredentialRank(context.Background(), note, nil, time.Now())

	assert.ErrorIs(t, err, ErrNotLoginItem)
}

func TestUpdateCredentialRank_PersistFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	item := loginItem("https://a.example.com")
	identifiers := []models.ServiceIdentifier{
		{Type: models.ServiceIdentifierDomain, Identifier: "a.example.com"},
	}

	credentials.EXPECT().UpsertCredentials(ctx, gomock.Any()).Return(errors.New("locked"))

	err := updater.UpdateCredentialRank(ctx, item, identifiers, time.Now())

	assert.ErrorContains(t, err, "persist credential ranking")
}

func TestReindexAllCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	login := loginItem("https://a.example.com", "broken url", "https://b.example.com")
	note := models.ItemContent{ShareID: "share-1", ItemID: "note-1", Type: models.ItemTypeNote}

	gomock.InOrder(
		credentials.EXPECT().RemoveAllCredentials(ctx).Return(nil),
		credentials.EXPECT().UpsertCredentials(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows ...models.AutoFillCredential) error {
				require.Len(t, rows, 2)
				assert.Equal(t, "https://a.example.com", rows[0].URL)
				assert.Equal(t, "https://b.example.com", rows[1].URL)
				assert.Zero(t, rows[0].LastUseTime)
				assert.Zero(t, rows[1].LastUseTime)
				return nil
			}),
	)

	require.NoError(t, updater.ReindexAllCredentials(ctx, login, note))
}

func TestReindexAllCredentials_ClearFailureStopsRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialDatasource(ctrl)
	updater := NewCredentialRankUpdater(credentials)
	ctx := context.Background()

	credentials.EXPECT().RemoveAllCredentials(ctx).Return(errors.New("locked"))

	err := updater.ReindexAllCredentials(ctx, loginItem("https://a.example.com"))

	assert.ErrorContains(t, err, "clear credential index")
}
