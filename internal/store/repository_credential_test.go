package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passhold/vault-engine/models"
)

func TestCredentialRepository_UpsertCredentials(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO autofill_credentials").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO autofill_credentials").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertCredentials(context.Background(),
		models.AutoFillCredential{ShareID: "share-1", ItemID: "item-1", Username: "alice", URL: "https://example.com", LastUseTime: 1700000000},
		models.AutoFillCredential{ShareID: "share-1", ItemID: "item-1", Username: "alice", URL: "https://example.org", LastUseTime: 1700000000},
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_UpsertCredentials_RollbackOnFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO autofill_credentials").
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.UpsertCredentials(context.Background(),
		models.AutoFillCredential{ShareID: "share-1", ItemID: "item-1", URL: "https://example.com"},
	)

	assert.ErrorIs(t, err, ErrBatchInsert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_GetAllCredentials(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, db.logger)

	rows := sqlmock.NewRows([]string{"share_id", "item_id", "username", "url", "last_use_time"}).
		AddRow("share-1", "item-2", "bob", "https://recent.example", int64(1700002000)).
		AddRow("share-1", "item-1", "alice", "https://old.example", int64(1700000000))

	mock.ExpectQuery("SELECT .+ FROM autofill_credentials").
		WillReturnRows(rows)

	credentials, err := repo.GetAllCredentials(context.Background())

	require.NoError(t, err)
	require.Len(t, credentials, 2)
	assert.Equal(t, "item-2", credentials[0].ItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_RemoveAllCredentials(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, db.logger)

	mock.ExpectExec("DELETE FROM autofill_credentials").
		WillReturnResult(sqlmock.NewResult(0, 5))

	err := repo.RemoveAllCredentials(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
