package service

import (
	"github.com/passhold/vault-engine/internal/adapter"
	"github.com/passhold/vault-engine/internal/crypto"
	"github.com/passhold/vault-engine/internal/store"
)

type Services struct {
	ShareRepository       ShareRepository
	CredentialRankUpdater CredentialRankUpdater
	AutofillService       AutofillService
}

func NewServices(storages *store.Storages, remote adapter.RemoteDatasource, cacheCipher crypto.CacheCipher) *Services {
	codec := crypto.NewVaultRequestCodec(crypto.NewKeyHierarchyBuilder())

	return &Services{
		ShareRepository:       NewShareRepository(storages.Shares, storages.ShareKeys, remote, codec, cacheCipher),
		CredentialRankUpdater: NewCredentialRankUpdater(storages.Credentials),
		AutofillService:       NewAutofillService(storages.Credentials),
	}
}
