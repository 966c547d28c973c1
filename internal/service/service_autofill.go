package service

import (
	"context"
	"fmt"

	"github.com/passhold/vault-engine/internal/store"
	"github.com/passhold/vault-engine/models"
)

type autofillService struct {
	credentials store.CredentialDatasource
}

// NewAutofillService constructs the [AutofillService].
func NewAutofillService(credentials store.CredentialDatasource) AutofillService {
	return &autofillService{credentials: credentials}
}

// NormalizeRequest implements [AutofillService]. The downcast of the
// identity payload is checked even for recognized kinds: a platform
// handing over the wrong payload type yields nil instead of a panic.
func (a *autofillService) NormalizeRequest(request models.OSCredentialRequest) *models.AutoFillRequest {
	var kind models.AutoFillRequestKind

	switch request.Kind {
	case models.OSRequestPassword:
		kind = models.AutoFillPassword
	case models.OSRequestPasskeyAssertion:
		kind = models.AutoFillPasskey
	case models.OSRequestOneTimeCode:
		kind = models.AutoFillOneTimeCode
	case models.OSRequestPasskeyRegistration:
		// registrations are handled by the host app, never the extension
		return nil
	default:
		return nil
	}

	identity, ok := request.Identity.(*models.CredentialIdentity)
	if !ok || identity == nil {
		return nil
	}

	normalized := models.NewAutoFillRequest(kind, *identity)
	return &normalized
}

// Credentials implements [AutofillService].
func (a *autofillService) Credentials(ctx context.Context) ([]models.AutoFillCredential, error) {
	credentials, err := a.credentials.GetAllCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credential index: %w", err)
	}
	return credentials, nil
}

// VaultScoped pairs an object with the vault it lives in.
type VaultScoped[T any] struct {
	VaultID string
	Object  T
}

// NewVaultScoped resolves the vault of an object through the share ID
// it claims to belong to. Fails with [ErrVaultNotFound] when no vault
// share carries that ID.
func NewVaultScoped[T any](shares []models.Share, shareID string, object T) (VaultScoped[T], error) {
	for _, share := range shares {
		if share.ShareID == shareID && share.IsVault() {
			return VaultScoped[T]{VaultID: share.VaultID, Object: object}, nil
		}
	}
	return VaultScoped[T]{}, fmt.Errorf("%w (share_id=%s)", ErrVaultNotFound, shareID)
}
