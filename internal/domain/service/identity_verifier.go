package service

import (
	"context"

	"bizcard/internal/domain/entity"
)

// IdentityVerifier verifies an ID token issued by the external identity provider
// and returns the identity it asserts.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (entity.Owner, error)

	// Provider returns the provider name (firebase, google).
	Provider() string
}
