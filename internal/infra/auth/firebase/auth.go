// Package firebase verifies Firebase Authentication ID tokens for sign-in.
package firebase

import (
	"context"
	"log/slog"

	"bizcard/internal/domain/constants"
	"bizcard/internal/domain/entity"
	"bizcard/internal/domain/service"
	"bizcard/internal/infra/firebaseapp"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// tokenVerifier is the part of the Firebase auth client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// IdentityVerifier verifies Firebase ID tokens through the Admin SDK.
type IdentityVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewIdentityVerifier creates the Firebase auth client from the shared app
func NewIdentityVerifier(ctx context.Context, loader *firebaseapp.Loader, logger *slog.Logger) (service.IdentityVerifier, error) {
	app, err := loader.App(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &IdentityVerifier{client: client, logger: logger}, nil
}

// VerifyIDToken checks the token and maps its UID, email and name onto an Owner.
func (v *IdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (entity.Owner, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("Firebase ID token rejected", slog.Any("error", err))

		return entity.Owner{}, errors.Wrap(err, "invalid ID token")
	}

	return ownerFromToken(token), nil
}

// Provider returns the identity provider name
func (v *IdentityVerifier) Provider() string {
	return constants.IdentityProviderFirebase
}

func ownerFromToken(token *auth.Token) entity.Owner {
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	return entity.Owner{
		ID:    token.UID,
		Email: email,
		Name:  name,
	}
}
