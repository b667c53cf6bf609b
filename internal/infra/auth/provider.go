package auth

import (
	"context"
	"log/slog"

	"bizcard/config"
	"bizcard/internal/domain/constants"
	"bizcard/internal/domain/service"
	"bizcard/internal/infra/auth/firebase"
	"bizcard/internal/infra/auth/google"
	"bizcard/internal/infra/firebaseapp"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Loader
}

// NewIdentityVerifier creates the IdentityVerifier for the configured provider
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	provider := constants.IdentityProviderFirebase
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	params.Logger.Info("Using identity provider", slog.String("provider", provider))

	switch provider {
	case constants.IdentityProviderFirebase:
		return firebase.NewIdentityVerifier(params.Ctx, params.Firebase, params.Logger)
	case constants.IdentityProviderGoogle:
		return google.NewIdentityVerifier(params.Config, params.Logger)
	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}
}

// Module provides the authentication FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewJWTService),
	fx.Provide(NewIdentityVerifier),
)
