// Package google verifies Google-issued ID tokens for sign-in.
package google

import (
	"context"
	"log/slog"

	"bizcard/config"
	"bizcard/internal/domain/constants"
	"bizcard/internal/domain/entity"
	"bizcard/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validate; replaced in tests.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// IdentityVerifier checks Google ID token signatures against Google's published keys.
type IdentityVerifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewIdentityVerifier creates a verifier bound to the configured OAuth client ID
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required for the google identity provider")
	}

	return &IdentityVerifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}, nil
}

// VerifyIDToken validates signature, audience and expiry, then checks issuer and email verification.
func (v *IdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (entity.Owner, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return entity.Owner{}, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return entity.Owner{}, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if payload.Subject == "" {
		return entity.Owner{}, errors.New("ID token has no subject")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); email != "" && !verified {
		return entity.Owner{}, errors.New("email not verified")
	}

	v.logger.Debug("Google ID token verified", slog.String("subject", payload.Subject))

	return entity.Owner{
		ID:    payload.Subject,
		Email: email,
		Name:  name,
	}, nil
}

// Provider returns the identity provider name
func (v *IdentityVerifier) Provider() string {
	return constants.IdentityProviderGoogle
}
