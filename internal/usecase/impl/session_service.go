package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bizcard/internal/delivery/context"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/service"
	"bizcard/internal/usecase"
)

const tokenTypeBearer = "Bearer"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	verifier service.IdentityVerifier
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	verifier service.IdentityVerifier,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		verifier: verifier,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the identity provider token and issues a service access token.
func (srv *sessionService) SignIn(ctx context.Context, idToken string) (*usecase.Session, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	owner, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Info("Sign-in rejected",
			slog.String("provider", srv.verifier.Provider()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrIdentityTokenInvalid
	}
	if owner.IsZero() {
		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	accessToken, err := srv.tokenSvc.GenerateAccessToken(owner)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err))

		return nil, domainerrors.ErrSessionIssueFailed
	}

	srv.log(ctx).Info("Owner signed in",
		slog.String("owner_id", owner.ID),
		slog.String("provider", srv.verifier.Provider()),
	)

	return &usecase.Session{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenSvc.GetAccessTokenDuration().Seconds()),
		Owner:       owner,
	}, nil
}
