package middleware

import (
	"strings"

	deliverycontext "bizcard/internal/delivery/context"
	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates owners by their service access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the owner on the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetOwner(c, entity.Owner{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		})

		return next(c)
	}
}

// RequireOwner returns the owner stored by Authenticate, or ErrUnauthorized
// when the route was reached without it.
func RequireOwner(c echo.Context) (entity.Owner, error) {
	owner, ok := deliverycontext.GetOwner(c)
	if !ok {
		return entity.Owner{}, domainerrors.ErrUnauthorized
	}

	return owner, nil
}
