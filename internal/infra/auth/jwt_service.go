// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"bizcard/config"
	"bizcard/internal/domain/entity"
	"bizcard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string        // Optional iss claim.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	svc := &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    time.Hour,
		now:          time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		svc.issuer = cfg.Auth.Issuer
	}

	return svc, nil
}

// GenerateAccessToken creates a signed HS256 access token whose subject is the owner ID.
func (s *jwtService) GenerateAccessToken(owner entity.Owner) (string, error) {
	if owner.ID == "" {
		return "", errors.New("owner ID is required")
	}

	now := s.now()
	claims := service.Claims{
		Email: owner.Email,
		Name:  owner.Name,
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   owner.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and token type of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid access token")
	}

	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
