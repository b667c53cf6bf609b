// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"bizcard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for service access tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the owner.
	GenerateAccessToken(owner entity.Owner) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}
