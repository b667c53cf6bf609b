package usecase

import (
	"context"

	"bizcard/internal/domain/entity"
)

// Session is the result of a successful sign-in
type Session struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"` // seconds
	Owner       entity.Owner `json:"owner"`
}

// SessionUsecase exchanges identity provider ID tokens for service access tokens.
// Sign-out is the client discarding its token.
type SessionUsecase interface {
	// SignIn verifies idToken and issues an access token for its subject
	SignIn(ctx context.Context, idToken string) (*Session, error)
}
