package usecase

import (
	"context"

	"bizcard/internal/domain/entity"
)

// CardInput carries the fields of a new card. URLSlug is generated when empty.
type CardInput struct {
	BusinessName        string   `json:"businessName" validate:"required,max=200"`
	BusinessDescription string   `json:"businessDescription" validate:"max=250"`
	PhoneNumber         string   `json:"phoneNumber" validate:"required,max=64"`
	Email               string   `json:"email" validate:"required,max=254"`
	Address             string   `json:"address" validate:"required,max=500"`
	Website             string   `json:"website" validate:"omitempty,url,max=2048"`
	HeroImage           string   `json:"heroImage" validate:"omitempty,heroimage"`
	URLSlug             string   `json:"urlSlug" validate:"omitempty,cardslug"`
	Keywords            []string `json:"keywords" validate:"max=3,dive,keyword"`
}

// CardUpdateInput is a partial card update. Nil fields are left unchanged.
type CardUpdateInput struct {
	BusinessName        *string   `json:"businessName"`
	BusinessDescription *string   `json:"businessDescription"`
	PhoneNumber         *string   `json:"phoneNumber"`
	Email               *string   `json:"email"`
	Address             *string   `json:"address"`
	Website             *string   `json:"website"`
	HeroImage           *string   `json:"heroImage"`
	URLSlug             *string   `json:"urlSlug"`
	Keywords            *[]string `json:"keywords"`
}

// CardUsecase defines the owner-facing business card operations.
// Every method receives the authenticated owner explicitly.
type CardUsecase interface {
	// CreateCard validates and stores a new card for the owner
	CreateCard(ctx context.Context, owner entity.Owner, input *CardInput) (*entity.Card, error)

	// UpdateCard applies a partial update to one of the owner's cards
	UpdateCard(ctx context.Context, owner entity.Owner, id string, input *CardUpdateInput) (*entity.Card, error)

	// ListCards returns all cards owned by the owner
	ListCards(ctx context.Context, owner entity.Owner) ([]*entity.Card, error)

	// GetCard returns one of the owner's cards
	GetCard(ctx context.Context, owner entity.Owner, id string) (*entity.Card, error)

	// GenerateShareQR renders a PNG QR code pointing at the card's public URL
	GenerateShareQR(ctx context.Context, owner entity.Owner, id string) ([]byte, error)
}
