package usecase

import (
	"context"

	"bizcard/internal/domain/entity"
)

// ContactFile is a downloadable contact card
type ContactFile struct {
	FileName  string
	MediaType string
	Content   string
}

// PublicCardUsecase serves cards to unauthenticated viewers by slug.
type PublicCardUsecase interface {
	// ResolveSlug returns the card published under slug. When several cards share
	// the slug the first in store order wins.
	ResolveSlug(ctx context.Context, slug string) (*entity.PublicCard, error)

	// ExportVCard resolves slug and renders the card as a vCard file
	ExportVCard(ctx context.Context, slug string) (*ContactFile, error)
}
