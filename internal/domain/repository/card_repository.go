// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bizcard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for card persistence.
var (
	// ErrCardNotFound is returned when no card has the requested ID.
	ErrCardNotFound = errors.New("card not found")
	// ErrDuplicateSlug is returned by stores that enforce slug uniqueness.
	ErrDuplicateSlug = errors.New("card slug already exists")
)

// CardField names a queryable card field. Values are the stored document field names.
type CardField string

const (
	FieldURLSlug CardField = "urlSlug"
	FieldOwnerID CardField = "userId"
)

// CardRepository defines the interface for card record store operations.
type CardRepository interface {
	// Create persists a new card and returns the store-assigned ID.
	Create(ctx context.Context, card *entity.Card) (string, error)

	// Update applies a partial update to the card with the given ID.
	Update(ctx context.Context, id string, patch *entity.CardPatch) error

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id string) (*entity.Card, error)

	// QueryByField returns every card whose field equals value exactly,
	// in the store's native result order.
	QueryByField(ctx context.Context, field CardField, value string) ([]*entity.Card, error)
}
