// Package memory provides an in-process card store for local development and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"bizcard/internal/domain/entity"
	"bizcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cardRepository keeps cards in insertion order. Like Firestore it does not
// enforce slug uniqueness, so duplicate slugs can be stored.
type cardRepository struct {
	mu    sync.RWMutex
	cards map[string]*entity.Card
	order []string
}

// NewCardRepository creates an empty in-memory card store
func NewCardRepository() repository.CardRepository {
	return &cardRepository{
		cards: make(map[string]*entity.Card),
	}
}

func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	stored := cloneCard(card)
	stored.ID = uuid.Must(uuid.NewV7()).String()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.cards[stored.ID] = stored
	repo.order = append(repo.order, stored.ID)

	return stored.ID, nil
}

func (repo *cardRepository) Update(ctx context.Context, id string, patch *entity.CardPatch) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	card, ok := repo.cards[id]
	if !ok {
		return repository.ErrCardNotFound
	}
	card.Apply(patch)

	return nil
}

func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	card, ok := repo.cards[id]
	if !ok {
		return nil, repository.ErrCardNotFound
	}

	return cloneCard(card), nil
}

func (repo *cardRepository) QueryByField(ctx context.Context, field repository.CardField, value string) ([]*entity.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var match func(*entity.Card) bool
	switch field {
	case repository.FieldURLSlug:
		match = func(c *entity.Card) bool { return c.URLSlug == value }
	case repository.FieldOwnerID:
		match = func(c *entity.Card) bool { return c.OwnerID == value }
	default:
		return nil, errors.Errorf("unsupported card field %q", field)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	cards := make([]*entity.Card, 0)
	for _, id := range repo.order {
		if card := repo.cards[id]; match(card) {
			cards = append(cards, cloneCard(card))
		}
	}

	return cards, nil
}

func cloneCard(card *entity.Card) *entity.Card {
	cloned := *card
	cloned.Keywords = slices.Clone(card.Keywords)
	if cloned.Keywords == nil {
		cloned.Keywords = []string{}
	}

	return &cloned
}
