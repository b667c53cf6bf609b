package memory

import (
	"context"
	"testing"
	"time"

	"bizcard/internal/domain/entity"
	"bizcard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(ownerID, slug string) *entity.Card {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.Card{
		OwnerID:      ownerID,
		BusinessName: "Acme Bakery",
		PhoneNumber:  "555-0100",
		Email:        "hi@acme.test",
		Address:      "1 Main St",
		URLSlug:      slug,
		Keywords:     []string{"bread", "cake"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCardRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository()

	card := newCard("owner-1", "card-abc123")
	id, err := repo.Create(ctx, card)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Empty(t, card.ID, "input card must not be mutated")

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Acme Bakery", found.BusinessName)
	assert.Equal(t, []string{"bread", "cake"}, found.Keywords)

	found.Keywords[0] = "changed"
	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bread", again.Keywords[0], "returned cards must be copies")
}

func TestCardRepository_FindByID_NotFound(t *testing.T) {
	_, err := NewCardRepository().FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository()

	id, err := repo.Create(ctx, newCard("owner-1", "card-abc123"))
	require.NoError(t, err)

	name := "Acme Patisserie"
	keywords := []string{"pastry"}
	updatedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Update(ctx, id, &entity.CardPatch{
		BusinessName: &name,
		Keywords:     &keywords,
		UpdatedAt:    updatedAt,
	}))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, name, found.BusinessName)
	assert.Equal(t, keywords, found.Keywords)
	assert.Equal(t, "555-0100", found.PhoneNumber)
	assert.Equal(t, updatedAt, found.UpdatedAt)

	err = repo.Update(ctx, "missing", &entity.CardPatch{UpdatedAt: updatedAt})
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardRepository_QueryByField_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository()

	first, err := repo.Create(ctx, newCard("owner-1", "card-dup001"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newCard("owner-2", "card-other"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newCard("owner-3", "card-dup001"))
	require.NoError(t, err)

	for range 5 {
		cards, err := repo.QueryByField(ctx, repository.FieldURLSlug, "card-dup001")
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, first, cards[0].ID)
		assert.Equal(t, second, cards[1].ID)
	}

	byOwner, err := repo.QueryByField(ctx, repository.FieldOwnerID, "owner-2")
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, "card-other", byOwner[0].URLSlug)
}

func TestCardRepository_QueryByField_EmptyAndUnsupported(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository()

	cards, err := repo.QueryByField(ctx, repository.FieldURLSlug, "card-none00")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = repo.QueryByField(ctx, repository.CardField("businessName"), "Acme")
	assert.Error(t, err)
}

func TestCardRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCardRepository().QueryByField(ctx, repository.FieldURLSlug, "card-abc123")
	assert.ErrorIs(t, err, context.Canceled)
}
