package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"
	"bizcard/internal/infra/persistence/memory"
	mockRepo "bizcard/internal/mocks/repository"
	"bizcard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publicCardServiceFixtures holds all test dependencies for public card service tests.
type publicCardServiceFixtures struct {
	service  usecase.PublicCardUsecase
	cardRepo *mockRepo.MockCardRepository
}

func createTestPublicCardService(t *testing.T) publicCardServiceFixtures {
	cardRepo := mockRepo.NewMockCardRepository(t)

	return publicCardServiceFixtures{
		service:  NewPublicCardService(cardRepo, discardLogger()),
		cardRepo: cardRepo,
	}
}

func TestPublicCardService_ResolveSlug_NotFound(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().QueryByField(ctx, repository.FieldURLSlug, "card-none00").Return([]*entity.Card{}, nil)

	card, err := fx.service.ResolveSlug(ctx, "card-none00")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	assert.Nil(t, card)
}

func TestPublicCardService_ResolveSlug_EmptySlug(t *testing.T) {
	fx := createTestPublicCardService(t)

	card, err := fx.service.ResolveSlug(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	assert.Nil(t, card)
}

func TestPublicCardService_ResolveSlug_SingleMatchOmitsOwner(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()
	stored := storedCard("card-id-1", "secret-owner", "card-abc123")
	stored.UpdatedAt = stored.CreatedAt.Add(time.Minute)

	fx.cardRepo.EXPECT().QueryByField(ctx, repository.FieldURLSlug, "card-abc123").Return([]*entity.Card{stored}, nil)

	card, err := fx.service.ResolveSlug(ctx, "card-abc123")
	require.NoError(t, err)
	assert.Equal(t, "card-id-1", card.ID)
	assert.Equal(t, "Acme Inc", card.BusinessName)
	assert.False(t, card.UpdatedAt.Before(card.CreatedAt))

	body, err := json.Marshal(card)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret-owner")
	assert.NotContains(t, string(body), "ownerId")
	assert.NotContains(t, string(body), "userId")
}

func TestPublicCardService_ResolveSlug_IsCaseSensitive(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().QueryByField(ctx, repository.FieldURLSlug, "CARD-ABC123").Return(nil, nil)

	_, err := fx.service.ResolveSlug(ctx, "CARD-ABC123")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestPublicCardService_ResolveSlug_StoreFailure(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()
	storeErr := errors.New("deadline exceeded")

	fx.cardRepo.EXPECT().
		QueryByField(ctx, repository.FieldURLSlug, "card-abc123").
		Return(nil, domainerrors.NewDatabaseExecuteError(storeErr, "query")).
		Once()

	card, err := fx.service.ResolveSlug(ctx, "card-abc123")
	require.Error(t, err)
	assert.Nil(t, card)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domainerrors.ErrCardNotFound)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestPublicCardService_ResolveSlug_DuplicateSlugIsStable(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCardRepository()

	first := storedCard("", "owner-1", "dup")
	first.BusinessName = "First"
	firstID, err := store.Create(ctx, first)
	require.NoError(t, err)

	second := storedCard("", "owner-2", "dup")
	second.BusinessName = "Second"
	_, err = store.Create(ctx, second)
	require.NoError(t, err)

	svc := NewPublicCardService(store, discardLogger())
	for range 10 {
		card, err := svc.ResolveSlug(ctx, "dup")
		require.NoError(t, err)
		assert.Equal(t, firstID, card.ID)
		assert.Equal(t, "First", card.BusinessName)
	}
}

func TestPublicCardService_ExportVCard(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()
	stored := storedCard("card-id-1", "owner-1", "card-abc123")
	stored.BusinessDescription = "Great coffee"
	stored.Website = "https://acme.example"

	fx.cardRepo.EXPECT().QueryByField(ctx, repository.FieldURLSlug, "card-abc123").Return([]*entity.Card{stored}, nil)

	file, err := fx.service.ExportVCard(ctx, "card-abc123")
	require.NoError(t, err)
	assert.Equal(t, "Acme_Inc.vcf", file.FileName)
	assert.Equal(t, "text/vcard", file.MediaType)
	assert.Equal(t, strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Acme Inc",
		"ORG:Acme Inc",
		"NOTE:Great coffee",
		"TEL;TYPE=work,voice:555-1234",
		"EMAIL;TYPE=work:a@acme.com",
		"ADR;TYPE=work:;;1 Main St",
		"URL:https://acme.example",
		"END:VCARD",
	}, "\r\n"), file.Content)
}

func TestPublicCardService_ExportVCard_NotFound(t *testing.T) {
	fx := createTestPublicCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().QueryByField(ctx, repository.FieldURLSlug, "card-none00").Return(nil, nil)

	file, err := fx.service.ExportVCard(ctx, "card-none00")
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	assert.Nil(t, file)
}
