package impl

import (
	"context"
	"testing"
	"time"

	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/infra/persistence/memory"
	mockService "bizcard/internal/mocks/service"
	"bizcard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCardRoundTrip_UpdateKeywordsThenResolve(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCardRepository()
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCardEvent(mock.Anything, mock.Anything).Return(nil)

	clock := testNow
	cards := NewCardService(store, mockService.NewMockQRCodeService(t), publisher, testCardConfig(), discardLogger()).(*cardService)
	cards.now = func() time.Time { return clock }
	public := NewPublicCardService(store, discardLogger())

	input := validCardInput()
	input.Keywords = []string{"cafe", "bakery"}
	created, err := cards.CreateCard(ctx, testOwner, input)
	require.NoError(t, err)
	require.NotEmpty(t, created.URLSlug)

	clock = testNow.Add(time.Minute)
	_, err = cards.UpdateCard(ctx, testOwner, created.ID, &usecase.CardUpdateInput{
		Keywords: ptr([]string{"cafe", "bakery", "brunch"}),
	})
	require.NoError(t, err)

	resolved, err := public.ResolveSlug(ctx, created.URLSlug)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe", "bakery", "brunch"}, resolved.Keywords)
	assert.True(t, resolved.UpdatedAt.After(created.CreatedAt))
	assert.Equal(t, created.CreatedAt, resolved.CreatedAt)
}

func TestCardRoundTrip_SecondCardCannotTakeSlug(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCardRepository()
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCardEvent(mock.Anything, mock.Anything).Return(nil)

	cards := NewCardService(store, mockService.NewMockQRCodeService(t), publisher, testCardConfig(), discardLogger())

	input := validCardInput()
	input.URLSlug = "acme"
	_, err := cards.CreateCard(ctx, testOwner, input)
	require.NoError(t, err)

	otherOwner := entity.Owner{ID: "owner-2"}
	_, err = cards.CreateCard(ctx, otherOwner, input)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)

	list, err := cards.ListCards(ctx, otherOwner)
	require.NoError(t, err)
	assert.Empty(t, list)
}
