package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizcard/internal/delivery/context"
	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"
	"bizcard/internal/domain/vcard"
	"bizcard/internal/usecase"

	"github.com/pkg/errors"
)

// publicCardService implements the PublicCardUsecase interface.
// It holds no mutable state and is safe for concurrent use.
type publicCardService struct {
	cardRepo repository.CardRepository
	logger   *slog.Logger
}

// NewPublicCardService is the constructor for publicCardService.
func NewPublicCardService(cardRepo repository.CardRepository, logger *slog.Logger) usecase.PublicCardUsecase {
	return &publicCardService{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *publicCardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveSlug returns the owner-free view of the card published under urlSlug.
func (srv *publicCardService) ResolveSlug(ctx context.Context, urlSlug string) (*entity.PublicCard, error) {
	card, err := srv.resolve(ctx, urlSlug)
	if err != nil {
		return nil, err
	}

	return card.Public(), nil
}

// ExportVCard resolves urlSlug and renders the card as a vCard 3.0 file.
func (srv *publicCardService) ExportVCard(ctx context.Context, urlSlug string) (*usecase.ContactFile, error) {
	card, err := srv.resolve(ctx, urlSlug)
	if err != nil {
		return nil, err
	}

	content := vcard.Serialize(vcard.Contact{
		BusinessName:        card.BusinessName,
		BusinessDescription: card.BusinessDescription,
		PhoneNumber:         card.PhoneNumber,
		Email:               card.Email,
		Address:             card.Address,
		Website:             card.Website,
	})

	return &usecase.ContactFile{
		FileName:  vcard.FileName(card.BusinessName),
		MediaType: vcard.MediaType,
		Content:   content,
	}, nil
}

// resolve looks the slug up by exact match. When several cards share it, the
// first in the store's result order is used and the ambiguity is logged.
func (srv *publicCardService) resolve(ctx context.Context, urlSlug string) (*entity.Card, error) {
	if urlSlug == "" {
		return nil, domainerrors.ErrCardNotFound
	}

	cards, err := srv.cardRepo.QueryByField(ctx, repository.FieldURLSlug, urlSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve card slug")
	}

	switch len(cards) {
	case 0:
		return nil, domainerrors.ErrCardNotFound
	case 1:
	default:
		srv.log(ctx).Warn("Multiple cards share one slug, serving the first",
			slog.String("url_slug", urlSlug),
			slog.Int("match_count", len(cards)),
			slog.String("card_id", cards[0].ID),
		)
	}

	return cards[0], nil
}
