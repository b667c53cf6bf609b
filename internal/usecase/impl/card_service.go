// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"bizcard/config"
	deliverycontext "bizcard/internal/delivery/context"
	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"
	"bizcard/internal/domain/service"
	"bizcard/internal/domain/slug"
	"bizcard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	cardRepo  repository.CardRepository
	qrcodeSvc service.QRCodeService
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger

	slugAttempts int
	shareBaseURL string
	newSlug      func() string
	now          func() time.Time
}

// NewCardService is the constructor for cardService.
func NewCardService(
	cardRepo repository.CardRepository,
	qrcodeSvc service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CardUsecase {
	cardCfg := cfg.Card
	if cardCfg == nil {
		cardCfg = &config.CardConfig{SlugPrefix: "card-", SlugAttempts: 5, MaxHeroImageBytes: 1 << 20}
	}

	var shareBaseURL string
	if cfg.QRCode != nil {
		shareBaseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &cardService{
		cardRepo:     cardRepo,
		qrcodeSvc:    qrcodeSvc,
		publisher:    publisher,
		validate:     newCardValidator(cardCfg.MaxHeroImageBytes),
		logger:       logger,
		slugAttempts: max(cardCfg.SlugAttempts, 1),
		shareBaseURL: shareBaseURL,
		newSlug:      func() string { return slug.Generate(cardCfg.SlugPrefix) },
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCard validates the input, allocates a slug and stores the card for the owner.
func (srv *cardService) CreateCard(ctx context.Context, owner entity.Owner, input *usecase.CardInput) (*entity.Card, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("card body is required")
	}

	normalized := *input
	normalized.Keywords = trimKeywords(input.Keywords)
	if err := srv.validate.Struct(&normalized); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
	}

	urlSlug, err := srv.allocateSlug(ctx, normalized.URLSlug, "")
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	card := &entity.Card{
		OwnerID:             owner.ID,
		BusinessName:        normalized.BusinessName,
		BusinessDescription: normalized.BusinessDescription,
		PhoneNumber:         normalized.PhoneNumber,
		Email:               normalized.Email,
		Address:             normalized.Address,
		Website:             normalized.Website,
		HeroImage:           normalized.HeroImage,
		URLSlug:             urlSlug,
		Keywords:            normalized.Keywords,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	id, err := srv.cardRepo.Create(ctx, card)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrSlugTaken
		}

		return nil, errors.Wrap(err, "failed to create card")
	}
	card.ID = id

	srv.log(ctx).Info("Card created",
		slog.String("card_id", card.ID),
		slog.String("url_slug", card.URLSlug),
	)
	srv.publish(ctx, service.CardEventCreated, card)

	return card, nil
}

// UpdateCard applies the supplied fields to one of the owner's cards.
func (srv *cardService) UpdateCard(ctx context.Context, owner entity.Owner, id string, input *usecase.CardUpdateInput) (*entity.Card, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("card body is required")
	}

	card, err := srv.ownedCard(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	patch, err := srv.buildPatch(card, input)
	if err != nil {
		return nil, err
	}

	if patch.URLSlug != nil && *patch.URLSlug != card.URLSlug {
		if _, err := srv.allocateSlug(ctx, *patch.URLSlug, card.ID); err != nil {
			return nil, err
		}
	}

	if err := srv.cardRepo.Update(ctx, card.ID, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrCardNotFound):
			return nil, domainerrors.ErrCardNotFound
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, domainerrors.ErrSlugTaken
		}

		return nil, errors.Wrap(err, "failed to update card")
	}

	updated, err := srv.cardRepo.FindByID(ctx, card.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to reload card")
	}

	srv.log(ctx).Info("Card updated", slog.String("card_id", updated.ID))
	srv.publish(ctx, service.CardEventUpdated, updated)

	return updated, nil
}

// ListCards returns every card owned by the owner in store order.
func (srv *cardService) ListCards(ctx context.Context, owner entity.Owner) ([]*entity.Card, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	cards, err := srv.cardRepo.QueryByField(ctx, repository.FieldOwnerID, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}

// GetCard returns one of the owner's cards.
func (srv *cardService) GetCard(ctx context.Context, owner entity.Owner, id string) (*entity.Card, error) {
	return srv.ownedCard(ctx, owner, id)
}

// GenerateShareQR encodes the card's public URL as a PNG QR code.
func (srv *cardService) GenerateShareQR(ctx context.Context, owner entity.Owner, id string) ([]byte, error) {
	card, err := srv.ownedCard(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateURLQR(srv.shareURL(card.URLSlug))
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR code",
			slog.String("card_id", card.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQRCodeFailed
	}

	return png, nil
}

func (srv *cardService) shareURL(urlSlug string) string {
	return srv.shareBaseURL + "/card/" + url.PathEscape(urlSlug)
}

// ownedCard loads a card and checks that owner is its owner.
func (srv *cardService) ownedCard(ctx context.Context, owner entity.Owner, id string) (*entity.Card, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	card, err := srv.cardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	if card.OwnerID != owner.ID {
		srv.log(ctx).Warn("Card access denied",
			slog.String("card_id", card.ID),
			slog.String("owner_id", owner.ID),
		)

		return nil, domainerrors.ErrCardForbidden
	}

	return card, nil
}

// buildPatch validates the supplied fields against the card they will be merged into.
func (srv *cardService) buildPatch(card *entity.Card, input *usecase.CardUpdateInput) (*entity.CardPatch, error) {
	if input.URLSlug != nil && *input.URLSlug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("urlSlug failed on 'required'")
	}

	merged := usecase.CardInput{
		BusinessName:        card.BusinessName,
		BusinessDescription: card.BusinessDescription,
		PhoneNumber:         card.PhoneNumber,
		Email:               card.Email,
		Address:             card.Address,
		Website:             card.Website,
		HeroImage:           card.HeroImage,
		URLSlug:             card.URLSlug,
		Keywords:            card.Keywords,
	}
	patch := &entity.CardPatch{}
	fields := make([]string, 0, 9)

	setString := func(field string, value *string, target *string, patchField **string) {
		if value == nil {
			return
		}
		*target = *value
		*patchField = value
		fields = append(fields, field)
	}

	setString("BusinessName", input.BusinessName, &merged.BusinessName, &patch.BusinessName)
	setString("BusinessDescription", input.BusinessDescription, &merged.BusinessDescription, &patch.BusinessDescription)
	setString("PhoneNumber", input.PhoneNumber, &merged.PhoneNumber, &patch.PhoneNumber)
	setString("Email", input.Email, &merged.Email, &patch.Email)
	setString("Address", input.Address, &merged.Address, &patch.Address)
	setString("Website", input.Website, &merged.Website, &patch.Website)
	setString("HeroImage", input.HeroImage, &merged.HeroImage, &patch.HeroImage)
	setString("URLSlug", input.URLSlug, &merged.URLSlug, &patch.URLSlug)

	if input.Keywords != nil {
		keywords := trimKeywords(*input.Keywords)
		merged.Keywords = keywords
		patch.Keywords = &keywords
		fields = append(fields, "Keywords")
	}

	// Stored fields that were not supplied are not re-validated, so legacy
	// records stay editable.
	if len(fields) > 0 {
		if err := srv.validate.StructPartial(&merged, fields...); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(validationDetails(err))
		}
	}

	now := srv.now().UTC()
	if now.Before(card.CreatedAt) {
		now = card.CreatedAt
	}
	patch.UpdatedAt = now

	return patch, nil
}

// allocateSlug returns requested if no other card uses it, or a freshly
// generated free slug when requested is empty. exceptID is the card being edited.
func (srv *cardService) allocateSlug(ctx context.Context, requested, exceptID string) (string, error) {
	if requested != "" {
		taken, err := srv.slugTaken(ctx, requested, exceptID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", domainerrors.ErrSlugTaken
		}

		return requested, nil
	}

	for range srv.slugAttempts {
		candidate := srv.newSlug()
		taken, err := srv.slugTaken(ctx, candidate, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		srv.log(ctx).Debug("Generated slug already in use", slog.String("url_slug", candidate))
	}

	return "", domainerrors.ErrSlugExhausted
}

func (srv *cardService) slugTaken(ctx context.Context, urlSlug, exceptID string) (bool, error) {
	cards, err := srv.cardRepo.QueryByField(ctx, repository.FieldURLSlug, urlSlug)
	if err != nil {
		return false, errors.Wrap(err, "failed to check slug availability")
	}

	return slices.ContainsFunc(cards, func(c *entity.Card) bool {
		return c.ID != exceptID
	}), nil
}

// publish sends a card event. The card is already stored, so failures are only logged.
func (srv *cardService) publish(ctx context.Context, eventType string, card *entity.Card) {
	event := &service.CardEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		CardID:     card.ID,
		URLSlug:    card.URLSlug,
		OwnerID:    card.OwnerID,
		OccurredAt: card.UpdatedAt,
	}

	if err := srv.publisher.PublishCardEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish card event",
			slog.String("type", eventType),
			slog.String("card_id", card.ID),
			slog.Any("error", err),
		)
	}
}

func trimKeywords(keywords []string) []string {
	trimmed := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		trimmed = append(trimmed, strings.TrimSpace(keyword))
	}

	return trimmed
}
