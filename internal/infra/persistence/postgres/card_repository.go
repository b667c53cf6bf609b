// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"slices"

	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"
	"bizcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// cardColumns maps queryable card fields to their column names.
var cardColumns = map[repository.CardField]string{
	repository.FieldURLSlug: "url_slug",
	repository.FieldOwnerID: "user_id",
}

// cardRepository implements the domain.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// Migrate creates or updates the business_cards table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.CardModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate business_cards")
	}

	return nil
}

// Create persists a new card and returns its generated ID.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) (string, error) {
	cardM := fromCardDomain(card)
	cardM.ID = uuid.Must(uuid.NewV7()).String()

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return "", repository.ErrDuplicateSlug
		}
		if isNotNullConstraintViolation(err) {
			return "", domainerrors.ErrValidationFailed.WrapMessage("missing required card information")
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	return cardM.ID, nil
}

// Update writes the set fields of patch onto the card row.
func (repo *cardRepository) Update(ctx context.Context, id string, patch *entity.CardPatch) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrCardNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", id).
		Updates(patchColumns(patch))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update card")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// FindByID retrieves a card by its unique ID.
func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	// Non-UUID IDs can never match and would fail the uuid cast in PostgreSQL.
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrCardNotFound
	}

	var cardM model.CardModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find card by ID")
	}

	return toCardDomain(&cardM), nil
}

// QueryByField returns cards whose field equals value, oldest first.
func (repo *cardRepository) QueryByField(ctx context.Context, field repository.CardField, value string) ([]*entity.Card, error) {
	column, ok := cardColumns[field]
	if !ok {
		return nil, errors.Errorf("unsupported card field %q", field)
	}

	var cardModels []*model.CardModel
	err := repo.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("created_at, id").
		Find(&cardModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query cards by "+string(field))
	}

	cards := make([]*entity.Card, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toCardDomain(cardM))
	}

	return cards, nil
}

// patchColumns converts a patch into a column map, so that empty strings are written
// instead of being skipped as zero values.
func patchColumns(patch *entity.CardPatch) map[string]any {
	columns := map[string]any{
		"updated_at": patch.UpdatedAt,
	}

	setString := func(column string, value *string) {
		if value != nil {
			columns[column] = *value
		}
	}

	setString("business_name", patch.BusinessName)
	setString("business_description", patch.BusinessDescription)
	setString("phone_number", patch.PhoneNumber)
	setString("email", patch.Email)
	setString("address", patch.Address)
	setString("website", patch.Website)
	setString("hero_image", patch.HeroImage)
	setString("url_slug", patch.URLSlug)

	if patch.Keywords != nil {
		columns["keywords"] = keywordsColumn(*patch.Keywords)
	}

	return columns
}

func keywordsColumn(keywords []string) datatypes.JSONSlice[string] {
	if keywords == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](slices.Clone(keywords))
}

// --- Mapper Functions ---

// toCardDomain converts a GORM CardModel to a domain Card entity.
func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	card := &entity.Card{
		ID:                  data.ID,
		OwnerID:             data.UserID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		PhoneNumber:         data.PhoneNumber,
		Email:               data.Email,
		Address:             data.Address,
		Website:             data.Website,
		HeroImage:           data.HeroImage,
		URLSlug:             data.URLSlug,
		Keywords:            slices.Clone([]string(data.Keywords)),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if card.Keywords == nil {
		card.Keywords = []string{}
	}

	return card
}

// fromCardDomain converts a domain Card entity to a GORM CardModel.
func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	return &model.CardModel{
		ID:                  data.ID,
		UserID:              data.OwnerID,
		BusinessName:        data.BusinessName,
		BusinessDescription: data.BusinessDescription,
		PhoneNumber:         data.PhoneNumber,
		Email:               data.Email,
		Address:             data.Address,
		Website:             data.Website,
		HeroImage:           data.HeroImage,
		URLSlug:             data.URLSlug,
		Keywords:            keywordsColumn(data.Keywords),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
