package mongo

import (
	"context"
	"slices"
	"time"

	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cardDocument is the BSON shape of a stored card.
type cardDocument struct {
	ID                  string    `bson:"_id"`
	BusinessName        string    `bson:"businessName"`
	BusinessDescription string    `bson:"businessDescription"`
	PhoneNumber         string    `bson:"phoneNumber"`
	Email               string    `bson:"email"`
	Address             string    `bson:"address"`
	Website             string    `bson:"website"`
	HeroImage           string    `bson:"heroImage"`
	UserID              string    `bson:"userId"`
	URLSlug             string    `bson:"urlSlug"`
	Keywords            []string  `bson:"keywords"`
	CreatedAt           time.Time `bson:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt"`
}

// cardRepository implements the domain.CardRepository interface.
type cardRepository struct {
	collection *mongodriver.Collection
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(collection *mongodriver.Collection) repository.CardRepository {
	return &cardRepository{collection: collection}
}

// Create inserts a new card document with a generated ID.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) (string, error) {
	doc := fromCardDomain(card)
	doc.ID = uuid.Must(uuid.NewV7()).String()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateSlug
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert card document")
	}

	return doc.ID, nil
}

// Update sets the patched fields on an existing card document.
func (repo *cardRepository) Update(ctx context.Context, id string, patch *entity.CardPatch) error {
	result, err := repo.collection.UpdateByID(ctx, id, bson.M{"$set": patchSet(patch)})
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update card document")
	}

	if result.MatchedCount == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// FindByID retrieves a card document by its ID.
func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	var doc cardDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find card document")
	}

	return toCardDomain(&doc), nil
}

// QueryByField returns matching cards ordered by creation time, then ID.
func (repo *cardRepository) QueryByField(ctx context.Context, field repository.CardField, value string) ([]*entity.Card, error) {
	switch field {
	case repository.FieldURLSlug, repository.FieldOwnerID:
	default:
		return nil, errors.Errorf("unsupported card field %q", field)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := repo.collection.Find(ctx, bson.M{string(field): value}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query card documents by "+string(field))
	}

	var docs []*cardDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode card documents")
	}

	cards := make([]*entity.Card, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, toCardDomain(doc))
	}

	return cards, nil
}

func patchSet(patch *entity.CardPatch) bson.M {
	set := bson.M{"updatedAt": patch.UpdatedAt}

	setString := func(key string, value *string) {
		if value != nil {
			set[key] = *value
		}
	}

	setString("businessName", patch.BusinessName)
	setString("businessDescription", patch.BusinessDescription)
	setString("phoneNumber", patch.PhoneNumber)
	setString("email", patch.Email)
	setString("address", patch.Address)
	setString("website", patch.Website)
	setString("heroImage", patch.HeroImage)
	setString("urlSlug", patch.URLSlug)

	if patch.Keywords != nil {
		set["keywords"] = nonNilKeywords(*patch.Keywords)
	}

	return set
}

// --- Mapper Functions ---

// toCardDomain converts a stored document to a domain Card entity.
// BSON datetimes carry millisecond precision only.
func toCardDomain(doc *cardDocument) *entity.Card {
	card := &entity.Card{
		ID:                  doc.ID,
		OwnerID:             doc.UserID,
		BusinessName:        doc.BusinessName,
		BusinessDescription: doc.BusinessDescription,
		PhoneNumber:         doc.PhoneNumber,
		Email:               doc.Email,
		Address:             doc.Address,
		Website:             doc.Website,
		HeroImage:           doc.HeroImage,
		URLSlug:             doc.URLSlug,
		Keywords:            nonNilKeywords(doc.Keywords),
		CreatedAt:           doc.CreatedAt.UTC(),
		UpdatedAt:           doc.UpdatedAt.UTC(),
	}
	card.NormalizeTimestamps(time.Now().UTC())

	return card
}

func fromCardDomain(card *entity.Card) *cardDocument {
	return &cardDocument{
		ID:                  card.ID,
		BusinessName:        card.BusinessName,
		BusinessDescription: card.BusinessDescription,
		PhoneNumber:         card.PhoneNumber,
		Email:               card.Email,
		Address:             card.Address,
		Website:             card.Website,
		HeroImage:           card.HeroImage,
		UserID:              card.OwnerID,
		URLSlug:             card.URLSlug,
		Keywords:            nonNilKeywords(card.Keywords),
		CreatedAt:           card.CreatedAt,
		UpdatedAt:           card.UpdatedAt,
	}
}

func nonNilKeywords(keywords []string) []string {
	if keywords == nil {
		return []string{}
	}

	return slices.Clone(keywords)
}
