// Package firestore stores business cards as documents in a Cloud Firestore collection.
package firestore

import (
	"context"
	"slices"
	"strings"
	"time"

	"bizcard/internal/domain/entity"
	domainerrors "bizcard/internal/domain/errors"
	"bizcard/internal/domain/repository"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultCollection is the collection used when none is configured.
const DefaultCollection = "businessCards"

// cardDocument is the stored shape of a card. Field names match the documents
// written by earlier versions of the product, so existing collections keep working.
type cardDocument struct {
	BusinessName        string    `firestore:"businessName"`
	BusinessDescription string    `firestore:"businessDescription"`
	PhoneNumber         string    `firestore:"phoneNumber"`
	Email               string    `firestore:"email"`
	Address             string    `firestore:"address"`
	Website             string    `firestore:"website"`
	HeroImage           string    `firestore:"heroImage"`
	UserID              string    `firestore:"userId"`
	URLSlug             string    `firestore:"urlSlug"`
	Keywords            []string  `firestore:"keywords"`
	CreatedAt           time.Time `firestore:"createdAt"`
	UpdatedAt           time.Time `firestore:"updatedAt"`
}

// cardRepository implements the domain.CardRepository interface.
// Firestore has no unique constraints, so duplicate slugs are possible.
type cardRepository struct {
	collection *gcfirestore.CollectionRef
}

// NewCardRepository creates a card store backed by the named collection
func NewCardRepository(client *gcfirestore.Client, collection string) repository.CardRepository {
	if collection == "" {
		collection = DefaultCollection
	}

	return &cardRepository{
		collection: client.Collection(collection),
	}
}

// Create adds a document with an auto-generated ID.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) (string, error) {
	ref := repo.collection.NewDoc()
	if _, err := ref.Create(ctx, fromCardDomain(card)); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to create card document")
	}

	return ref.ID, nil
}

// Update writes only the patched fields. The document must already exist.
func (repo *cardRepository) Update(ctx context.Context, id string, patch *entity.CardPatch) error {
	if !validDocumentID(id) {
		return repository.ErrCardNotFound
	}

	_, err := repo.collection.Doc(id).Update(ctx, patchUpdates(patch))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCardNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update card document")
	}

	return nil
}

// FindByID retrieves a card document by its ID.
func (repo *cardRepository) FindByID(ctx context.Context, id string) (*entity.Card, error) {
	if !validDocumentID(id) {
		return nil, repository.ErrCardNotFound
	}

	snap, err := repo.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get card document")
	}

	return toCardDomain(snap)
}

// QueryByField runs an equality query. Results come back in document ID order,
// which is Firestore's default ordering for single-field equality queries.
func (repo *cardRepository) QueryByField(ctx context.Context, field repository.CardField, value string) ([]*entity.Card, error) {
	switch field {
	case repository.FieldURLSlug, repository.FieldOwnerID:
	default:
		return nil, errors.Errorf("unsupported card field %q", field)
	}

	snaps, err := repo.collection.Where(string(field), "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query card documents by "+string(field))
	}

	cards := make([]*entity.Card, 0, len(snaps))
	for _, snap := range snaps {
		card, err := toCardDomain(snap)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func validDocumentID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}

func patchUpdates(patch *entity.CardPatch) []gcfirestore.Update {
	updates := make([]gcfirestore.Update, 0, 10)

	setString := func(path string, value *string) {
		if value != nil {
			updates = append(updates, gcfirestore.Update{Path: path, Value: *value})
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
		updates = append(updates, gcfirestore.Update{Path: "keywords", Value: nonNilKeywords(*patch.Keywords)})
	}

	return append(updates, gcfirestore.Update{Path: "updatedAt", Value: patch.UpdatedAt})
}

// toCardDomain decodes a snapshot. Documents written without timestamps fall back
// to the server-maintained create and update times.
func toCardDomain(snap *gcfirestore.DocumentSnapshot) (*entity.Card, error) {
	var doc cardDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode card document "+snap.Ref.ID)
	}

	card := &entity.Card{
		ID:                  snap.Ref.ID,
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
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}

	if card.CreatedAt.IsZero() {
		card.CreatedAt = snap.CreateTime
	}
	if card.UpdatedAt.IsZero() {
		card.UpdatedAt = snap.UpdateTime
	}
	card.NormalizeTimestamps(snap.ReadTime)

	return card, nil
}

func fromCardDomain(card *entity.Card) *cardDocument {
	return &cardDocument{
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
