package firestore

import (
	"testing"
	"time"

	"bizcard/internal/domain/entity"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestPatchUpdates(t *testing.T) {
	name := "Acme"
	empty := ""
	keywords := []string{"a", "b"}
	updatedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	updates := patchUpdates(&entity.CardPatch{
		BusinessName: &name,
		Website:      &empty,
		Keywords:     &keywords,
		UpdatedAt:    updatedAt,
	})

	assert.Equal(t, []gcfirestore.Update{
		{Path: "businessName", Value: "Acme"},
		{Path: "website", Value: ""},
		{Path: "keywords", Value: []string{"a", "b"}},
		{Path: "updatedAt", Value: updatedAt},
	}, updates)
}

func TestPatchUpdates_OnlyTimestamp(t *testing.T) {
	updatedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	updates := patchUpdates(&entity.CardPatch{UpdatedAt: updatedAt})

	assert.Equal(t, []gcfirestore.Update{{Path: "updatedAt", Value: updatedAt}}, updates)
}

func TestFromCardDomain_UsesStoredFieldNames(t *testing.T) {
	doc := fromCardDomain(&entity.Card{
		OwnerID: "uid-1",
		URLSlug: "card-abc123",
	})

	assert.Equal(t, "uid-1", doc.UserID)
	assert.Equal(t, "card-abc123", doc.URLSlug)
	assert.Equal(t, []string{}, doc.Keywords)
}

func TestValidDocumentID(t *testing.T) {
	assert.True(t, validDocumentID("AbC123xyz"))
	assert.False(t, validDocumentID(""))
	assert.False(t, validDocumentID("a/b"))
}
