// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

const (
	// MaxKeywords is the number of keywords a card may carry.
	MaxKeywords = 3
	// MaxDescriptionLength is the description cap, counted in characters.
	MaxDescriptionLength = 250
)

// Card is a business card owned by a single authenticated user and published under URLSlug.
type Card struct {
	ID                  string    `json:"id"`                            // Assigned by the record store on creation.
	OwnerID             string    `json:"ownerId"`                       // Identity provider subject of the owner.
	BusinessName        string    `json:"businessName"`                  // Used for both FN and ORG in the vCard.
	BusinessDescription string    `json:"businessDescription,omitempty"` // Up to MaxDescriptionLength characters.
	PhoneNumber         string    `json:"phoneNumber"`                   // Free text.
	Email               string    `json:"email"`                         // Free text.
	Address             string    `json:"address"`                       // Free text, single line.
	Website             string    `json:"website,omitempty"`             // Optional URL.
	HeroImage           string    `json:"heroImage,omitempty"`           // Optional data URI or URL.
	URLSlug             string    `json:"urlSlug"`                       // Public lookup key.
	Keywords            []string  `json:"keywords"`                      // Ordered, at most MaxKeywords.
	CreatedAt           time.Time `json:"createdAt"`                     // Set once at creation.
	UpdatedAt           time.Time `json:"updatedAt"`                     // Set on every create or update.
}

// Public returns the owner-free view of the card shown to public viewers.
func (c *Card) Public() *PublicCard {
	return &PublicCard{
		ID:                  c.ID,
		BusinessName:        c.BusinessName,
		BusinessDescription: c.BusinessDescription,
		PhoneNumber:         c.PhoneNumber,
		Email:               c.Email,
		Address:             c.Address,
		Website:             c.Website,
		HeroImage:           c.HeroImage,
		URLSlug:             c.URLSlug,
		Keywords:            slices.Clone(c.Keywords),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// NormalizeTimestamps fills missing timestamps so that CreatedAt <= UpdatedAt holds.
// fallback is used when neither timestamp is present.
func (c *Card) NormalizeTimestamps(fallback time.Time) {
	switch {
	case c.CreatedAt.IsZero() && c.UpdatedAt.IsZero():
		c.CreatedAt = fallback
		c.UpdatedAt = fallback
	case c.CreatedAt.IsZero():
		c.CreatedAt = c.UpdatedAt
	case c.UpdatedAt.IsZero():
		c.UpdatedAt = c.CreatedAt
	}

	if c.UpdatedAt.Before(c.CreatedAt) {
		c.UpdatedAt = c.CreatedAt
	}
}

// Apply copies every field set on the patch onto the card.
func (c *Card) Apply(patch *CardPatch) {
	if patch.BusinessName != nil {
		c.BusinessName = *patch.BusinessName
	}
	if patch.BusinessDescription != nil {
		c.BusinessDescription = *patch.BusinessDescription
	}
	if patch.PhoneNumber != nil {
		c.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Website != nil {
		c.Website = *patch.Website
	}
	if patch.HeroImage != nil {
		c.HeroImage = *patch.HeroImage
	}
	if patch.URLSlug != nil {
		c.URLSlug = *patch.URLSlug
	}
	if patch.Keywords != nil {
		c.Keywords = slices.Clone(*patch.Keywords)
	}
	c.UpdatedAt = patch.UpdatedAt
}

// PublicCard is the card as seen by an unauthenticated viewer. It deliberately has no owner field.
type PublicCard struct {
	ID                  string    `json:"id"`
	BusinessName        string    `json:"businessName"`
	BusinessDescription string    `json:"businessDescription,omitempty"`
	PhoneNumber         string    `json:"phoneNumber"`
	Email               string    `json:"email"`
	Address             string    `json:"address"`
	Website             string    `json:"website,omitempty"`
	HeroImage           string    `json:"heroImage,omitempty"`
	URLSlug             string    `json:"urlSlug"`
	Keywords            []string  `json:"keywords"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CardPatch is a partial update. Nil fields are left untouched; UpdatedAt is always written.
// Owner, ID and CreatedAt are not patchable.
type CardPatch struct {
	BusinessName        *string
	BusinessDescription *string
	PhoneNumber         *string
	Email               *string
	Address             *string
	Website             *string
	HeroImage           *string
	URLSlug             *string
	Keywords            *[]string
	UpdatedAt           time.Time
}
