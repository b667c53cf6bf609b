package model

import (
	"time"

	"gorm.io/datatypes"
)

// CardModel is the GORM-specific struct for the 'business_cards' table.
// Timestamps are written by the card service, not by GORM.
type CardModel struct {
	ID                  string                      `gorm:"type:uuid;primary_key;index:idx_business_cards_created_at_id,priority:2"`
	UserID              string                      `gorm:"type:varchar(128);not null;index"`
	BusinessName        string                      `gorm:"type:varchar(255);not null"`
	BusinessDescription string                      `gorm:"type:text"`
	PhoneNumber         string                      `gorm:"type:varchar(64);not null"`
	Email               string                      `gorm:"type:varchar(255);not null"`
	Address             string                      `gorm:"type:text;not null"`
	Website             string                      `gorm:"type:text"`
	HeroImage           string                      `gorm:"type:text"`
	URLSlug             string                      `gorm:"type:varchar(64);not null;uniqueIndex"`
	Keywords            datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt           time.Time                   `gorm:"not null;autoCreateTime:false;index:idx_business_cards_created_at_id,priority:1"`
	UpdatedAt           time.Time                   `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "business_cards"
}
