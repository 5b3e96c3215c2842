// Package model holds the GORM-specific persistence structs. They mirror the
// database tables and are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameModel mirrors the 'games' table. The unique index on Title backs the
// global title uniqueness rule, and the check constraint keeps Keys >= 0.
type GameModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title              string     `gorm:"type:varchar(255);unique;not null"`
	Price              float64    `gorm:"not null;check:price >= 0"`
	DiscountPercentage float64    `gorm:"not null;default:0;check:discount_percentage >= 0 AND discount_percentage <= 100"`
	ReleaseDate        time.Time  `gorm:"not null"`
	DeveloperID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type               string     `gorm:"type:varchar(10);not null"`
	ParentGameID       *uuid.UUID `gorm:"type:uuid;index"`
	Keys               int        `gorm:"not null;default:0;check:keys >= 0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}
