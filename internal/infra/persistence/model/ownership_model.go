package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipEntryModel mirrors the 'ownership_entries' table. The three
// membership collections (cart, wishlist, library) share this one table and
// differ only by Kind. The composite unique index on (game_id, customer_id,
// kind) is the final arbiter for racing duplicate adds.
type OwnershipEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GameID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_ownership_pair_kind;index"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_ownership_pair_kind;index"`
	Kind        string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_ownership_pair_kind"`
	PurchasedAt *time.Time // Set only for LIBRARY entries.
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnershipEntryModel) TableName() string {
	return "ownership_entries"
}
