package repository

import (
	"context"
	"errors"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateEntry is returned by Add when an entry for the same
// (game, customer, kind) already exists. The composite unique constraint in
// the store is the final arbiter, so two racing adds both funnel into this
// error and the caller translates it to the matching "already in X" message.
var ErrDuplicateEntry = errors.New("ownership entry already exists")

// OwnershipRepository is the generic keyed-set abstraction shared by the cart,
// wishlist and library collections. The kind tag selects the collection; the
// membership logic is identical for all three.
type OwnershipRepository interface {
	// Add inserts a new entry. Returns ErrDuplicateEntry if one already exists
	// for the entry's (game, customer, kind).
	Add(ctx context.Context, entry *entity.OwnershipEntry) error

	// Remove deletes the entry if present; removing an absent entry is a no-op.
	Remove(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) error

	// Exists reports whether an entry is present for the pair and kind.
	Exists(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) (bool, error)

	// RemoveAllForCustomer bulk clears all entries of the kind for the customer.
	RemoveAllForCustomer(ctx context.Context, kind entity.OwnershipKind, customerID uuid.UUID) error

	// RemoveAllForGame deletes every entry of every kind referencing the game.
	// Used by the cascading game deletion.
	RemoveAllForGame(ctx context.Context, gameID uuid.UUID) error

	// ListGamesForCustomer projects the customer's membership of the kind to
	// the referenced game records.
	ListGamesForCustomer(ctx context.Context, kind entity.OwnershipKind, customerID uuid.UUID) ([]*entity.Game, error)

	// FindEntry retrieves a single entry, or ErrEntryNotFound if absent.
	FindEntry(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) (*entity.OwnershipEntry, error)
}

// ErrEntryNotFound is returned by FindEntry when no entry exists for the pair and kind.
var ErrEntryNotFound = errors.New("ownership entry not found")
