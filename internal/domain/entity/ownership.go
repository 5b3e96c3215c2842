package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipKind discriminates the three membership collections a customer can
// hold a game in. All three share one schema and differ only by this tag.
type OwnershipKind string

const (
	// KindCart marks a game placed in the customer's shopping cart.
	KindCart OwnershipKind = "CART"
	// KindWishlist marks a game saved to the customer's wishlist.
	KindWishlist OwnershipKind = "WISHLIST"
	// KindLibrary marks a game the customer owns.
	KindLibrary OwnershipKind = "LIBRARY"
)

// String returns the string representation of the OwnershipKind.
func (k OwnershipKind) String() string {
	return string(k)
}

// IsValid checks if the OwnershipKind is a valid value.
func (k OwnershipKind) IsValid() bool {
	switch k {
	case KindCart, KindWishlist, KindLibrary:
		return true
	default:
		return false
	}
}

// OwnershipEntry asserts a (game, customer) relationship of a specific kind.
// At most one entry exists per (game, customer, kind); the store enforces this
// with a composite unique constraint, which is the final arbiter when two
// concurrent adds race on the same pair.
type OwnershipEntry struct {
	GameID      uuid.UUID
	CustomerID  uuid.UUID
	Kind        OwnershipKind
	PurchasedAt *time.Time // Non-nil only for LIBRARY entries, set at checkout.
	CreatedAt   time.Time
}
