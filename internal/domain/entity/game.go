// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameType distinguishes base games from add-on content that depends on a base game.
type GameType string

const (
	// GameTypeBase indicates a standalone, purchasable base game.
	GameTypeBase GameType = "BASE"
	// GameTypeAddon indicates downloadable content that belongs to a base game.
	GameTypeAddon GameType = "ADDON"
)

// String returns the string representation of the GameType.
func (t GameType) String() string {
	return string(t)
}

// IsValid checks if the GameType is a valid value.
func (t GameType) IsValid() bool {
	switch t {
	case GameTypeBase, GameTypeAddon:
		return true
	default:
		return false
	}
}

// Game represents a purchasable title in the store catalog.
// Keys is the remaining stock of purchasable copies; it is decremented only by
// a successful checkout and never drops below zero.
type Game struct {
	ID                 uuid.UUID  // The unique identifier of the game.
	Title              string     // The globally unique display title.
	Price              float64    // The base price, always >= 0.
	DiscountPercentage float64    // Discount applied at checkout pricing, 0..100.
	ReleaseDate        time.Time  // The official release date.
	DeveloperID        uuid.UUID  // The owning developer; only the owner may mutate the game.
	Type               GameType   // BASE or ADDON.
	ParentGameID       *uuid.UUID // Set iff Type is ADDON; references the base game.
	Keys               int        // Remaining purchasable stock, always >= 0.
	CreatedAt          time.Time  // Timestamp of when the game was created.
	UpdatedAt          time.Time  // Timestamp of the last modification.
}

// DiscountedPrice returns the effective price after the game's discount is applied.
func (g *Game) DiscountedPrice() float64 {
	return g.Price * (1 - g.DiscountPercentage/100)
}

// InStock reports whether at least one key is available for purchase.
func (g *Game) InStock() bool {
	return g.Keys > 0
}
