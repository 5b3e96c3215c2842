// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGameNotFound is a domain-specific error returned when a game is not found.
var ErrGameNotFound = errors.New("game not found")

// ErrNoKeysLeft is returned by DecrementKey when the conditional decrement
// touched no row because the stock was already exhausted.
var ErrNoKeysLeft = errors.New("no keys left")

// GameRepository defines the standard operations for game persistence.
type GameRepository interface {
	// FindByID retrieves a single game by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// List retrieves the full catalog.
	List(ctx context.Context) ([]*entity.Game, error)

	// ListAddons retrieves all ADDON games referencing the given base game.
	ListAddons(ctx context.Context, parentGameID uuid.UUID) ([]*entity.Game, error)

	// Create persists a new game. A duplicate title surfaces as a domain error.
	Create(ctx context.Context, game *entity.Game) error

	// Update modifies an existing game. A duplicate title surfaces as a domain error.
	Update(ctx context.Context, game *entity.Game) error

	// AddKeys atomically increments the game's key stock by delta.
	AddKeys(ctx context.Context, id uuid.UUID, delta int) error

	// SetKeys sets the game's key stock to an absolute value.
	SetKeys(ctx context.Context, id uuid.UUID, keys int) error

	// DecrementKey atomically decrements one key, guarded by keys > 0.
	// Returns ErrNoKeysLeft when no row was affected, which re-validates the
	// item against concurrent checkouts.
	DecrementKey(ctx context.Context, id uuid.UUID) error

	// Delete removes the game record.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAddons removes all ADDON games referencing the given base game.
	DeleteAddons(ctx context.Context, parentGameID uuid.UUID) error
}
