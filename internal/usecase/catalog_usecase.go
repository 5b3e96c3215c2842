// Package usecase defines the application's use case interfaces and their
// input/output types. Handlers depend on these interfaces, never on the
// concrete services.
package usecase

import (
	"context"
	"time"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGameInput carries the fields a developer supplies when publishing a game.
// New games always start with zero keys and no discount.
type CreateGameInput struct {
	Title        string
	Price        float64
	ReleaseDate  time.Time
	Type         entity.GameType
	ParentGameID *uuid.UUID
}

// UpdateGameInput carries a partial update; nil fields are left untouched.
type UpdateGameInput struct {
	Title              *string
	Price              *float64
	DiscountPercentage *float64
	ReleaseDate        *time.Time
}

// CatalogUsecase defines the inventory management operations available to developers.
// Every mutating operation is scoped to the owning developer.
type CatalogUsecase interface {
	// CreateGame publishes a new game owned by the calling developer.
	CreateGame(ctx context.Context, developerID uuid.UUID, input *CreateGameInput) (*entity.Game, error)

	// UpdateGame applies a partial update to a game owned by the caller.
	UpdateGame(ctx context.Context, developerID, gameID uuid.UUID, input *UpdateGameInput) (*entity.Game, error)

	// AddKeys increases the game's key stock by delta; delta must be positive.
	AddKeys(ctx context.Context, developerID, gameID uuid.UUID, delta int) (*entity.Game, error)

	// MarkOutOfStock sets the game's key stock to zero. Idempotent.
	MarkOutOfStock(ctx context.Context, developerID, gameID uuid.UUID) error

	// DeleteGame removes the game, its add-ons, and every cart, wishlist and
	// library entry referencing any of them, in one transaction.
	DeleteGame(ctx context.Context, developerID, gameID uuid.UUID) error

	// ListGames retrieves the full catalog.
	ListGames(ctx context.Context) ([]*entity.Game, error)

	// GetGame retrieves a single game.
	GetGame(ctx context.Context, gameID uuid.UUID) (*entity.Game, error)
}
