package usecase

import (
	"context"

	"keyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CartOutput is the customer's cart projection with the computed total.
// The total applies each game's discount.
type CartOutput struct {
	Games []*entity.Game
	Total float64
}

// CollectionUsecase defines the customer-facing cart, wishlist and library
// operations, including the checkout transaction. All operations are scoped to
// the calling customer; operations for different customers are independent.
type CollectionUsecase interface {
	// AddToWishlist saves a game to the customer's wishlist.
	// Fails if the game is already wishlisted or already owned.
	AddToWishlist(ctx context.Context, customerID, gameID uuid.UUID) error

	// AddToCart places a game in the customer's cart.
	// Fails if the game is already carted, already owned, or out of stock.
	AddToCart(ctx context.Context, customerID, gameID uuid.UUID) error

	// MoveToCart carts a single wishlisted game. The wishlist entry stays in
	// place until checkout removes it.
	MoveToCart(ctx context.Context, customerID, gameID uuid.UUID) error

	// MoveAllToCart carts every wishlisted game that is in stock and not
	// already carted. Best-effort: unmovable items are silently skipped and
	// stay on the wishlist. Returns the games that were moved.
	MoveAllToCart(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error)

	// Checkout atomically converts the whole cart into library ownership,
	// consuming one key per game. All-or-nothing: if any item is out of
	// stock, no state changes at all.
	Checkout(ctx context.Context, customerID uuid.UUID) error

	// RemoveFromCart deletes the cart entry; absent entries are a no-op, but
	// an unknown game id is an error.
	RemoveFromCart(ctx context.Context, customerID, gameID uuid.UUID) error

	// RemoveFromWishlist deletes the wishlist entry; same contract as RemoveFromCart.
	RemoveFromWishlist(ctx context.Context, customerID, gameID uuid.UUID) error

	// ClearCart removes every cart entry of the customer.
	ClearCart(ctx context.Context, customerID uuid.UUID) error

	// ClearWishlist removes every wishlist entry of the customer.
	ClearWishlist(ctx context.Context, customerID uuid.UUID) error

	// ListCart retrieves the cart's games and the discounted total.
	ListCart(ctx context.Context, customerID uuid.UUID) (*CartOutput, error)

	// ListWishlist retrieves the wishlisted games.
	ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error)

	// ListLibrary retrieves the owned games.
	ListLibrary(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error)
}
