// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keyhub/internal/delivery/context"
	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface. It enforces
// the membership rules between cart, wishlist and library, and runs the
// checkout transaction.
type collectionService struct {
	txManager     repository.TransactionManager
	gameRepo      repository.GameRepository
	ownershipRepo repository.OwnershipRepository
	logger        *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	GameRepo      repository.GameRepository
	OwnershipRepo repository.OwnershipRepository
	Logger        *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:     params.TxManager,
		gameRepo:      params.GameRepo,
		ownershipRepo: params.OwnershipRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadGame resolves a game id to the entity, mapping the repository sentinel
// to the domain not-found error.
func (srv *collectionService) loadGame(ctx context.Context, gameID uuid.UUID) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	return game, nil
}

// AddToWishlist saves a game to the customer's wishlist. Owned games cannot be
// wishlisted; the unique constraint catches racing duplicate adds.
func (srv *collectionService) AddToWishlist(ctx context.Context, customerID, gameID uuid.UUID) error {
	if _, err := srv.loadGame(ctx, gameID); err != nil {
		return err
	}

	owned, err := srv.ownershipRepo.Exists(ctx, entity.KindLibrary, gameID, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to check library membership")
	}
	if owned {
		return domainerrors.ErrAlreadyInLibrary
	}

	err = srv.ownershipRepo.Add(ctx, &entity.OwnershipEntry{
		GameID:     gameID,
		CustomerID: customerID,
		Kind:       entity.KindWishlist,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return domainerrors.ErrAlreadyInWishlist
		}

		return err
	}

	srv.log(ctx).Debug("Game wishlisted", slog.Any("customerID", customerID), slog.Any("gameID", gameID))

	return nil
}

// AddToCart places a game in the customer's cart. Owned and out-of-stock games
// are rejected; the unique constraint catches racing duplicate adds.
func (srv *collectionService) AddToCart(ctx context.Context, customerID, gameID uuid.UUID) error {
	game, err := srv.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	owned, err := srv.ownershipRepo.Exists(ctx, entity.KindLibrary, gameID, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to check library membership")
	}
	if owned {
		return domainerrors.ErrAlreadyInLibrary
	}

	if !game.InStock() {
		return domainerrors.ErrGameNotInStock(game.Title)
	}

	err = srv.ownershipRepo.Add(ctx, &entity.OwnershipEntry{
		GameID:     gameID,
		CustomerID: customerID,
		Kind:       entity.KindCart,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return domainerrors.ErrAlreadyInCart
		}

		return err
	}

	srv.log(ctx).Debug("Game carted", slog.Any("customerID", customerID), slog.Any("gameID", gameID))

	return nil
}

// MoveToCart carts a single wishlisted game. The wishlist entry is left in
// place; checkout removes it when the purchase completes.
func (srv *collectionService) MoveToCart(ctx context.Context, customerID, gameID uuid.UUID) error {
	game, err := srv.loadGame(ctx, gameID)
	if err != nil {
		return err
	}

	wishlisted, err := srv.ownershipRepo.Exists(ctx, entity.KindWishlist, gameID, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to check wishlist membership")
	}
	if !wishlisted {
		return domainerrors.ErrGameNotInWishlist(game.Title)
	}

	err = srv.ownershipRepo.Add(ctx, &entity.OwnershipEntry{
		GameID:     gameID,
		CustomerID: customerID,
		Kind:       entity.KindCart,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return domainerrors.ErrGameAlreadyInCart(game.Title)
		}

		return err
	}

	return nil
}

// MoveAllToCart carts every movable wishlisted game in one transaction.
// Out-of-stock and already-carted games are skipped, not failed: the bulk
// operation is best-effort by design of the single-item preconditions.
func (srv *collectionService) MoveAllToCart(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error) {
	var moved []*entity.Game

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownershipRepo := repoFactory.OwnershipRepo()

		wishlisted, err := ownershipRepo.ListGamesForCustomer(ctx, entity.KindWishlist, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlist")
		}

		for _, game := range wishlisted {
			if !game.InStock() {
				continue
			}

			err := ownershipRepo.Add(ctx, &entity.OwnershipEntry{
				GameID:     game.ID,
				CustomerID: customerID,
				Kind:       entity.KindCart,
			})
			if errors.Is(err, repository.ErrDuplicateEntry) {
				continue
			}
			if err != nil {
				return err
			}

			moved = append(moved, game)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to move wishlist to cart", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Wishlist moved to cart", slog.Any("customerID", customerID), slog.Int("moved", len(moved)))

	return moved, nil
}

// Checkout converts the whole cart into library ownership in one transaction.
// Each item consumes one key through a conditional decrement, so a concurrent
// checkout of the last key makes exactly one of the two transactions commit.
// Any failed item aborts the transaction and leaves every collection untouched.
func (srv *collectionService) Checkout(ctx context.Context, customerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()
		ownershipRepo := repoFactory.OwnershipRepo()

		cart, err := ownershipRepo.ListGamesForCustomer(ctx, entity.KindCart, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart")
		}
		if len(cart) == 0 {
			return domainerrors.ErrCartEmpty
		}

		now := time.Now()
		for _, game := range cart {
			if err := gameRepo.DecrementKey(ctx, game.ID); err != nil {
				if errors.Is(err, repository.ErrNoKeysLeft) {
					return domainerrors.ErrNoMoreKeys(game.Title)
				}

				return errors.Wrap(err, "failed to consume game key")
			}

			err := ownershipRepo.Add(ctx, &entity.OwnershipEntry{
				GameID:      game.ID,
				CustomerID:  customerID,
				Kind:        entity.KindLibrary,
				PurchasedAt: &now,
			})
			if err != nil {
				if errors.Is(err, repository.ErrDuplicateEntry) {
					return domainerrors.ErrAlreadyInLibrary
				}

				return err
			}

			if err := ownershipRepo.Remove(ctx, entity.KindWishlist, game.ID, customerID); err != nil {
				return err
			}
			if err := ownershipRepo.Remove(ctx, entity.KindCart, game.ID, customerID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout aborted", slog.Any("customerID", customerID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("customerID", customerID))

	return nil
}

// RemoveFromCart deletes the customer's cart entry for the game.
func (srv *collectionService) RemoveFromCart(ctx context.Context, customerID, gameID uuid.UUID) error {
	if _, err := srv.loadGame(ctx, gameID); err != nil {
		return err
	}

	return srv.ownershipRepo.Remove(ctx, entity.KindCart, gameID, customerID)
}

// RemoveFromWishlist deletes the customer's wishlist entry for the game.
func (srv *collectionService) RemoveFromWishlist(ctx context.Context, customerID, gameID uuid.UUID) error {
	if _, err := srv.loadGame(ctx, gameID); err != nil {
		return err
	}

	return srv.ownershipRepo.Remove(ctx, entity.KindWishlist, gameID, customerID)
}

// ClearCart removes every cart entry of the customer.
func (srv *collectionService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	return srv.ownershipRepo.RemoveAllForCustomer(ctx, entity.KindCart, customerID)
}

// ClearWishlist removes every wishlist entry of the customer.
func (srv *collectionService) ClearWishlist(ctx context.Context, customerID uuid.UUID) error {
	return srv.ownershipRepo.RemoveAllForCustomer(ctx, entity.KindWishlist, customerID)
}

// ListCart retrieves the cart's games with the discounted total.
func (srv *collectionService) ListCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartOutput, error) {
	games, err := srv.ownershipRepo.ListGamesForCustomer(ctx, entity.KindCart, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	var total float64
	for _, game := range games {
		total += game.DiscountedPrice()
	}

	return &usecase.CartOutput{Games: games, Total: total}, nil
}

// ListWishlist retrieves the wishlisted games.
func (srv *collectionService) ListWishlist(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error) {
	games, err := srv.ownershipRepo.ListGamesForCustomer(ctx, entity.KindWishlist, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return games, nil
}

// ListLibrary retrieves the owned games.
func (srv *collectionService) ListLibrary(ctx context.Context, customerID uuid.UUID) ([]*entity.Game, error) {
	games, err := srv.ownershipRepo.ListGamesForCustomer(ctx, entity.KindLibrary, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list library")
	}

	return games, nil
}
