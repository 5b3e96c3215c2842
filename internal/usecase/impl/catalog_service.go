package impl

import (
	"context"
	"log/slog"

	deliverycontext "keyhub/internal/delivery/context"
	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. All mutations check
// that the calling developer owns the game.
type catalogService struct {
	txManager repository.TransactionManager
	gameRepo  repository.GameRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GameRepo  repository.GameRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		gameRepo:  params.GameRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOwnedGame resolves a game and verifies the caller owns it. Ownership
// failures are reported as authorization errors, not validation errors.
func (srv *catalogService) loadOwnedGame(ctx context.Context, developerID, gameID uuid.UUID) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	if game.DeveloperID != developerID {
		return nil, domainerrors.ErrUnauthorized
	}

	return game, nil
}

// CreateGame publishes a new game owned by the calling developer.
// New games start with zero keys and zero discount.
func (srv *catalogService) CreateGame(ctx context.Context, developerID uuid.UUID, input *usecase.CreateGameInput) (*entity.Game, error) {
	if input.Price < 0 {
		return nil, domainerrors.NewValidationError("NEGATIVE_PRICE", "price cannot be negative")
	}

	switch input.Type {
	case entity.GameTypeBase:
		if input.ParentGameID != nil {
			return nil, domainerrors.NewValidationError("INVALID_PARENT", "a base game cannot reference a parent game")
		}
	case entity.GameTypeAddon:
		if input.ParentGameID == nil {
			return nil, domainerrors.NewValidationError("INVALID_PARENT", "an add-on must reference a parent game")
		}

		parent, err := srv.gameRepo.FindByID(ctx, *input.ParentGameID)
		if err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return nil, domainerrors.ErrGameNotFound.WrapMessage("parent game not found")
			}

			return nil, errors.Wrap(err, "failed to load parent game")
		}
		if parent.Type != entity.GameTypeBase {
			return nil, domainerrors.NewValidationError("INVALID_PARENT", "parent game must be a base game")
		}
	default:
		return nil, domainerrors.NewValidationError("INVALID_GAME_TYPE", "unknown game type")
	}

	game := &entity.Game{
		Title:        input.Title,
		Price:        input.Price,
		ReleaseDate:  input.ReleaseDate,
		DeveloperID:  developerID,
		Type:         input.Type,
		ParentGameID: input.ParentGameID,
	}

	if err := srv.gameRepo.Create(ctx, game); err != nil {
		srv.log(ctx).Warn("Failed to create game", slog.String("title", input.Title), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Game created", slog.Any("gameID", game.ID), slog.String("title", game.Title))

	return game, nil
}

// UpdateGame applies a partial update to a game owned by the caller.
func (srv *catalogService) UpdateGame(ctx context.Context, developerID, gameID uuid.UUID, input *usecase.UpdateGameInput) (*entity.Game, error) {
	game, err := srv.loadOwnedGame(ctx, developerID, gameID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		game.Title = *input.Title
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.NewValidationError("NEGATIVE_PRICE", "price cannot be negative")
		}
		game.Price = *input.Price
	}
	if input.DiscountPercentage != nil {
		if *input.DiscountPercentage < 0 || *input.DiscountPercentage > 100 {
			return nil, domainerrors.NewValidationError("INVALID_DISCOUNT", "discount percentage must be between 0 and 100")
		}
		game.DiscountPercentage = *input.DiscountPercentage
	}
	if input.ReleaseDate != nil {
		game.ReleaseDate = *input.ReleaseDate
	}

	if err := srv.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// AddKeys increases the game's key stock. The delta must be positive;
// the repository applies it as a single atomic increment.
func (srv *catalogService) AddKeys(ctx context.Context, developerID, gameID uuid.UUID, delta int) (*entity.Game, error) {
	if delta <= 0 {
		return nil, domainerrors.ErrNegativeKeys
	}

	if _, err := srv.loadOwnedGame(ctx, developerID, gameID); err != nil {
		return nil, err
	}

	if err := srv.gameRepo.AddKeys(ctx, gameID, delta); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, err
	}

	game, err := srv.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload game after key restock")
	}

	srv.log(ctx).Info("Keys added", slog.Any("gameID", gameID), slog.Int("delta", delta), slog.Int("keys", game.Keys))

	return game, nil
}

// MarkOutOfStock sets the game's key stock to zero. Idempotent.
func (srv *catalogService) MarkOutOfStock(ctx context.Context, developerID, gameID uuid.UUID) error {
	if _, err := srv.loadOwnedGame(ctx, developerID, gameID); err != nil {
		return err
	}

	if err := srv.gameRepo.SetKeys(ctx, gameID, 0); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domainerrors.ErrGameNotFound
		}

		return err
	}

	return nil
}

// DeleteGame removes the game, its add-ons and every ownership entry
// referencing any of them in one transaction, so no dangling cart, wishlist
// or library entry survives the deletion.
func (srv *catalogService) DeleteGame(ctx context.Context, developerID, gameID uuid.UUID) error {
	if _, err := srv.loadOwnedGame(ctx, developerID, gameID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()
		ownershipRepo := repoFactory.OwnershipRepo()

		addons, err := gameRepo.ListAddons(ctx, gameID)
		if err != nil {
			return errors.Wrap(err, "failed to list add-ons")
		}

		for _, addon := range addons {
			if err := ownershipRepo.RemoveAllForGame(ctx, addon.ID); err != nil {
				return err
			}
		}
		if err := gameRepo.DeleteAddons(ctx, gameID); err != nil {
			return err
		}

		if err := ownershipRepo.RemoveAllForGame(ctx, gameID); err != nil {
			return err
		}

		return gameRepo.Delete(ctx, gameID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete game", slog.Any("gameID", gameID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Game deleted", slog.Any("gameID", gameID))

	return nil
}

// ListGames retrieves the full catalog.
func (srv *catalogService) ListGames(ctx context.Context) ([]*entity.Game, error) {
	games, err := srv.gameRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return games, nil
}

// GetGame retrieves a single game.
func (srv *catalogService) GetGame(ctx context.Context, gameID uuid.UUID) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	return game, nil
}
