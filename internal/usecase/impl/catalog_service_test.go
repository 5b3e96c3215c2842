package impl

import (
	"context"
	"testing"
	"time"

	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	mockRepo "keyhub/internal/mocks/repository"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (
	*catalogService,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockGameRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gameRepo := mockRepo.NewMockGameRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		GameRepo:  gameRepo,
		Logger:    newDiscardLogger(),
	}).(*catalogService)

	return service, txManager, gameRepo
}

func TestCatalogService_CreateGame_Success(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	developerID := uuid.New()

	gameRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(game *entity.Game) bool {
			return game.Title == "Starfall" && game.DeveloperID == developerID &&
				game.Keys == 0 && game.DiscountPercentage == 0
		})).
		Return(nil)

	game, err := service.CreateGame(ctx, developerID, &usecase.CreateGameInput{
		Title:       "Starfall",
		Price:       59.99,
		ReleaseDate: time.Now(),
		Type:        entity.GameTypeBase,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.GameTypeBase, game.Type)
	assert.Equal(t, 0, game.Keys)
}

func TestCatalogService_CreateGame_AddonRequiresBaseParent(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	developerID := uuid.New()

	t.Run("missing parent", func(t *testing.T) {
		_, err := service.CreateGame(ctx, developerID, &usecase.CreateGameInput{
			Title: "DLC",
			Type:  entity.GameTypeAddon,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
	})

	t.Run("parent is an addon", func(t *testing.T) {
		parent := newBaseGame("Parent DLC", 0)
		parent.Type = entity.GameTypeAddon

		gameRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

		_, err := service.CreateGame(ctx, developerID, &usecase.CreateGameInput{
			Title:        "DLC",
			Type:         entity.GameTypeAddon,
			ParentGameID: &parent.ID,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "parent game must be a base game", appErr.Message())
	})
}

func TestCatalogService_CreateGame_DuplicateTitle(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()

	gameRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrTitleAlreadyExists)

	_, err := service.CreateGame(ctx, uuid.New(), &usecase.CreateGameInput{
		Title: "Starfall",
		Type:  entity.GameTypeBase,
	})

	require.ErrorIs(t, err, domainerrors.ErrTitleAlreadyExists)
}

func TestCatalogService_AddKeys_RejectsNonPositiveDelta(t *testing.T) {
	service, _, _ := newCatalogService(t)

	ctx := context.Background()

	for _, delta := range []int{0, -5} {
		_, err := service.AddKeys(ctx, uuid.New(), uuid.New(), delta)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Number of keys cannot be negative!", appErr.Message())
	}
}

func TestCatalogService_AddKeys_Success(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	game := newBaseGame("Starfall", 5)
	restocked := *game
	restocked.Keys = 15

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil).Once()
	gameRepo.EXPECT().AddKeys(ctx, game.ID, 10).Return(nil)
	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(&restocked, nil).Once()

	result, err := service.AddKeys(ctx, game.DeveloperID, game.ID, 10)

	require.NoError(t, err)
	assert.Equal(t, 15, result.Keys)
}

func TestCatalogService_AddKeys_NotOwner(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	game := newBaseGame("Starfall", 5)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)

	_, err := service.AddKeys(ctx, uuid.New(), game.ID, 10)

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCatalogService_MarkOutOfStock_Success(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	game := newBaseGame("Starfall", 7)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	gameRepo.EXPECT().SetKeys(ctx, game.ID, 0).Return(nil)

	require.NoError(t, service.MarkOutOfStock(ctx, game.DeveloperID, game.ID))
}

func TestCatalogService_UpdateGame_ValidatesDiscount(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	game := newBaseGame("Starfall", 3)
	badDiscount := 150.0

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)

	_, err := service.UpdateGame(ctx, game.DeveloperID, game.ID, &usecase.UpdateGameInput{
		DiscountPercentage: &badDiscount,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
}

func TestCatalogService_DeleteGame_CascadesToAddonsAndOwnership(t *testing.T) {
	service, txManager, gameRepo := newCatalogService(t)

	ctx := context.Background()
	game := newBaseGame("Starfall", 3)
	addon := newBaseGame("Starfall DLC", 0)
	addon.Type = entity.GameTypeAddon
	addon.ParentGameID = &game.ID

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txGameRepo := mockRepo.NewMockGameRepository(t)
			ownershipRepo := mockRepo.NewMockOwnershipRepository(t)

			mockFactory.EXPECT().GameRepo().Return(txGameRepo)
			mockFactory.EXPECT().OwnershipRepo().Return(ownershipRepo)

			txGameRepo.EXPECT().ListAddons(ctx, game.ID).Return([]*entity.Game{addon}, nil)
			ownershipRepo.EXPECT().RemoveAllForGame(ctx, addon.ID).Return(nil)
			txGameRepo.EXPECT().DeleteAddons(ctx, game.ID).Return(nil)
			ownershipRepo.EXPECT().RemoveAllForGame(ctx, game.ID).Return(nil)
			txGameRepo.EXPECT().Delete(ctx, game.ID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, service.DeleteGame(ctx, game.DeveloperID, game.ID))
}

func TestCatalogService_GetGame_NotFound(t *testing.T) {
	service, _, gameRepo := newCatalogService(t)

	ctx := context.Background()
	gameID := uuid.New()

	gameRepo.EXPECT().FindByID(ctx, gameID).Return(nil, repository.ErrGameNotFound)

	_, err := service.GetGame(ctx, gameID)

	require.ErrorIs(t, err, domainerrors.ErrGameNotFound)
}
