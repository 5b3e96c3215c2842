package impl

import (
	"context"
	"testing"

	"keyhub/internal/domain/entity"
	"keyhub/internal/domain/repository"
	mockRepo "keyhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCollectionService(t *testing.T) (
	*collectionService,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockGameRepository,
	*mockRepo.MockOwnershipRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	gameRepo := mockRepo.NewMockGameRepository(t)
	ownershipRepo := mockRepo.NewMockOwnershipRepository(t)

	service := NewCollectionService(CollectionServiceParams{
		TxManager:     txManager,
		GameRepo:      gameRepo,
		OwnershipRepo: ownershipRepo,
		Logger:        newDiscardLogger(),
	}).(*collectionService)

	return service, txManager, gameRepo, ownershipRepo
}

func TestCollectionService_AddToWishlist_Success(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 3)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(false, nil)
	ownershipRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
			return entry.Kind == entity.KindWishlist && entry.GameID == game.ID && entry.CustomerID == customerID
		})).
		Return(nil)

	err := service.AddToWishlist(ctx, customerID, game.ID)

	require.NoError(t, err)
}

func TestCollectionService_AddToCart_Success(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 1)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(false, nil)
	ownershipRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
			return entry.Kind == entity.KindCart && entry.GameID == game.ID && entry.CustomerID == customerID
		})).
		Return(nil)

	err := service.AddToCart(ctx, customerID, game.ID)

	require.NoError(t, err)
}

func TestCollectionService_MoveToCart_Success(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 2)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindWishlist, game.ID, customerID).Return(true, nil)
	ownershipRepo.EXPECT().
		Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
			return entry.Kind == entity.KindCart && entry.GameID == game.ID
		})).
		Return(nil)

	err := service.MoveToCart(ctx, customerID, game.ID)

	require.NoError(t, err)
}

func TestCollectionService_MoveAllToCart_PartialSuccess(t *testing.T) {
	service, txManager, _, _ := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	movable := newBaseGame("Movable", 4)
	outOfStock := newBaseGame("Sold Out", 0)
	alreadyCarted := newBaseGame("Carted", 2)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			ownershipRepo := mockRepo.NewMockOwnershipRepository(t)

			mockFactory.EXPECT().OwnershipRepo().Return(ownershipRepo)

			ownershipRepo.EXPECT().
				ListGamesForCustomer(ctx, entity.KindWishlist, customerID).
				Return([]*entity.Game{movable, outOfStock, alreadyCarted}, nil)
			ownershipRepo.EXPECT().
				Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
					return entry.GameID == movable.ID && entry.Kind == entity.KindCart
				})).
				Return(nil)
			ownershipRepo.EXPECT().
				Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
					return entry.GameID == alreadyCarted.ID && entry.Kind == entity.KindCart
				})).
				Return(repository.ErrDuplicateEntry)

			return fn(mockFactory)
		})

	moved, err := service.MoveAllToCart(ctx, customerID)

	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, movable.ID, moved[0].ID)
}

func TestCollectionService_Checkout_Success(t *testing.T) {
	service, txManager, _, _ := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	first := newBaseGame("First", 5)
	second := newBaseGame("Second", 1)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			gameRepo := mockRepo.NewMockGameRepository(t)
			ownershipRepo := mockRepo.NewMockOwnershipRepository(t)

			mockFactory.EXPECT().GameRepo().Return(gameRepo)
			mockFactory.EXPECT().OwnershipRepo().Return(ownershipRepo)

			ownershipRepo.EXPECT().
				ListGamesForCustomer(ctx, entity.KindCart, customerID).
				Return([]*entity.Game{first, second}, nil)

			for _, game := range []*entity.Game{first, second} {
				gameID := game.ID
				gameRepo.EXPECT().DecrementKey(ctx, gameID).Return(nil)
				ownershipRepo.EXPECT().
					Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
						return entry.GameID == gameID && entry.Kind == entity.KindLibrary && entry.PurchasedAt != nil
					})).
					Return(nil)
				ownershipRepo.EXPECT().Remove(ctx, entity.KindWishlist, gameID, customerID).Return(nil)
				ownershipRepo.EXPECT().Remove(ctx, entity.KindCart, gameID, customerID).Return(nil)
			}

			return fn(mockFactory)
		})

	err := service.Checkout(ctx, customerID)

	require.NoError(t, err)
}

func TestCollectionService_ListCart_ComputesDiscountedTotal(t *testing.T) {
	service, _, _, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	discounted := &entity.Game{ID: uuid.New(), Title: "Half Off", Price: 60, DiscountPercentage: 50}
	fullPrice := &entity.Game{ID: uuid.New(), Title: "Full Price", Price: 10}

	ownershipRepo.EXPECT().
		ListGamesForCustomer(ctx, entity.KindCart, customerID).
		Return([]*entity.Game{discounted, fullPrice}, nil)

	cart, err := service.ListCart(ctx, customerID)

	require.NoError(t, err)
	assert.Len(t, cart.Games, 2)
	assert.InDelta(t, 40.0, cart.Total, 0.0001)
}

func TestCollectionService_ListLibrary_Success(t *testing.T) {
	service, _, _, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	owned := newBaseGame("Owned", 0)

	ownershipRepo.EXPECT().
		ListGamesForCustomer(ctx, entity.KindLibrary, customerID).
		Return([]*entity.Game{owned}, nil)

	games, err := service.ListLibrary(ctx, customerID)

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, owned.ID, games[0].ID)
}

func TestCollectionService_ClearCart_Success(t *testing.T) {
	service, _, _, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()

	ownershipRepo.EXPECT().RemoveAllForCustomer(ctx, entity.KindCart, customerID).Return(nil)

	require.NoError(t, service.ClearCart(ctx, customerID))
}

func TestCollectionService_RemoveFromWishlist_Success(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 2)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Remove(ctx, entity.KindWishlist, game.ID, customerID).Return(nil)

	require.NoError(t, service.RemoveFromWishlist(ctx, customerID, game.ID))
}
