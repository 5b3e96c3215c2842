package impl

import (
	"context"
	"testing"

	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	mockRepo "keyhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollectionService_AddToWishlist_UnknownGame(t *testing.T) {
	service, _, gameRepo, _ := newCollectionService(t)

	ctx := context.Background()
	gameID := uuid.New()

	gameRepo.EXPECT().FindByID(ctx, gameID).Return(nil, repository.ErrGameNotFound)

	err := service.AddToWishlist(ctx, uuid.New(), gameID)

	require.ErrorIs(t, err, domainerrors.ErrGameNotFound)
}

func TestCollectionService_AddToWishlist_Duplicate(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 3)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(false, nil)
	ownershipRepo.EXPECT().Add(ctx, mock.Anything).Return(repository.ErrDuplicateEntry)

	err := service.AddToWishlist(ctx, customerID, game.ID)

	require.ErrorIs(t, err, domainerrors.ErrAlreadyInWishlist)
}

func TestCollectionService_AddToWishlist_AlreadyOwned(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 3)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(true, nil)

	err := service.AddToWishlist(ctx, customerID, game.ID)

	require.ErrorIs(t, err, domainerrors.ErrAlreadyInLibrary)
}

func TestCollectionService_AddToCart_OutOfStock(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Sold Out", 0)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(false, nil)

	err := service.AddToCart(ctx, customerID, game.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Sold Out is not in stock!", appErr.Message())
}

func TestCollectionService_AddToCart_DuplicateLoserGetsDomainError(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 2)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindLibrary, game.ID, customerID).Return(false, nil)
	// The store's unique constraint arbitrates the race; the loser's insert
	// comes back as a duplicate and must surface as the domain error.
	ownershipRepo.EXPECT().Add(ctx, mock.Anything).Return(repository.ErrDuplicateEntry)

	err := service.AddToCart(ctx, customerID, game.ID)

	require.ErrorIs(t, err, domainerrors.ErrAlreadyInCart)
}

func TestCollectionService_MoveToCart_NotInWishlist(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 2)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindWishlist, game.ID, customerID).Return(false, nil)

	err := service.MoveToCart(ctx, customerID, game.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Starfall is not in wishlist", appErr.Message())
}

func TestCollectionService_MoveToCart_AlreadyCarted(t *testing.T) {
	service, _, gameRepo, ownershipRepo := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	game := newBaseGame("Starfall", 2)

	gameRepo.EXPECT().FindByID(ctx, game.ID).Return(game, nil)
	ownershipRepo.EXPECT().Exists(ctx, entity.KindWishlist, game.ID, customerID).Return(true, nil)
	ownershipRepo.EXPECT().Add(ctx, mock.Anything).Return(repository.ErrDuplicateEntry)

	err := service.MoveToCart(ctx, customerID, game.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Starfall already in cart", appErr.Message())
}

func TestCollectionService_Checkout_EmptyCart(t *testing.T) {
	service, txManager, _, _ := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()

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
				Return(nil, nil)

			return fn(mockFactory)
		})

	err := service.Checkout(ctx, customerID)

	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCollectionService_Checkout_AbortsWhenKeysExhausted(t *testing.T) {
	service, txManager, _, _ := newCollectionService(t)

	ctx := context.Background()
	customerID := uuid.New()
	available := newBaseGame("Available", 5)
	exhausted := newBaseGame("Exhausted", 1)

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
				Return([]*entity.Game{available, exhausted}, nil)

			gameRepo.EXPECT().DecrementKey(ctx, available.ID).Return(nil)
			ownershipRepo.EXPECT().
				Add(ctx, mock.MatchedBy(func(entry *entity.OwnershipEntry) bool {
					return entry.GameID == available.ID && entry.Kind == entity.KindLibrary
				})).
				Return(nil)
			ownershipRepo.EXPECT().Remove(ctx, entity.KindWishlist, available.ID, customerID).Return(nil)
			ownershipRepo.EXPECT().Remove(ctx, entity.KindCart, available.ID, customerID).Return(nil)

			// Another customer consumed the last key between listing and
			// committing; the conditional decrement reports it and the whole
			// transaction rolls back.
			gameRepo.EXPECT().DecrementKey(ctx, exhausted.ID).Return(repository.ErrNoKeysLeft)

			return fn(mockFactory)
		})

	err := service.Checkout(ctx, customerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "There are no more keys for Exhausted, please remove it from the cart!", appErr.Message())
}

func TestCollectionService_RemoveFromCart_UnknownGame(t *testing.T) {
	service, _, gameRepo, _ := newCollectionService(t)

	ctx := context.Background()
	gameID := uuid.New()

	gameRepo.EXPECT().FindByID(ctx, gameID).Return(nil, repository.ErrGameNotFound)

	err := service.RemoveFromCart(ctx, uuid.New(), gameID)

	require.ErrorIs(t, err, domainerrors.ErrGameNotFound)
}
