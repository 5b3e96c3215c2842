// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	"keyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameRepository implements the domain.GameRepository interface using GORM.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
// It returns the repository as a domain.GameRepository interface, adhering to dependency inversion.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// FindByID retrieves a single game by its unique ID.
func (repo *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gameM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by id")
	}

	return toGameDomain(&gameM), nil
}

// List retrieves the full catalog ordered by title.
func (repo *gameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	var gameModels []*model.GameModel
	err := repo.db.WithContext(ctx).
		Order("title").
		Find(&gameModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// ListAddons retrieves all ADDON games referencing the given base game.
func (repo *gameRepository) ListAddons(ctx context.Context, parentGameID uuid.UUID) ([]*entity.Game, error) {
	var gameModels []*model.GameModel
	err := repo.db.WithContext(ctx).
		Where("parent_game_id = ? AND type = ?", parentGameID, entity.GameTypeAddon.String()).
		Find(&gameModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addons")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// Create persists a new game entity to the database.
func (repo *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Create(gameM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTitleAlreadyExists.WrapMessage("game title already taken")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("INVALID_GAME", "game violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game")
	}

	game.ID = gameM.ID
	game.CreatedAt = gameM.CreatedAt
	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// Update modifies an existing game entity in the database.
func (repo *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Save(gameM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTitleAlreadyExists.WrapMessage("game title already taken")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("INVALID_GAME", "game violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update game")
	}

	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// AddKeys atomically increments the game's key stock by delta.
func (repo *gameRepository) AddKeys(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("keys", gorm.Expr("keys + ?", delta))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add keys")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// SetKeys sets the game's key stock to an absolute value.
func (repo *gameRepository) SetKeys(ctx context.Context, id uuid.UUID, keys int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("keys", keys)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set keys")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// DecrementKey atomically consumes one key, guarded by keys > 0. The guard in
// the WHERE clause re-validates the stock against checkouts racing on the same
// game: when another transaction drained the last key first, no row is
// affected and ErrNoKeysLeft aborts the caller's batch.
func (repo *gameRepository) DecrementKey(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ? AND keys > 0", id).
		UpdateColumn("keys", gorm.Expr("keys - 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoKeysLeft
	}

	return nil
}

// Delete removes the game record.
func (repo *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GameModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// DeleteAddons removes all ADDON games referencing the given base game.
func (repo *gameRepository) DeleteAddons(ctx context.Context, parentGameID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("parent_game_id = ? AND type = ?", parentGameID, entity.GameTypeAddon.String()).
		Delete(&model.GameModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete addons")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toGameDomain converts a GORM GameModel to a domain Game entity.
func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	return &entity.Game{
		ID:                 data.ID,
		Title:              data.Title,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		ReleaseDate:        data.ReleaseDate,
		DeveloperID:        data.DeveloperID,
		Type:               entity.GameType(data.Type),
		ParentGameID:       data.ParentGameID,
		Keys:               data.Keys,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromGameDomain converts a domain Game entity to a GORM GameModel for persistence.
func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	return &model.GameModel{
		ID:                 data.ID,
		Title:              data.Title,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		ReleaseDate:        data.ReleaseDate,
		DeveloperID:        data.DeveloperID,
		Type:               data.Type.String(),
		ParentGameID:       data.ParentGameID,
		Keys:               data.Keys,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
