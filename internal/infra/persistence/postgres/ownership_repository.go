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

// ownershipRepository implements the domain.OwnershipRepository interface using
// GORM. One implementation serves all three collection kinds; the kind tag
// narrows every query.
type ownershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository is the constructor for ownershipRepository.
func NewOwnershipRepository(db *gorm.DB) repository.OwnershipRepository {
	return &ownershipRepository{db: db}
}

// Add inserts a new membership entry. The composite unique index on
// (game_id, customer_id, kind) arbitrates racing duplicate adds: the loser's
// insert fails with a unique violation, surfaced as ErrDuplicateEntry.
func (repo *ownershipRepository) Add(ctx context.Context, entry *entity.OwnershipEntry) error {
	entryM := fromOwnershipDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrGameNotFound.WrapMessage("ownership entry references unknown game")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ownership entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Remove deletes the entry if present. Removing an absent entry is a no-op.
func (repo *ownershipRepository) Remove(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("kind = ? AND game_id = ? AND customer_id = ?", kind.String(), gameID, customerID).
		Delete(&model.OwnershipEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove ownership entry")
	}

	return nil
}

// Exists reports whether an entry is present for the pair and kind.
func (repo *ownershipRepository) Exists(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OwnershipEntryModel{}).
		Where("kind = ? AND game_id = ? AND customer_id = ?", kind.String(), gameID, customerID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check ownership entry")
	}

	return count > 0, nil
}

// RemoveAllForCustomer bulk clears all entries of the kind for the customer.
func (repo *ownershipRepository) RemoveAllForCustomer(ctx context.Context, kind entity.OwnershipKind, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("kind = ? AND customer_id = ?", kind.String(), customerID).
		Delete(&model.OwnershipEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear ownership entries")
	}

	return nil
}

// RemoveAllForGame deletes every entry of every kind referencing the game.
func (repo *ownershipRepository) RemoveAllForGame(ctx context.Context, gameID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Delete(&model.OwnershipEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove game ownership entries")
	}

	return nil
}

// ListGamesForCustomer projects the customer's membership of the kind to the
// referenced game records, oldest entry first.
func (repo *ownershipRepository) ListGamesForCustomer(ctx context.Context, kind entity.OwnershipKind, customerID uuid.UUID) ([]*entity.Game, error) {
	var gameModels []*model.GameModel
	err := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Joins("JOIN ownership_entries ON ownership_entries.game_id = games.id").
		Where("ownership_entries.kind = ? AND ownership_entries.customer_id = ?", kind.String(), customerID).
		Order("ownership_entries.created_at").
		Find(&gameModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games for customer")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// FindEntry retrieves a single entry for the pair and kind.
func (repo *ownershipRepository) FindEntry(ctx context.Context, kind entity.OwnershipKind, gameID, customerID uuid.UUID) (*entity.OwnershipEntry, error) {
	var entryM model.OwnershipEntryModel
	err := repo.db.WithContext(ctx).
		Where("kind = ? AND game_id = ? AND customer_id = ?", kind.String(), gameID, customerID).
		First(&entryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find ownership entry")
	}

	return toOwnershipDomain(&entryM), nil
}

// --- Mapper Functions ---

// toOwnershipDomain converts a GORM OwnershipEntryModel to a domain OwnershipEntry entity.
func toOwnershipDomain(data *model.OwnershipEntryModel) *entity.OwnershipEntry {
	if data == nil {
		return nil
	}

	return &entity.OwnershipEntry{
		GameID:      data.GameID,
		CustomerID:  data.CustomerID,
		Kind:        entity.OwnershipKind(data.Kind),
		PurchasedAt: data.PurchasedAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromOwnershipDomain converts a domain OwnershipEntry entity to a GORM OwnershipEntryModel.
func fromOwnershipDomain(data *entity.OwnershipEntry) *model.OwnershipEntryModel {
	if data == nil {
		return nil
	}

	return &model.OwnershipEntryModel{
		GameID:      data.GameID,
		CustomerID:  data.CustomerID,
		Kind:        data.Kind.String(),
		PurchasedAt: data.PurchasedAt,
		CreatedAt:   data.CreatedAt,
	}
}
