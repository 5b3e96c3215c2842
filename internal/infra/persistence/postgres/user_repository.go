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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("DeveloperProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("DeveloperProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its role profile, to the database.
// GORM's Create with associations inserts into users and the profile table together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.CustomerProfile != nil && userM.CustomerProfile != nil {
		user.CustomerProfile.UserID = userM.CustomerProfile.UserID
	}
	if user.DeveloperProfile != nil && userM.DeveloperProfile != nil {
		user.DeveloperProfile.UserID = userM.DeveloperProfile.UserID
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			UserID:    data.CustomerProfile.UserID,
			FirstName: data.CustomerProfile.FirstName,
			LastName:  data.CustomerProfile.LastName,
			UpdatedAt: data.CustomerProfile.UpdatedAt,
		}
	}
	if data.DeveloperProfile != nil {
		user.DeveloperProfile = &entity.DeveloperProfile{
			UserID:    data.DeveloperProfile.UserID,
			Studio:    data.DeveloperProfile.Studio,
			Website:   data.DeveloperProfile.Website,
			UpdatedAt: data.DeveloperProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
	}

	if data.CustomerProfile != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			UserID:    data.CustomerProfile.UserID,
			FirstName: data.CustomerProfile.FirstName,
			LastName:  data.CustomerProfile.LastName,
		}
	}
	if data.DeveloperProfile != nil {
		userM.DeveloperProfile = &model.DeveloperProfileModel{
			UserID:    data.DeveloperProfile.UserID,
			Studio:    data.DeveloperProfile.Studio,
			Website:   data.DeveloperProfile.Website,
		}
	}

	return userM
}
