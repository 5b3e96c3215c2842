package impl

import (
	"context"
	"testing"

	"keyhub/internal/domain/entity"
	domainerrors "keyhub/internal/domain/errors"
	"keyhub/internal/domain/repository"
	mockRepo "keyhub/internal/mocks/repository"
	mockService "keyhub/internal/mocks/service"
	"keyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (
	*userService,
	*mockRepo.MockUserRepository,
	*mockService.MockPasswordHasher,
	*mockService.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*userService)

	return service, userRepo, hasher, tokenService
}

func TestUserService_RegisterCustomer_Success(t *testing.T) {
	service, userRepo, hasher, _ := newUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("sup3r-secret").Return("hashed", nil)
	userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleCustomer &&
				user.PasswordHash == "hashed" &&
				user.CustomerProfile != nil &&
				user.DeveloperProfile == nil
		})).
		Return(nil)

	output, err := service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Username:  "gamer",
		Email:     "gamer@example.com",
		Password:  "sup3r-secret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, "Ada", output.User.CustomerProfile.FirstName)
}

func TestUserService_RegisterDeveloper_Success(t *testing.T) {
	service, userRepo, hasher, _ := newUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("sup3r-secret").Return("hashed", nil)
	userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleDeveloper && user.DeveloperProfile != nil
		})).
		Return(nil)

	output, err := service.RegisterDeveloper(ctx, &usecase.RegisterDeveloperInput{
		Username: "studio",
		Email:    "studio@example.com",
		Password: "sup3r-secret",
		Studio:   "Night Owl Games",
		Website:  "https://nightowl.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Night Owl Games", output.User.DeveloperProfile.Studio)
}

func TestUserService_Register_DuplicateAccount(t *testing.T) {
	service, userRepo, hasher, _ := newUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Username: "gamer",
		Email:    "gamer@example.com",
		Password: "sup3r-secret",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenService := newUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "gamer@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
	}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("sup3r-secret", "hashed").Return(true)
	tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleCustomer).Return("access", "refresh", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "sup3r-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := newUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "gamer@example.com", PasswordHash: "hashed"}

	userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _ := newUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	// The same error for unknown email and wrong password keeps the response
	// from leaking which accounts exist.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
