package usecase

import (
	"context"

	"keyhub/internal/domain/entity"
)

// RegisterCustomerInput carries the fields for a customer registration.
type RegisterCustomerInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterDeveloperInput carries the fields for a developer registration.
type RegisterDeveloperInput struct {
	Username string
	Email    string
	Password string
	Studio   string
	Website  string
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	User *entity.User
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the identity operations at the boundary of the core:
// account creation and credential verification with token issuance.
type UserUsecase interface {
	// RegisterCustomer creates a new customer account.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)

	// RegisterDeveloper creates a new developer account.
	RegisterDeveloper(ctx context.Context, input *RegisterDeveloperInput) (*RegisterOutput, error)

	// Login verifies credentials and issues access and refresh tokens.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
