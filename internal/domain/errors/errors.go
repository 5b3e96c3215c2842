// Package errors defines the application error taxonomy: validation failures
// and unknown references surface as client errors with a human-readable
// message, authorization failures surface as a bare 401.
package errors

import (
	"fmt"
	"net/http"

	"keyhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// NewValidationError creates a business-rule violation error. Both validation
// and not-found errors map to 400 at the transport boundary.
func NewValidationError(errorCode, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, errorCode, message, "")
}

// NewNotFoundError creates an unknown-reference error.
func NewNotFoundError(errorCode, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, errorCode, message, "")
}

// Predefined error types
var (
	// Membership errors. Messages are fixed by the storefront contract.
	ErrAlreadyInWishlist = NewValidationError("ALREADY_IN_WISHLIST", "already in wishlist")
	ErrAlreadyInCart     = NewValidationError("ALREADY_IN_CART", "already in cart")
	ErrAlreadyInLibrary  = NewValidationError("ALREADY_IN_LIBRARY", "already in library")
	ErrCartEmpty         = NewValidationError("CART_EMPTY", "cart is empty")

	// Catalog errors
	ErrTitleAlreadyExists = NewValidationError("TITLE_ALREADY_EXISTS", "game title already exists")
	ErrNegativeKeys       = NewValidationError("NEGATIVE_KEYS", "Number of keys cannot be negative!")
	ErrGameNotFound       = NewNotFoundError("GAME_NOT_FOUND", "game not found")

	// Identity errors
	ErrUserNotFound       = NewNotFoundError("USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists  = NewValidationError("USER_ALREADY_EXISTS", "username or email already registered")
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", "")

	// ErrUnauthorized covers missing identity, unresolvable callers and role
	// mismatches alike; the response carries no body so the three cases are
	// indistinguishable to the client.
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "", "")

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed", "")

	// General errors
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
)

// ErrGameNotInStock reports an add-to-cart attempt on a game with no keys left.
func ErrGameNotInStock(title string) *BaseError {
	return NewValidationError("NOT_IN_STOCK", fmt.Sprintf("%s is not in stock!", title))
}

// ErrGameNotInWishlist reports a move-to-cart attempt on a game that is not wishlisted.
func ErrGameNotInWishlist(title string) *BaseError {
	return NewValidationError("NOT_IN_WISHLIST", fmt.Sprintf("%s is not in wishlist", title))
}

// ErrGameAlreadyInCart reports a move-to-cart attempt on a game that is already carted.
func ErrGameAlreadyInCart(title string) *BaseError {
	return NewValidationError("ALREADY_IN_CART", fmt.Sprintf("%s already in cart", title))
}

// ErrNoMoreKeys reports checkout abortion: the named item ran out of keys and
// the whole batch was rolled back.
func ErrNoMoreKeys(title string) *BaseError {
	return NewValidationError("NO_MORE_KEYS", fmt.Sprintf("There are no more keys for %s, please remove it from the cart!", title))
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
