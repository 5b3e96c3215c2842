package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing a single account.
// Exactly one of the role detail blocks is set, matching the user's Role.
type User struct {
	ID               uuid.UUID         // The unique identifier of the account.
	Username         string            // Unique login name.
	Email            string            // Unique contact email.
	PasswordHash     string            // Salted bcrypt hash of the password.
	Role             Role              // CUSTOMER or DEVELOPER.
	CustomerProfile  *CustomerProfile  // Set iff Role is CUSTOMER.
	DeveloperProfile *DeveloperProfile // Set iff Role is DEVELOPER.
	CreatedAt        time.Time         // Timestamp of when this account was created.
	UpdatedAt        time.Time         // Timestamp of the last modification.
}

// CustomerProfile holds data specific to the customer role.
type CustomerProfile struct {
	UserID    uuid.UUID // Foreign key linking the profile to its User.
	FirstName string
	LastName  string
	UpdatedAt time.Time
}

// DeveloperProfile holds data specific to the developer role.
type DeveloperProfile struct {
	UserID    uuid.UUID // Foreign key linking the profile to its User.
	Studio    string
	Website   string
	UpdatedAt time.Time
}
