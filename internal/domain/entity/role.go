package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a customer who browses, wishlists and purchases games.
	RoleCustomer Role = "CUSTOMER"
	// RoleDeveloper indicates a developer who publishes and manages games.
	RoleDeveloper Role = "DEVELOPER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDeveloper:
		return true
	default:
		return false
	}
}
