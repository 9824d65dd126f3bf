// Package entity contains the core business objects of the project.
package entity

// Role is a user's platform-wide role.
type Role string

const (
	// RoleBuyer is the default role for every new profile.
	RoleBuyer Role = "buyer"
	// RoleDealer is granted when the user registers a dealership.
	RoleDealer Role = "dealer"
	// RoleAdmin is assigned out of band.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleDealer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanActAsDealer reports whether the role may use dealer-side features.
func (r Role) CanActAsDealer() bool {
	return r == RoleDealer || r == RoleAdmin
}
