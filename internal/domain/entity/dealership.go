package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole is a user's role inside one dealership.
type MemberRole string

const (
	MemberRoleOwner   MemberRole = "owner"
	MemberRoleManager MemberRole = "manager"
)

// Dealership is a business entity that submits offers.
type Dealership struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Name       string    `json:"name"`
	OrgNumber  string    `json:"org_number"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Country    string    `json:"country"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Makes      string    `json:"makes,omitempty"` // Comma separated brands, e.g. "Volvo,Audi".
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Coordinates returns the dealership position when both parts are known.
func (d *Dealership) Coordinates() (Coordinates, bool) {
	return coordinatesOf(d.Latitude, d.Longitude)
}

// DealerMembership links a profile to a dealership.
type DealerMembership struct {
	ID           uuid.UUID  `json:"id"`
	DealershipID uuid.UUID  `json:"dealership_id"`
	UserID       string     `json:"user_id"`
	Role         MemberRole `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
}
