package entity

import "time"

// UserProfile is the marketplace's view of an external identity.
type UserProfile struct {
	UserID    string    `json:"user_id"`         // Stable id issued by the identity provider.
	Role      Role      `json:"role"`            // buyer, dealer or admin.
	Phone     *string   `json:"phone,omitempty"` // Optional contact number.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Transient is set when the profile could not be stored because the
	// identity had not yet been mirrored locally.
	Transient bool `json:"transient,omitempty"`
}

// NewDefaultProfile builds the role=buyer profile handed out on first sight.
func NewDefaultProfile(userID string, now time.Time) *UserProfile {
	return &UserProfile{
		UserID:    userID,
		Role:      RoleBuyer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
