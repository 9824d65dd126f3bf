package model

import (
	"time"
)

// IdentityUserModel mirrors the identity provider's users in the 'identity_users' table.
// Rows are written by the external sync; profiles reference them.
type IdentityUserModel struct {
	ID           string  `gorm:"type:text;primaryKey"`
	DisplayName  *string `gorm:"type:text"`
	PrimaryEmail *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityUserModel) TableName() string {
	return "identity_users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references identity_users.id.
type UserProfileModel struct {
	UserID    string  `gorm:"type:text;primaryKey"`
	Role      string  `gorm:"type:varchar(16);not null;default:buyer"`
	Phone     *string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
