package model

import (
	"time"

	"github.com/google/uuid"
)

// DealershipModel mirrors the 'dealerships' table.
type DealershipModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID    string    `gorm:"type:text;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	OrgNumber  string    `gorm:"type:varchar(32);not null"`
	Address    string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(120)"`
	PostalCode string    `gorm:"type:varchar(16)"`
	Country    string    `gorm:"type:varchar(2);not null;default:NO"`
	Latitude   *float64
	Longitude  *float64
	Makes      string `gorm:"type:text"`
	Verified   bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealershipModel) TableName() string {
	return "dealerships"
}

// DealerMembershipModel mirrors the 'dealer_memberships' table.
type DealerMembershipModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DealershipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_membership"`
	UserID       string    `gorm:"type:text;not null;uniqueIndex:ux_membership"`
	Role         string    `gorm:"type:varchar(16);not null;default:owner"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealerMembershipModel) TableName() string {
	return "dealer_memberships"
}
