package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BuyerRequestModel mirrors the 'buyer_requests' table.
type BuyerRequestModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BuyerID string    `gorm:"type:text;not null;index"`
	Status  string    `gorm:"type:varchar(16);not null;default:open;index"`
	Title   string    `gorm:"type:varchar(200);not null"`

	Make       string  `gorm:"type:varchar(100);not null"`
	Model      string  `gorm:"type:varchar(100);not null"`
	Generation *string `gorm:"type:varchar(100)"`
	YearFrom   *int
	YearTo     *int
	MinKm      *int
	MaxKm      *int

	Condition *string `gorm:"type:varchar(16)"`
	FuelType  *string `gorm:"type:varchar(16)"`
	Gearbox   *string `gorm:"type:varchar(16)"`
	BodyType  *string `gorm:"type:varchar(16)"`

	BudgetMin *int
	BudgetMax *int
	Currency  string `gorm:"type:varchar(3);not null;default:NOK"`

	LocationCity       *string `gorm:"type:varchar(120)"`
	LocationPostalCode *string `gorm:"type:varchar(16)"`
	SearchRadiusKm     *int
	Latitude           *float64
	Longitude          *float64

	WantsTradeIn    bool    `gorm:"not null;default:false"`
	FinancingNeeded bool    `gorm:"not null;default:false"`
	Description     *string `gorm:"type:text"`
	SearchType      *string `gorm:"type:varchar(32)"`

	ImageURLs       pq.StringArray `gorm:"column:image_urls;type:text[];not null;default:'{}'"`
	AcceptedOfferID *uuid.UUID     `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerRequestModel) TableName() string {
	return "buyer_requests"
}
