package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DealershipID uuid.UUID `gorm:"type:uuid;not null;index"`
	DealerUserID string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:submitted"`

	CarRegNr   *string `gorm:"type:varchar(16)"`
	VIN        *string `gorm:"column:vin;type:varchar(32)"`
	CarMake    string  `gorm:"type:varchar(100);not null"`
	CarModel   string  `gorm:"type:varchar(100);not null"`
	CarVariant *string `gorm:"type:varchar(100)"`
	CarYear    int     `gorm:"not null"`
	CarKm      int     `gorm:"not null"`

	CarCondition string  `gorm:"type:varchar(16);not null;default:used"`
	FuelType     *string `gorm:"type:varchar(16)"`
	Gearbox      *string `gorm:"type:varchar(16)"`
	BodyType     *string `gorm:"type:varchar(16)"`

	ColorExterior *string `gorm:"type:varchar(60)"`
	ColorInterior *string `gorm:"type:varchar(60)"`

	PriceTotal int `gorm:"not null"`
	PriceOld   *int
	Currency   string `gorm:"type:varchar(3);not null;default:NOK"`

	DeliveryTimeEstimate *string `gorm:"type:varchar(200)"`
	WarrantySummary      *string `gorm:"type:text"`
	FinancingPossible    bool    `gorm:"not null;default:false"`
	FinancingExample     *string `gorm:"type:text"`

	LocationCity       *string `gorm:"type:varchar(120)"`
	LocationPostalCode *string `gorm:"type:varchar(16)"`
	DistanceKm         *int

	ShortMessageToBuyer *string        `gorm:"type:text"`
	InternalNotes       *string        `gorm:"type:text"`
	ImageURLs           pq.StringArray `gorm:"column:image_urls;type:text[];not null;default:'{}'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Request    *BuyerRequestModel `gorm:"foreignKey:RequestID"`
	Dealership *DealershipModel   `gorm:"foreignKey:DealershipID"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferMessageModel mirrors the 'offer_messages' table.
type OfferMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OfferID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID   string    `gorm:"type:text;not null"`
	SenderRole string    `gorm:"type:varchar(16);not null"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferMessageModel) TableName() string {
	return "offer_messages"
}
