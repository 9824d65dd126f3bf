package usecase

import (
	"context"
	"time"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBuyerRequestInput holds an already coerced buyer request form.
type CreateBuyerRequestInput struct {
	Title      string
	Make       string
	Model      string
	Generation *string
	YearFrom   *int
	YearTo     *int
	MinKm      *int
	MaxKm      *int

	Condition *entity.CarCondition
	FuelType  *entity.FuelType
	Gearbox   *entity.Gearbox
	BodyType  *entity.BodyType

	BudgetMin *int
	BudgetMax *int

	LocationCity       *string
	LocationPostalCode *string
	SearchRadiusKm     *int
	Latitude           *float64
	Longitude          *float64

	WantsTradeIn    bool
	FinancingNeeded bool
	Description     *string
	SearchType      *string
	ImageURLs       []string
}

// ExpiryReport summarises one expiry sweep.
type ExpiryReport struct {
	RequestIDs    []uuid.UUID `json:"request_ids"`
	OffersExpired int64       `json:"offers_expired"`
}

// RequestUsecase owns buyer requests and their status transitions.
type RequestUsecase interface {
	Create(ctx context.Context, buyerID string, input *CreateBuyerRequestInput) (*entity.BuyerRequest, error)

	// ListForBuyer returns the buyer's requests in any status.
	ListForBuyer(ctx context.Context, buyerID string) ([]*entity.BuyerRequest, error)

	// ListOpen is the dealer discovery feed.
	ListOpen(ctx context.Context) ([]*entity.BuyerRequest, error)

	// GetOwned returns ErrNotFound unless the request belongs to buyerID.
	GetOwned(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error)

	// GetOpen returns ErrNotFound unless the request is open.
	GetOpen(ctx context.Context, requestID uuid.UUID) (*entity.BuyerRequest, error)

	Cancel(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error)
	MarkUnderReview(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error)

	// ExpireOverdue expires open requests past their deadline along with their submitted offers.
	ExpireOverdue(ctx context.Context, now time.Time) (*ExpiryReport, error)

	// QRCode renders the dealer-facing link of an open request.
	QRCode(ctx context.Context, requestID uuid.UUID) ([]byte, error)
}
