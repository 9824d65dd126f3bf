package usecase

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferInput holds an already coerced offer form.
type CreateOfferInput struct {
	CarRegNr   *string
	VIN        *string
	CarMake    string
	CarModel   string
	CarVariant *string
	CarYear    int
	CarKm      int

	CarCondition *entity.CarCondition
	FuelType     *entity.FuelType
	Gearbox      *entity.Gearbox
	BodyType     *entity.BodyType

	ColorExterior *string
	ColorInterior *string

	PriceTotal int
	PriceOld   *int

	DeliveryTimeEstimate *string
	WarrantySummary      *string
	FinancingPossible    bool
	FinancingExample     *string

	LocationCity        *string
	LocationPostalCode  *string
	ShortMessageToBuyer *string
	InternalNotes       *string
	ImageURLs           []string
}

// OfferUsecase owns offers and their status transitions.
type OfferUsecase interface {
	// Create submits an offer for dealershipID against an open request.
	Create(ctx context.Context, dealerUserID string, dealershipID, requestID uuid.UUID, input *CreateOfferInput) (*entity.Offer, error)

	// ListForDealership is the dealer's outbox, newest first.
	ListForDealership(ctx context.Context, dealershipID uuid.UUID) ([]*entity.OfferWithRequest, error)

	// ListForRequest is the buyer's inbox for one request, newest first.
	ListForRequest(ctx context.Context, requestID uuid.UUID, buyerID string) ([]*entity.OfferWithDealership, error)

	// GetForDealer returns the offer with its request when userID is on the dealer side.
	GetForDealer(ctx context.Context, offerID uuid.UUID, userID string) (*entity.OfferThread, error)

	// Accept accepts the offer, closes the request and rejects every sibling offer.
	Accept(ctx context.Context, offerID, requestID uuid.UUID, buyerID string) (*entity.Offer, error)
	Reject(ctx context.Context, offerID, requestID uuid.UUID, buyerID string) (*entity.Offer, error)
	Withdraw(ctx context.Context, offerID uuid.UUID, userID string) (*entity.Offer, error)
}
