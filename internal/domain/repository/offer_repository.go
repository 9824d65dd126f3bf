package repository

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferRepository persists offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindThread loads the offer with its request and dealership from the primary.
	FindThread(ctx context.Context, offerID uuid.UUID) (*entity.OfferThread, error)

	// ListByDealership returns the dealership's offers joined with their requests, newest first.
	ListByDealership(ctx context.Context, dealershipID uuid.UUID) ([]*entity.OfferWithRequest, error)

	// ListByRequestForBuyer returns offers on requestID joined with their
	// dealerships, newest first, and only when the request belongs to buyerID.
	ListByRequestForBuyer(ctx context.Context, requestID uuid.UUID, buyerID string) ([]*entity.OfferWithDealership, error)

	// UpdateStatus moves the offer to `to` only while it is in `from`.
	// It returns ErrStatusConflict when nothing matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from entity.OfferStatus, to entity.OfferStatus) error

	// RejectSiblings rejects every other submitted offer on the request and returns them.
	RejectSiblings(ctx context.Context, requestID uuid.UUID, acceptedOfferID uuid.UUID) ([]*entity.Offer, error)

	// ExpireForRequests expires submitted offers on the given requests.
	ExpireForRequests(ctx context.Context, requestIDs []uuid.UUID) (int64, error)
}
