package usecase

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDealershipInput is the dealer onboarding form.
type RegisterDealershipInput struct {
	Name       string   `json:"name"`
	OrgNumber  string   `json:"org_number"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Makes      string   `json:"makes,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// DealershipUsecase manages dealerships and who may act for them.
type DealershipUsecase interface {
	// Register creates the dealership, its owner membership and promotes the
	// owner to dealer, all in one transaction.
	Register(ctx context.Context, ownerID string, input *RegisterDealershipInput) (*entity.Dealership, error)

	// ListForOwner returns every dealership owned by ownerID.
	ListForOwner(ctx context.Context, ownerID string) ([]*entity.Dealership, error)

	// ResolveForDealer picks the dealership userID acts for. Without an
	// explicit id the user must belong to exactly one dealership.
	ResolveForDealer(ctx context.Context, userID string, dealershipID *uuid.UUID) (*entity.Dealership, error)

	IsMember(ctx context.Context, dealershipID uuid.UUID, userID string) (bool, error)
}
