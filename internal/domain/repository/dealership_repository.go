package repository

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// DealershipRepository persists dealerships and their memberships.
type DealershipRepository interface {
	Create(ctx context.Context, dealership *entity.Dealership) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dealership, error)

	// ListByOwner returns dealerships whose owner_id is ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Dealership, error)

	// ListForMember returns dealerships the user owns or belongs to, oldest first.
	ListForMember(ctx context.Context, userID string) ([]*entity.Dealership, error)

	AddMember(ctx context.Context, membership *entity.DealerMembership) error

	// IsMember reports whether userID owns or has a membership in the dealership.
	IsMember(ctx context.Context, dealershipID uuid.UUID, userID string) (bool, error)
}
