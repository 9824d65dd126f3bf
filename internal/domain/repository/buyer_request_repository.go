package repository

import (
	"context"
	"time"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// BuyerRequestRepository persists buyer requests.
type BuyerRequestRepository interface {
	Create(ctx context.Context, request *entity.BuyerRequest) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerRequest, error)

	// FindByIDForShare reads the request and holds a share lock on its row
	// until the surrounding transaction ends, so no status change can commit
	// between the read and the caller's dependent writes.
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.BuyerRequest, error)

	// FindByIDAndBuyer fetches with the ownership check in one statement.
	FindByIDAndBuyer(ctx context.Context, id uuid.UUID, buyerID string) (*entity.BuyerRequest, error)

	// ListByBuyer returns every request of buyerID ordered by created_at.
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.BuyerRequest, error)

	// ListByStatus returns requests with the given status ordered by created_at.
	ListByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.BuyerRequest, error)

	// UpdateStatus moves the request to `to` only if its current status is in
	// `from`. It returns ErrStatusConflict when nothing matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []entity.RequestStatus, to entity.RequestStatus) error

	// MarkAccepted sets status=accepted and accepted_offer_id under the same
	// conditional rule as UpdateStatus.
	MarkAccepted(ctx context.Context, id uuid.UUID, offerID uuid.UUID, from []entity.RequestStatus) error

	// ExpireOverdue moves open requests whose expires_at is before now to
	// expired and returns their ids.
	ExpireOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}
