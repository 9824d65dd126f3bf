package repository

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository persists offer thread messages.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.OfferMessage) error

	// ListByOffer returns the thread ordered by created_at ascending.
	ListByOffer(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferMessage, error)
}
