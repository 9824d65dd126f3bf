package usecase

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxMessageLength caps one chat message, counted in characters.
const MaxMessageLength = 2000

// Conversation is a thread read together with the caller's place in it.
type Conversation struct {
	Messages []*entity.OfferMessage     `json:"messages"`
	Context  entity.ConversationContext `json:"context"`
}

// PostedMessage is a stored message plus the views that now need refreshing.
type PostedMessage struct {
	Message           *entity.OfferMessage       `json:"message"`
	Context           entity.ConversationContext `json:"context"`
	InvalidationPaths []string                   `json:"invalidation_paths"`
}

// ConversationUsecase owns per-offer message threads.
type ConversationUsecase interface {
	// ResolveContext decides whether callerID is the buyer or the dealer side
	// of the offer. It is evaluated on every call.
	ResolveContext(ctx context.Context, offerID uuid.UUID, callerID string) (*entity.ConversationContext, error)

	ListMessages(ctx context.Context, offerID uuid.UUID, callerID string) (*Conversation, error)

	// PostMessage stores text with the sender role derived from the offer.
	PostMessage(ctx context.Context, offerID uuid.UUID, callerID, text string) (*PostedMessage, error)
}
