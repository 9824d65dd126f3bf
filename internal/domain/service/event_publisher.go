package service

import (
	"context"
)

// MarketEventType names what happened in the marketplace.
type MarketEventType string

const (
	EventOfferSubmitted MarketEventType = "offer.submitted"
	EventOfferAccepted  MarketEventType = "offer.accepted"
	EventOfferRejected  MarketEventType = "offer.rejected"
	EventOfferWithdrawn MarketEventType = "offer.withdrawn"
	EventMessagePosted  MarketEventType = "message.posted"
)

// MarketEvent represents an event to be processed by the notifier worker
type MarketEvent struct {
	RequestID      string          `json:"request_id,omitempty"` // For distributed tracing
	EventID        string          `json:"event_id"`
	Type           MarketEventType `json:"type"`
	BuyerRequestID string          `json:"buyer_request_id"`
	OfferID        string          `json:"offer_id,omitempty"`
	DealershipID   string          `json:"dealership_id,omitempty"`
	ActorID        string          `json:"actor_id"`
	Title          string          `json:"title"`
	Preview        string          `json:"preview,omitempty"`
	RecipientIDs   []string        `json:"recipient_ids"` // Resolved at publish time
	// InvalidationPaths lists the views whose cached renderings are now stale.
	InvalidationPaths []string `json:"invalidation_paths,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketEvent publishes a marketplace event for async processing
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
