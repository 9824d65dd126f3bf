package usecase

import (
	"context"

	"carmarket/internal/domain/service"
)

// DeliveryReport summarises the push fan-out of one event.
type DeliveryReport struct {
	Recipients    int
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int64
}

// NotificationUsecase turns marketplace events into push notifications.
type NotificationUsecase interface {
	// DeliverMarketEvent sends the event to every active device of its
	// recipients and prunes tokens the provider rejected.
	DeliverMarketEvent(ctx context.Context, event *service.MarketEvent) (*DeliveryReport, error)
}
