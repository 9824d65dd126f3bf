package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/service"

	"github.com/google/uuid"
)

const previewLength = 120

// publishMarketEvent stamps the event and hands it to the publisher.
// Delivery is best effort: a failure is logged and never fails the caller.
func publishMarketEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketEvent) {
	if len(event.RecipientIDs) == 0 {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishMarketEvent(ctx, event); err != nil {
		logger.Error("Failed to publish market event",
			slog.String("type", string(event.Type)),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}

	runes := []rune(text)

	return string(runes[:previewLength-1]) + "…"
}
