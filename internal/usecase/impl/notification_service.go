package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	metrics         service.MarketMetrics
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	metrics service.MarketMetrics,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		metrics:         metrics,
		logger:          logger,
	}
}

// DeliverMarketEvent fails only when the device store is unreachable, so the
// caller can ask for redelivery. Send failures are counted, not returned.
func (s *notificationService) DeliverMarketEvent(ctx context.Context, event *service.MarketEvent) (*usecase.DeliveryReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	report := &usecase.DeliveryReport{Recipients: len(event.RecipientIDs)}

	if len(event.RecipientIDs) == 0 {
		return report, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, event.RecipientIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch recipient devices")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" && !slices.Contains(tokens, device.FCMToken) {
			tokens = append(tokens, device.FCMToken)
		}
	}
	report.Devices = len(tokens)

	if len(tokens) == 0 {
		return report, nil
	}

	notification := &service.PushNotification{
		Title: event.Title,
		Body:  event.Preview,
		Data: map[string]string{
			"event_id":         event.EventID,
			"type":             string(event.Type),
			"buyer_request_id": event.BuyerRequestID,
			"offer_id":         event.OfferID,
			"dealership_id":    event.DealershipID,
			"paths":            strings.Join(event.InvalidationPaths, ","),
		},
	}

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		result, err := s.notificationSvc.SendBatchNotification(ctx, batch, notification)
		if err != nil {
			// Log error but continue with other batches
			logger.Error("Push batch failed", slog.Int("size", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)

			continue
		}

		report.Sent += result.SuccessCount
		report.Failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		removed, err := s.deviceRepo.DeleteByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("Failed to prune invalid device tokens", slog.Any("error", err))
		}
		report.InvalidTokens = removed
	}

	s.metrics.NotificationsSent(report.Sent, report.Failed)
	logger.Info("Market event delivered",
		slog.String("eventID", event.EventID),
		slog.String("type", string(event.Type)),
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int64("invalidTokens", report.InvalidTokens),
	)

	return report, nil
}
