package impl

import (
	"context"
	"fmt"
	"testing"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	mockRepo "carmarket/internal/mocks/repository"
	mockSvc "carmarket/internal/mocks/service"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixture struct {
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
	metrics         *mockSvc.MockMarketMetrics
	srv             usecase.NotificationUsecase
}

func createTestNotificationService(t *testing.T) *notificationServiceFixture {
	t.Helper()

	fx := &notificationServiceFixture{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
		metrics:         mockSvc.NewMockMarketMetrics(t),
	}
	fx.srv = NewNotificationService(fx.deviceRepo, fx.notificationSvc, fx.metrics, testLogger())

	return fx
}

func devicesWithTokens(n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{UserID: "buyer-1", FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestNotificationService_DeliverMarketEvent_BatchesAndPrunes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.MarketEvent{
		EventID:           "evt-1",
		Type:              service.EventOfferSubmitted,
		BuyerRequestID:    "req-1",
		OfferID:           "offer-1",
		Title:             "Nytt tilbud",
		RecipientIDs:      []string{"buyer-1"},
		InvalidationPaths: []string{"/buyer/requests/req-1"},
	}

	// A duplicate token is sent once.
	devices := append(devicesWithTokens(service.MaxBatchTokens+1), &entity.UserDevice{FCMToken: "token-0"})
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"buyer-1"}).Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxBatchTokens }),
			mock.MatchedBy(func(n *service.PushNotification) bool {
				return n.Data["type"] == "offer.submitted" && n.Data["paths"] == "/buyer/requests/req-1"
			})).
		Return(&service.PushReport{SuccessCount: 499, FailureCount: 1, InvalidTokens: []string{"token-7"}}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", service.MaxBatchTokens)}, mock.Anything).
		Return(&service.PushReport{SuccessCount: 1}, nil)
	fx.deviceRepo.EXPECT().DeleteByTokens(ctx, []string{"token-7"}).Return(int64(1), nil)
	fx.metrics.EXPECT().NotificationsSent(500, 1).Return()

	report, err := fx.srv.DeliverMarketEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, usecase.DeliveryReport{Recipients: 1, Devices: 501, Sent: 500, Failed: 1, InvalidTokens: 1}, *report)
}

func TestNotificationService_DeliverMarketEvent_BatchErrorIsCounted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []string{"dealer-1"}).Return(devicesWithTokens(3), nil)
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("fcm unavailable"))
	fx.metrics.EXPECT().NotificationsSent(0, 3).Return()

	report, err := fx.srv.DeliverMarketEvent(ctx, &service.MarketEvent{RecipientIDs: []string{"dealer-1"}})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Failed)
}

func TestNotificationService_DeliverMarketEvent_StoreErrorAsksForRedelivery(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	boom := errors.New("connection reset")

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, mock.Anything).Return(nil, boom)

	_, err := fx.srv.DeliverMarketEvent(ctx, &service.MarketEvent{RecipientIDs: []string{"buyer-1"}})
	assert.ErrorIs(t, err, boom)
}

func TestNotificationService_DeliverMarketEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, mock.Anything).Return([]*entity.UserDevice{}, nil)

	report, err := fx.srv.DeliverMarketEvent(ctx, &service.MarketEvent{RecipientIDs: []string{"buyer-1"}})
	require.NoError(t, err)
	assert.Zero(t, report.Devices)
}
