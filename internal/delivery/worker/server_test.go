package worker

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/config"
	"carmarket/internal/delivery/worker/handler"
	"carmarket/internal/domain/service"
	"carmarket/internal/infra/pubsub"
	mockUC "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWorkerServer_Routes(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:         cfg,
		Logger:         logger,
		NotificationUC: notificationUC,
	})

	e := newEcho(cfg, logger, pushHandler)

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("PushUsesInboundRequestID", func(t *testing.T) {
		notificationUC.EXPECT().
			DeliverMarketEvent(mock.Anything, mock.Anything).
			Return(&usecase.DeliveryReport{}, nil).
			Once()

		msg, err := pubsub.NewPushMessage(&service.MarketEvent{EventID: "evt-1", Type: service.EventMessagePosted}, "sub", time.Now())
		require.NoError(t, err)
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", "trace-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-1", rec.Header().Get("X-Request-Id"))
	})
}

func TestNewServer_FallsBackToHTTPPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:         cfg,
			Logger:         logger,
			NotificationUC: mockUC.NewMockNotificationUsecase(t),
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, srv.(*workerServer).port)
}
