package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/constants"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/infra/pubsub"
	mockUC "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func testEvent() *service.MarketEvent {
	return &service.MarketEvent{
		EventID:        "evt-1",
		Type:           service.EventOfferSubmitted,
		BuyerRequestID: "br-1",
		OfferID:        "offer-1",
		DealershipID:   "dealership-1",
		ActorID:        "dealer-1",
		Title:          "Nytt tilbud",
		RecipientIDs:   []string{"buyer-1"},
	}
}

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, event *service.MarketEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/p/subscriptions/notifier", time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func push(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("Delivered", func(t *testing.T) {
		h, notificationUC := createTestPushHandler(t, &config.Config{})

		event := testEvent()
		event.RequestID = "req-42"

		notificationUC.EXPECT().
			DeliverMarketEvent(mock.Anything, mock.MatchedBy(func(e *service.MarketEvent) bool {
				return e.EventID == "evt-1" && e.RequestID == "req-42" && e.RecipientIDs[0] == "buyer-1"
			})).
			Return(&usecase.DeliveryReport{Recipients: 1, Devices: 2, Sent: 2}, nil)

		rec := push(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DeliveryFailureIsRedelivered", func(t *testing.T) {
		h, notificationUC := createTestPushHandler(t, &config.Config{})

		notificationUC.EXPECT().
			DeliverMarketEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("device lookup failed"))

		rec := push(h, pushBody(t, testEvent()), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		h, _ := createTestPushHandler(t, &config.Config{})

		rec := push(h, []byte("{"), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UndecodableData", func(t *testing.T) {
		h, _ := createTestPushHandler(t, &config.Config{})

		rec := push(h, []byte(`{"message":{"data":"not base64!","messageId":"1"}}`), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGooglePush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("MissingToken", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		rec := push(h, pushBody(t, testEvent()), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := push(h, pushBody(t, testEvent()), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		h, notificationUC := createTestPushHandler(t, cfg)

		var audience string
		h.validate = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud
			if token != "signed" {
				return nil, errors.New("bad signature")
			}

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}

		notificationUC.EXPECT().
			DeliverMarketEvent(mock.Anything, mock.Anything).
			Return(&usecase.DeliveryReport{}, nil)

		rec := push(h, pushBody(t, testEvent()), "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
