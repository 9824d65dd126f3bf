package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.MarketEvent {
	return &service.MarketEvent{
		RequestID:      "req-1",
		EventID:        "evt-1",
		Type:           service.EventMessagePosted,
		BuyerRequestID: "br-1",
		OfferID:        "offer-1",
		ActorID:        "buyer-1",
		Title:          "Ny melding",
		Preview:        "Kan jeg se flere bilder?",
		RecipientIDs:   []string{"dealer-1"},
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, publisher.PublishMarketEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "message.posted", received.Message.Attributes["event_type"])
	assert.Equal(t, "offer-1", received.Message.Attributes["offer_id"])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, []string{"dealer-1"}, decoded.RecipientIDs)
	assert.Equal(t, "Kan jeg se flere bilder?", decoded.Preview)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishMarketEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestDecodeEvent_FallsBackToAttributeRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""
	msg, err := NewPushMessage(event, "sub", time.Now())
	require.NoError(t, err)
	msg.Message.Attributes["request_id"] = "from-attr"

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "from-attr", decoded.RequestID)
}

func TestDecodeEvent_BadData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeEvent()
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset uses noop", cfg: nil},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil {
				assert.NoError(t, publisher.PublishMarketEvent(context.Background(), &service.MarketEvent{EventID: "x"}))
			}
		})
	}
}
