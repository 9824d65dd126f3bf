package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"carmarket/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the body Pub/Sub sends to a push subscription endpoint.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are set on every message for subscription filters and tracing.
func eventAttributes(event *service.MarketEvent) map[string]string {
	attributes := map[string]string{
		"event_id":         event.EventID,
		"event_type":       string(event.Type),
		"buyer_request_id": event.BuyerRequestID,
	}
	if event.OfferID != "" {
		attributes["offer_id"] = event.OfferID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps event the way a push subscription delivers it.
func NewPushMessage(event *service.MarketEvent, subscription string, now time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the marketplace event carried by a push message.
func (m *PushMessage) DecodeEvent() (*service.MarketEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event service.MarketEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal market event")
	}

	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes["request_id"]
	}

	return &event, nil
}
