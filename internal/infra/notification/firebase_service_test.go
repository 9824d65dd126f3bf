package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"carmarket/config"
	"carmarket/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	response *messaging.BatchResponse
	err      error
	got      *messaging.MulticastMessage
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func TestFirebaseService_SendBatchNotification(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true},
			{Error: errors.New("transient")},
		},
	}}
	svc := &firebaseService{client: sender}

	report, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, &service.PushNotification{
		Title: "Nytt tilbud",
		Body:  "Volvo XC90",
		Data:  map[string]string{"offer_id": "o1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Empty(t, report.InvalidTokens, "non-token errors keep the token")
	assert.Equal(t, "Nytt tilbud", sender.got.Notification.Title)
	assert.Equal(t, "o1", sender.got.Data["offer_id"])
}

func TestFirebaseService_Limits(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}

	report, err := svc.SendBatchNotification(context.Background(), nil, &service.PushNotification{})
	require.NoError(t, err)
	assert.Zero(t, report.SuccessCount)

	_, err = svc.SendBatchNotification(context.Background(), make([]string, service.MaxBatchTokens+1), &service.PushNotification{})
	assert.Error(t, err)
}

func TestFirebaseService_SendError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	_, err := svc.SendBatchNotification(context.Background(), []string{"a"}, &service.PushNotification{})
	assert.ErrorContains(t, err, "unavailable")
}

func TestNewFirebaseService_Unconfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewFirebaseService(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	report, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, &service.PushNotification{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
}
