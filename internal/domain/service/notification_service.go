package service

import (
	"context"
)

// MaxBatchTokens is the most device tokens one multicast send may address.
const MaxBatchTokens = 500

// PushNotification is the visible part of a push message plus its data payload.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarises one multicast send.
type PushReport struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one notification to at most MaxBatchTokens tokens.
	SendBatchNotification(ctx context.Context, tokens []string, notification *PushNotification) (*PushReport, error)
}
