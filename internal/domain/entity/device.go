package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`   // Profile the device belongs to.
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"` // Client supplied device identifier.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
