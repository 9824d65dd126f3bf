package repository

import (
	"context"

	"carmarket/internal/domain/entity"
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice registers the device or refreshes its token when the
	// (user, device id) pair already exists.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUsers returns active devices for the given users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error)

	// DeleteByToken removes the caller's device holding the token.
	DeleteByToken(ctx context.Context, userID, fcmToken string) error

	// DeleteByTokens removes devices whose tokens Firebase rejected.
	DeleteByTokens(ctx context.Context, fcmTokens []string) (int64, error)
}
