package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	mockRepo "carmarket/internal/mocks/repository"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, testLogger())
	ctx := context.Background()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == "user-1" && d.FCMToken == "token-1" && d.Platform == "ios" && d.IsActive
		})).
		Return(nil)

	device, err := srv.RegisterDevice(ctx, "user-1", &usecase.DeviceInfo{
		FCMToken: " token-1 ",
		DeviceID: "iphone-15",
		Platform: "iOS",
	})
	require.NoError(t, err)
	assert.Equal(t, "iphone-15", device.DeviceID)
}

func TestDeviceService_RegisterDevice_ProfilePending(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, testLogger())
	ctx := context.Background()

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(repository.ErrProfileNotFound)

	_, err := srv.RegisterDevice(ctx, "user-1", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
	assert.ErrorIs(t, err, domainerrors.ErrProfilePending)
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("known token", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		srv := NewDeviceService(deviceRepo, testLogger())
		deviceRepo.EXPECT().DeleteByToken(ctx, "user-1", "token-1").Return(nil)

		assert.NoError(t, srv.UnregisterDevice(ctx, "user-1", "token-1"))
	})

	t.Run("unknown token", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		srv := NewDeviceService(deviceRepo, testLogger())
		deviceRepo.EXPECT().DeleteByToken(ctx, "user-1", "token-x").Return(repository.ErrDeviceNotFound)

		assert.ErrorIs(t, srv.UnregisterDevice(ctx, "user-1", "token-x"), domainerrors.ErrNotFound)
	})
}
