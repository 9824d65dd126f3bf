package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	now := time.Now()
	device := &entity.UserDevice{
		UserID:    userID,
		FCMToken:  strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID:  strings.TrimSpace(deviceInfo.DeviceID),
		Platform:  strings.ToLower(strings.TrimSpace(deviceInfo.Platform)),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfilePending
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Device registered",
		slog.String("userID", userID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UnregisterDevice removes the caller's device holding fcmToken
func (s *deviceService) UnregisterDevice(ctx context.Context, userID, fcmToken string) error {
	if err := s.deviceRepo.DeleteByToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to unregister device")
	}

	return nil
}
