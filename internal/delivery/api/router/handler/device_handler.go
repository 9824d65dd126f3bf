package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"carmarket/internal/delivery/api/response"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" form:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" form:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" form:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// UnregisterDevice stops pushes to one of the caller's tokens
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), userID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
