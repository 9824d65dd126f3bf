package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/errors"
	mockUC "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	t.Helper()

	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: testLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, "buyer-1", &usecase.DeviceInfo{FCMToken: "tok-1", DeviceID: "pixel-8", Platform: "android"}).
			Return(&entity.UserDevice{UserID: "buyer-1", FCMToken: "tok-1", IsActive: true}, nil)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/devices",
			body:        strings.NewReader(`{"fcm_token":"tok-1","device_id":"pixel-8","platform":"android"}`),
			contentType: echo.MIMEApplicationJSON,
			userID:      "buyer-1",
		}, h.RegisterDevice)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decodeData[entity.UserDevice](t, decodeEnvelope(t, rec)).IsActive)
	})

	t.Run("UnknownPlatform", func(t *testing.T) {
		h, _ := createTestDeviceHandler(t)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/devices",
			body:        strings.NewReader(`{"fcm_token":"tok-1","device_id":"pixel-8","platform":"symbian"}`),
			contentType: echo.MIMEApplicationJSON,
			userID:      "buyer-1",
		}, h.RegisterDevice)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldDetails(t, decodeEnvelope(t, rec))
		assert.Contains(t, fields, "platform")
		assert.NotContains(t, fields, "fcm_token")
	})
}

func TestDeviceHandler_UnregisterDevice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, deviceUC := createTestDeviceHandler(t)
		token := "abc:APA91b/x"

		deviceUC.EXPECT().UnregisterDevice(mock.Anything, "buyer-1", token).Return(nil)

		rec := serve(t, testCall{
			method: http.MethodDelete,
			target: "/api/v1/devices/" + url.PathEscape(token),
			userID: "buyer-1",
			params: map[string]string{"token": url.PathEscape(token)},
		}, h.UnregisterDevice)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		h, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().
			UnregisterDevice(mock.Anything, "buyer-1", "missing").
			Return(errors.Wrap(domainerrors.ErrNotFound, "device not found"))

		rec := serve(t, testCall{
			method: http.MethodDelete,
			target: "/api/v1/devices/missing",
			userID: "buyer-1",
			params: map[string]string{"token": "missing"},
		}, h.UnregisterDevice)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
