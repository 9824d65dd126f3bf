// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"net/http"

	"carmarket/internal/delivery/api/response"
	deliverycontext "carmarket/internal/delivery/context"
	domainerrors "carmarket/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck answers the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// callerID is the verified user id placed by the auth middleware.
func callerID(c echo.Context) (string, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

// uuidParam treats a malformed id like an unknown one.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}
