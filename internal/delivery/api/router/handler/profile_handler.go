package handler

import (
	"carmarket/internal/delivery/api/response"
	deliverycontext "carmarket/internal/delivery/context"
	domainerrors "carmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct{}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Me returns the profile the auth middleware resolved.
func (h *ProfileHandler) Me(c echo.Context) error {
	profile, ok := deliverycontext.GetProfile(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return response.OK(c, profile)
}
