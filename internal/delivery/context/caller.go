package context

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the verified caller id.
	KeyUserID ContextKey = "user_id"

	// KeyProfile is the key for the caller's resolved profile.
	KeyProfile ContextKey = "profile"
)

// SetUserID stores the verified caller id in echo.Context and its request context.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

// GetUserID returns the verified caller id, or false for anonymous calls.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(string(KeyUserID)).(string)

	return userID, ok && userID != ""
}

// WithUserID returns a new context carrying the caller id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext extracts the caller id from standard context.Context.
func GetUserIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, KeyUserID)

	return id
}

// SetProfile stores the caller's profile in echo.Context.
func SetProfile(c echo.Context, profile *entity.UserProfile) {
	c.Set(string(KeyProfile), profile)
}

// GetProfile returns the profile resolved earlier in the chain, if any.
func GetProfile(c echo.Context) (*entity.UserProfile, bool) {
	profile, ok := c.Get(string(KeyProfile)).(*entity.UserProfile)

	return profile, ok && profile != nil
}
