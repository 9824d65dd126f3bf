package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "carmarket/internal/delivery/context"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier  service.IdentityVerifier
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AuthMiddleware verifies the caller and resolves their profile.
type AuthMiddleware struct {
	verifier  service.IdentityVerifier
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  params.Verifier,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Authenticate verifies the bearer token, then ensures the caller has a profile.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthenticated
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			logger.Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetUserID(c, identity.ID)

		ctx = deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.String("user_id", identity.ID)))
		c.SetRequest(c.Request().WithContext(ctx))

		profile, err := m.profileUC.EnsureProfile(ctx, identity.ID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve profile")
		}
		deliverycontext.SetProfile(c, profile)

		return next(c)
	}
}

// RequireDealer lets through dealers and admins. It must run after Authenticate.
func (m *AuthMiddleware) RequireDealer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, ok := deliverycontext.GetProfile(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		if !profile.Role.CanActAsDealer() {
			return domainerrors.ErrForbiddenRole
		}

		return next(c)
	}
}
