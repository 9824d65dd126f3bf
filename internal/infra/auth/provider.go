package auth

import (
	"context"
	"log/slog"

	"carmarket/config"
	"carmarket/internal/domain/constants"
	"carmarket/internal/domain/service"
	"carmarket/internal/infra/auth/google"

	"github.com/pkg/errors"
)

// NewIdentityVerifier picks the verifier named by identity.provider.
func NewIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	idCfg := cfg.Identity
	if idCfg == nil {
		return nil, errors.New("identity configuration is missing")
	}

	switch idCfg.Provider {
	case constants.IdentityProviderJWT, "":
		logger.Info("Using HS256 identity tokens", slog.String("issuer", idCfg.Issuer))

		verifier, err := NewJWTVerifier(idCfg)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	case constants.IdentityProviderGoogle:
		logger.Info("Using Google ID tokens", slog.String("client_id", idCfg.ClientID))

		verifier, err := google.NewIDTokenVerifier(ctx, idCfg.ClientID)
		if err != nil {
			return nil, err
		}

		return verifier, nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", idCfg.Provider)
	}
}
