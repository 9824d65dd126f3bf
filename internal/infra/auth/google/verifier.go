// Package google verifies Google-issued ID tokens.
package google

import (
	"context"

	"carmarket/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// IDTokenVerifier checks Google ID tokens against Google's published keys.
type IDTokenVerifier struct {
	clientID string
	validate validateFunc
}

// NewIDTokenVerifier builds a verifier that only accepts tokens minted for clientID.
func NewIDTokenVerifier(ctx context.Context, clientID string) (*IDTokenVerifier, error) {
	if clientID == "" {
		return nil, errors.New("google client ID must be provided")
	}

	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create ID token validator")
	}

	return &IDTokenVerifier{
		clientID: clientID,
		validate: validator.Validate,
	}, nil
}

// Verify validates signature, expiry and audience and maps the payload to an identity.
func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Google ID token")
	}

	if payload.Subject == "" {
		return nil, errors.New("google ID token has no subject")
	}

	identity := &service.Identity{ID: payload.Subject}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.PrimaryEmail = email
	}

	return identity, nil
}
