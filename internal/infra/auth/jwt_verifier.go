// Package auth verifies caller identity tokens.
package auth

import (
	"context"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// IdentityClaims are the claims carried by identity tokens.
type IdentityClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens signed with the shared identity secret.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTVerifier is the constructor for JWTVerifier.
func NewJWTVerifier(cfg *config.IdentityConfig) (*JWTVerifier, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, errors.New("identity secret must be provided")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTVerifier{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Verify checks signature, expiry, issuer and audience and returns the subject as identity.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*service.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &IdentityClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "invalid identity token")
	}

	if claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}

	return &service.Identity{
		ID:           claims.Subject,
		DisplayName:  claims.Name,
		PrimaryEmail: claims.Email,
	}, nil
}

// Issue signs a token for identity. It exists for development tooling; production tokens come from the provider.
func (v *JWTVerifier) Issue(identity *service.Identity) (string, error) {
	now := v.now()
	claims := IdentityClaims{
		Name:  identity.DisplayName,
		Email: identity.PrimaryEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign identity token")
	}

	return signed, nil
}
