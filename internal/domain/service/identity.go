// Package service defines interfaces for collaborators that live outside the domain.
package service

import "context"

// Identity is the verified caller as reported by the identity provider.
type Identity struct {
	ID           string
	DisplayName  string
	PrimaryEmail string
}

// IdentityVerifier turns a bearer credential into a verified identity.
type IdentityVerifier interface {
	// Verify returns an error when the token is missing, malformed, or expired.
	Verify(ctx context.Context, token string) (*Identity, error)
}
