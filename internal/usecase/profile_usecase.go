// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// ProfileUsecase resolves external identities to marketplace profiles.
type ProfileUsecase interface {
	// EnsureProfile returns the caller's profile, creating a buyer profile on
	// first sight. When the identity has not reached the local mirror yet it
	// returns an unsaved default profile instead of failing.
	EnsureProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
}
