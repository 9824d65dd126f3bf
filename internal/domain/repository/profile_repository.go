package repository

import (
	"context"

	"carmarket/internal/domain/entity"
)

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// FindByUserID returns ErrProfileNotFound when no row exists.
	FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// Create returns ErrIdentityNotSynced when the identity mirror lacks the
	// user and ErrDuplicate when another caller created the row first.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateRole changes the platform role of an existing profile.
	UpdateRole(ctx context.Context, userID string, role entity.Role) error
}
