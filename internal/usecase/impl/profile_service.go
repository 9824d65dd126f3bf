// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProfile is a get-or-create on the caller's profile.
func (srv *profileService) EnsureProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = entity.NewDefaultProfile(userID, time.Now())

	err = srv.profileRepo.Create(ctx, profile)
	switch {
	case err == nil:
		srv.log(ctx).Info("Profile created", slog.String("userID", userID))

		return profile, nil

	case errors.Is(err, repository.ErrIdentityNotSynced):
		// The identity mirror lags the provider; serve a default until it catches up.
		srv.log(ctx).Warn("Identity not mirrored yet, serving transient profile", slog.String("userID", userID))
		profile.Transient = true

		return profile, nil

	case errors.Is(err, repository.ErrDuplicate):
		existing, findErr := srv.profileRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to read concurrently created profile")
		}

		return existing, nil

	default:
		return nil, errors.Wrap(err, "failed to create profile")
	}
}
