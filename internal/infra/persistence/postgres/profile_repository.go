// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID reads from the primary so a profile created a moment ago is always visible.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create inserts a profile. Constraint failures are classified here so callers never inspect driver codes.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIdentityNotSynced
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateRole changes the role of an existing profile.
func (repo *profileRepository) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("role", string(role))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrapf(result.Error, "invalid role %q", role)
		}

		return errors.Wrap(result.Error, "failed to update profile role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:    data.UserID,
		Role:      string(data.Role),
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
