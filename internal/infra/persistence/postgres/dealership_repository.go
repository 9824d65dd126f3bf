package postgres

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type dealershipRepository struct {
	db *gorm.DB
}

// NewDealershipRepository is the constructor for dealershipRepository.
func NewDealershipRepository(db *gorm.DB) repository.DealershipRepository {
	return &dealershipRepository{
		db: db,
	}
}

func (repo *dealershipRepository) Create(ctx context.Context, dealership *entity.Dealership) error {
	dealershipM := fromDealershipDomain(dealership)

	if err := repo.db.WithContext(ctx).Create(dealershipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dealership")
	}

	dealership.ID = dealershipM.ID
	dealership.CreatedAt = dealershipM.CreatedAt
	dealership.UpdatedAt = dealershipM.UpdatedAt

	return nil
}

func (repo *dealershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dealership, error) {
	var dealershipM model.DealershipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find dealership by ID")
	}

	return toDealershipDomain(&dealershipM), nil
}

func (repo *dealershipRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Dealership, error) {
	var dealershipModels []*model.DealershipModel

	// Onboarding redirects straight here, so the read must see the fresh row.
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&dealershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dealerships by owner")
	}

	return toDealershipsDomain(dealershipModels), nil
}

func (repo *dealershipRepository) ListForMember(ctx context.Context, userID string) ([]*entity.Dealership, error) {
	var dealershipModels []*model.DealershipModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("owner_id = ?", userID).
		Or("id IN (?)", repo.db.Model(&model.DealerMembershipModel{}).
			Select("dealership_id").
			Where("user_id = ?", userID)).
		Order("created_at ASC").
		Find(&dealershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dealerships for member")
	}

	return toDealershipsDomain(dealershipModels), nil
}

func (repo *dealershipRepository) AddMember(ctx context.Context, membership *entity.DealerMembership) error {
	membershipM := &model.DealerMembershipModel{
		ID:           membership.ID,
		DealershipID: membership.DealershipID,
		UserID:       membership.UserID,
		Role:         string(membership.Role),
		CreatedAt:    membership.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDealershipNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add dealership member")
	}

	membership.ID = membershipM.ID
	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

// IsMember always asks the primary: membership decides access and must never be stale.
func (repo *dealershipRepository) IsMember(ctx context.Context, dealershipID uuid.UUID, userID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DealershipModel{}).
		Where("id = ?", dealershipID).
		Where(repo.db.Where("owner_id = ?", userID).
			Or("EXISTS (SELECT 1 FROM dealer_memberships m WHERE m.dealership_id = dealerships.id AND m.user_id = ?)", userID)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check dealership membership")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toDealershipsDomain(models []*model.DealershipModel) []*entity.Dealership {
	dealerships := make([]*entity.Dealership, 0, len(models))
	for _, m := range models {
		dealerships = append(dealerships, toDealershipDomain(m))
	}

	return dealerships
}

func toDealershipDomain(data *model.DealershipModel) *entity.Dealership {
	if data == nil {
		return nil
	}

	return &entity.Dealership{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		OrgNumber:  data.OrgNumber,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Makes:      data.Makes,
		Verified:   data.Verified,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDealershipDomain(data *entity.Dealership) *model.DealershipModel {
	if data == nil {
		return nil
	}

	return &model.DealershipModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		OrgNumber:  data.OrgNumber,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Makes:      data.Makes,
		Verified:   data.Verified,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
