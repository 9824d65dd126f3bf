package postgres

import (
	"context"
	"time"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type buyerRequestRepository struct {
	db *gorm.DB
}

// NewBuyerRequestRepository is the constructor for buyerRequestRepository.
func NewBuyerRequestRepository(db *gorm.DB) repository.BuyerRequestRepository {
	return &buyerRequestRepository{
		db: db,
	}
}

func (repo *buyerRequestRepository) Create(ctx context.Context, request *entity.BuyerRequest) error {
	requestM := fromBuyerRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "buyer request violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID reads from the primary; offer creation gates on the status it returns.
func (repo *buyerRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerRequest, error) {
	var requestM model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer request by ID")
	}

	return toBuyerRequestDomain(&requestM), nil
}

// FindByIDForShare only holds its lock when repo.db is a transaction.
func (repo *buyerRequestRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*entity.BuyerRequest, error) {
	var requestM model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthShare}).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to lock buyer request")
	}

	return toBuyerRequestDomain(&requestM), nil
}

func (repo *buyerRequestRepository) FindByIDAndBuyer(ctx context.Context, id uuid.UUID, buyerID string) (*entity.BuyerRequest, error) {
	var requestM model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer request by ID and buyer")
	}

	return toBuyerRequestDomain(&requestM), nil
}

func (repo *buyerRequestRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.BuyerRequest, error) {
	var requestModels []*model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buyer requests by buyer")
	}

	return toBuyerRequestsDomain(requestModels), nil
}

func (repo *buyerRequestRepository) ListByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.BuyerRequest, error) {
	var requestModels []*model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buyer requests by status")
	}

	return toBuyerRequestsDomain(requestModels), nil
}

func (repo *buyerRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []entity.RequestStatus, to entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuyerRequestModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": gorm.Expr("now()"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update buyer request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

func (repo *buyerRequestRepository) MarkAccepted(ctx context.Context, id uuid.UUID, offerID uuid.UUID, from []entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuyerRequestModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(from)).
		Updates(map[string]any{
			"status":            string(entity.RequestAccepted),
			"accepted_offer_id": offerID,
			"updated_at":        gorm.Expr("now()"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark buyer request accepted")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

func (repo *buyerRequestRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var expired []model.BuyerRequestModel

	if err := repo.db.WithContext(ctx).
		Model(&expired).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", string(entity.RequestOpen), now).
		Updates(map[string]any{
			"status":     string(entity.RequestExpired),
			"updated_at": now,
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to expire overdue buyer requests")
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, m := range expired {
		ids = append(ids, m.ID)
	}

	return ids, nil
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}

// --- Mapper Functions ---

func toBuyerRequestsDomain(models []*model.BuyerRequestModel) []*entity.BuyerRequest {
	requests := make([]*entity.BuyerRequest, 0, len(models))
	for _, m := range models {
		requests = append(requests, toBuyerRequestDomain(m))
	}

	return requests
}

func toBuyerRequestDomain(data *model.BuyerRequestModel) *entity.BuyerRequest {
	if data == nil {
		return nil
	}

	return &entity.BuyerRequest{
		ID:                 data.ID,
		BuyerID:            data.BuyerID,
		Status:             entity.RequestStatus(data.Status),
		Title:              data.Title,
		Make:               data.Make,
		Model:              data.Model,
		Generation:         data.Generation,
		YearFrom:           data.YearFrom,
		YearTo:             data.YearTo,
		MinKm:              data.MinKm,
		MaxKm:              data.MaxKm,
		Condition:          enumPtr[entity.CarCondition](data.Condition),
		FuelType:           enumPtr[entity.FuelType](data.FuelType),
		Gearbox:            enumPtr[entity.Gearbox](data.Gearbox),
		BodyType:           enumPtr[entity.BodyType](data.BodyType),
		BudgetMin:          data.BudgetMin,
		BudgetMax:          data.BudgetMax,
		Currency:           data.Currency,
		LocationCity:       data.LocationCity,
		LocationPostalCode: data.LocationPostalCode,
		SearchRadiusKm:     data.SearchRadiusKm,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		WantsTradeIn:       data.WantsTradeIn,
		FinancingNeeded:    data.FinancingNeeded,
		Description:        data.Description,
		SearchType:         data.SearchType,
		ImageURLs:          []string(data.ImageURLs),
		AcceptedOfferID:    data.AcceptedOfferID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		ExpiresAt:          data.ExpiresAt,
	}
}

func fromBuyerRequestDomain(data *entity.BuyerRequest) *model.BuyerRequestModel {
	if data == nil {
		return nil
	}

	imageURLs := data.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &model.BuyerRequestModel{
		ID:                 data.ID,
		BuyerID:            data.BuyerID,
		Status:             string(data.Status),
		Title:              data.Title,
		Make:               data.Make,
		Model:              data.Model,
		Generation:         data.Generation,
		YearFrom:           data.YearFrom,
		YearTo:             data.YearTo,
		MinKm:              data.MinKm,
		MaxKm:              data.MaxKm,
		Condition:          stringPtr(data.Condition),
		FuelType:           stringPtr(data.FuelType),
		Gearbox:            stringPtr(data.Gearbox),
		BodyType:           stringPtr(data.BodyType),
		BudgetMin:          data.BudgetMin,
		BudgetMax:          data.BudgetMax,
		Currency:           data.Currency,
		LocationCity:       data.LocationCity,
		LocationPostalCode: data.LocationPostalCode,
		SearchRadiusKm:     data.SearchRadiusKm,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		WantsTradeIn:       data.WantsTradeIn,
		FinancingNeeded:    data.FinancingNeeded,
		Description:        data.Description,
		SearchType:         data.SearchType,
		ImageURLs:          pq.StringArray(imageURLs),
		AcceptedOfferID:    data.AcceptedOfferID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		ExpiresAt:          data.ExpiresAt,
	}
}

func enumPtr[E ~string](s *string) *E {
	if s == nil {
		return nil
	}
	e := E(*s)

	return &e
}

func stringPtr[E ~string](e *E) *string {
	if e == nil {
		return nil
	}
	s := string(*e)

	return &s
}
