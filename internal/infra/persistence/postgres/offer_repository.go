package postgres

import (
	"context"

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

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRequestNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindThread is the access-control read for conversations, so it never goes to a replica.
func (repo *offerRepository) FindThread(ctx context.Context, offerID uuid.UUID) (*entity.OfferThread, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Joins("Request").
		Joins("Dealership").
		Where("offers.id = ?", offerID).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer thread")
	}

	return &entity.OfferThread{
		Offer:      toOfferDomain(&offerM),
		Request:    toBuyerRequestDomain(offerM.Request),
		Dealership: toDealershipDomain(offerM.Dealership),
	}, nil
}

func (repo *offerRepository) ListByDealership(ctx context.Context, dealershipID uuid.UUID) ([]*entity.OfferWithRequest, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Joins("Request").
		Where("offers.dealership_id = ?", dealershipID).
		Order("offers.created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers by dealership")
	}

	rows := make([]*entity.OfferWithRequest, 0, len(offerModels))
	for _, m := range offerModels {
		rows = append(rows, &entity.OfferWithRequest{
			Offer:   toOfferDomain(m),
			Request: toBuyerRequestDomain(m.Request),
		})
	}

	return rows, nil
}

func (repo *offerRepository) ListByRequestForBuyer(ctx context.Context, requestID uuid.UUID, buyerID string) ([]*entity.OfferWithDealership, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Joins("Dealership").
		Where("offers.request_id = ?", requestID).
		Where("EXISTS (SELECT 1 FROM buyer_requests r WHERE r.id = offers.request_id AND r.buyer_id = ?)", buyerID).
		Order("offers.created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers for request")
	}

	rows := make([]*entity.OfferWithDealership, 0, len(offerModels))
	for _, m := range offerModels {
		rows = append(rows, &entity.OfferWithDealership{
			Offer:      toOfferDomain(m),
			Dealership: toDealershipDomain(m.Dealership),
		})
	}

	return rows, nil
}

func (repo *offerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from entity.OfferStatus, to entity.OfferStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": gorm.Expr("now()"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

func (repo *offerRepository) RejectSiblings(ctx context.Context, requestID uuid.UUID, acceptedOfferID uuid.UUID) ([]*entity.Offer, error) {
	var rejected []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Model(&rejected).
		Clauses(clause.Returning{}).
		Where("request_id = ? AND id <> ? AND status = ?", requestID, acceptedOfferID, string(entity.OfferSubmitted)).
		Updates(map[string]any{
			"status":     string(entity.OfferRejected),
			"updated_at": gorm.Expr("now()"),
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reject sibling offers")
	}

	offers := make([]*entity.Offer, 0, len(rejected))
	for _, m := range rejected {
		offers = append(offers, toOfferDomain(m))
	}

	return offers, nil
}

func (repo *offerRepository) ExpireForRequests(ctx context.Context, requestIDs []uuid.UUID) (int64, error) {
	if len(requestIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("request_id IN ? AND status = ?", requestIDs, string(entity.OfferSubmitted)).
		Updates(map[string]any{
			"status":     string(entity.OfferExpired),
			"updated_at": gorm.Expr("now()"),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire offers")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:                   data.ID,
		RequestID:            data.RequestID,
		DealershipID:         data.DealershipID,
		DealerUserID:         data.DealerUserID,
		Status:               entity.OfferStatus(data.Status),
		CarRegNr:             data.CarRegNr,
		VIN:                  data.VIN,
		CarMake:              data.CarMake,
		CarModel:             data.CarModel,
		CarVariant:           data.CarVariant,
		CarYear:              data.CarYear,
		CarKm:                data.CarKm,
		CarCondition:         entity.CarCondition(data.CarCondition),
		FuelType:             enumPtr[entity.FuelType](data.FuelType),
		Gearbox:              enumPtr[entity.Gearbox](data.Gearbox),
		BodyType:             enumPtr[entity.BodyType](data.BodyType),
		ColorExterior:        data.ColorExterior,
		ColorInterior:        data.ColorInterior,
		PriceTotal:           data.PriceTotal,
		PriceOld:             data.PriceOld,
		Currency:             data.Currency,
		DeliveryTimeEstimate: data.DeliveryTimeEstimate,
		WarrantySummary:      data.WarrantySummary,
		FinancingPossible:    data.FinancingPossible,
		FinancingExample:     data.FinancingExample,
		LocationCity:         data.LocationCity,
		LocationPostalCode:   data.LocationPostalCode,
		DistanceKm:           data.DistanceKm,
		ShortMessageToBuyer:  data.ShortMessageToBuyer,
		InternalNotes:        data.InternalNotes,
		ImageURLs:            []string(data.ImageURLs),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	imageURLs := data.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return &model.OfferModel{
		ID:                   data.ID,
		RequestID:            data.RequestID,
		DealershipID:         data.DealershipID,
		DealerUserID:         data.DealerUserID,
		Status:               string(data.Status),
		CarRegNr:             data.CarRegNr,
		VIN:                  data.VIN,
		CarMake:              data.CarMake,
		CarModel:             data.CarModel,
		CarVariant:           data.CarVariant,
		CarYear:              data.CarYear,
		CarKm:                data.CarKm,
		CarCondition:         string(data.CarCondition),
		FuelType:             stringPtr(data.FuelType),
		Gearbox:              stringPtr(data.Gearbox),
		BodyType:             stringPtr(data.BodyType),
		ColorExterior:        data.ColorExterior,
		ColorInterior:        data.ColorInterior,
		PriceTotal:           data.PriceTotal,
		PriceOld:             data.PriceOld,
		Currency:             data.Currency,
		DeliveryTimeEstimate: data.DeliveryTimeEstimate,
		WarrantySummary:      data.WarrantySummary,
		FinancingPossible:    data.FinancingPossible,
		FinancingExample:     data.FinancingExample,
		LocationCity:         data.LocationCity,
		LocationPostalCode:   data.LocationPostalCode,
		DistanceKm:           data.DistanceKm,
		ShortMessageToBuyer:  data.ShortMessageToBuyer,
		InternalNotes:        data.InternalNotes,
		ImageURLs:            pq.StringArray(imageURLs),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
