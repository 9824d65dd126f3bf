package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/constants"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
)

const maxRequestImages = 10

type requestService struct {
	txManager   repository.TransactionManager
	requestRepo repository.BuyerRequestRepository
	qrCodeSvc   service.QRCodeService
	metrics     service.MarketMetrics
	settings    MarketplaceSettings
	logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(
	txManager repository.TransactionManager,
	requestRepo repository.BuyerRequestRepository,
	qrCodeSvc service.QRCodeService,
	metrics service.MarketMetrics,
	settings MarketplaceSettings,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		txManager:   txManager,
		requestRepo: requestRepo,
		qrCodeSvc:   qrCodeSvc,
		metrics:     metrics,
		settings:    settings,
		logger:      logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *requestService) Create(ctx context.Context, buyerID string, input *usecase.CreateBuyerRequestInput) (*entity.BuyerRequest, error) {
	request, err := srv.newBuyerRequest(buyerID, input, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfilePending
		}

		return nil, errors.Wrap(err, "failed to create buyer request")
	}

	srv.metrics.RequestCreated()
	srv.log(ctx).Info("Buyer request created",
		slog.String("requestID", request.ID.String()),
		slog.String("buyerID", buyerID),
	)

	return request, nil
}

func (srv *requestService) newBuyerRequest(buyerID string, input *usecase.CreateBuyerRequestInput, now time.Time) (*entity.BuyerRequest, error) {
	title := strings.TrimSpace(input.Title)
	vehicleMake := strings.TrimSpace(input.Make)
	vehicleModel := strings.TrimSpace(input.Model)
	if vehicleMake == "" {
		vehicleMake = constants.UnknownVehicleValue
	}
	if vehicleModel == "" {
		vehicleModel = constants.UnknownVehicleValue
	}

	request := &entity.BuyerRequest{
		BuyerID:            buyerID,
		Status:             entity.RequestOpen,
		Title:              title,
		Make:               vehicleMake,
		Model:              vehicleModel,
		Generation:         trimmedOrNil(input.Generation),
		YearFrom:           input.YearFrom,
		YearTo:             input.YearTo,
		MinKm:              input.MinKm,
		MaxKm:              input.MaxKm,
		Condition:          input.Condition,
		FuelType:           input.FuelType,
		Gearbox:            input.Gearbox,
		BodyType:           input.BodyType,
		BudgetMin:          input.BudgetMin,
		BudgetMax:          input.BudgetMax,
		Currency:           srv.settings.Currency,
		LocationCity:       trimmedOrNil(input.LocationCity),
		LocationPostalCode: trimmedOrNil(input.LocationPostalCode),
		SearchRadiusKm:     input.SearchRadiusKm,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		WantsTradeIn:       input.WantsTradeIn,
		FinancingNeeded:    input.FinancingNeeded,
		Description:        trimmedOrNil(input.Description),
		SearchType:         trimmedOrNil(input.SearchType),
		ImageURLs:          input.ImageURLs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if request.ImageURLs == nil {
		request.ImageURLs = []string{}
	}
	if srv.settings.RequestTTL > 0 {
		expiresAt := now.Add(srv.settings.RequestTTL)
		request.ExpiresAt = &expiresAt
	}

	check := newFormCheck()
	check.length("title", title, 3, 200)
	check.length("make", vehicleMake, 1, 100)
	check.length("model", vehicleModel, 1, 100)
	check.maxLength("generation", request.Generation, 100)
	check.maxLength("locationCity", request.LocationCity, 120)
	check.maxLength("locationPostalCode", request.LocationPostalCode, 16)
	check.maxLength("searchType", request.SearchType, 32)
	check.maxLength("description", request.Description, 5000)
	check.nonNegative("budgetMax", request.BudgetMax)
	check.check("condition", request.Condition == nil || request.Condition.IsValid(), "Ugyldig tilstand")
	check.check("fuelType", request.FuelType == nil || request.FuelType.IsValid(), "Ugyldig drivstoff")
	check.check("gearbox", request.Gearbox == nil || request.Gearbox.IsValid(), "Ugyldig girkasse")
	check.check("bodyType", request.BodyType == nil || request.BodyType.IsValid(), "Ugyldig karosseri")
	check.check("latitude", (request.Latitude == nil) == (request.Longitude == nil), "Både breddegrad og lengdegrad må oppgis")
	check.check("imageUrls", len(request.ImageURLs) <= maxRequestImages, "For mange bilder")
	if err := check.err(); err != nil {
		return nil, err
	}

	return request, nil
}

func (srv *requestService) ListForBuyer(ctx context.Context, buyerID string) ([]*entity.BuyerRequest, error) {
	requests, err := srv.requestRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer requests")
	}

	return requests, nil
}

func (srv *requestService) ListOpen(ctx context.Context) ([]*entity.BuyerRequest, error) {
	requests, err := srv.requestRepo.ListByStatus(ctx, entity.RequestOpen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open requests")
	}

	return requests, nil
}

func (srv *requestService) GetOwned(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error) {
	request, err := srv.requestRepo.FindByIDAndBuyer(ctx, requestID, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "buyer request not found")
		}

		return nil, errors.Wrap(err, "failed to find buyer request")
	}

	return request, nil
}

func (srv *requestService) GetOpen(ctx context.Context, requestID uuid.UUID) (*entity.BuyerRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "buyer request not found")
		}

		return nil, errors.Wrap(err, "failed to find buyer request")
	}
	if !request.IsOpen() {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "buyer request is not open")
	}

	return request, nil
}

func (srv *requestService) Cancel(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error) {
	return srv.transition(ctx, requestID, buyerID, entity.RequestCancelled)
}

func (srv *requestService) MarkUnderReview(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error) {
	return srv.transition(ctx, requestID, buyerID, entity.RequestUnderReview)
}

// transition applies a buyer-initiated status change with a conditional update.
func (srv *requestService) transition(ctx context.Context, requestID uuid.UUID, buyerID string, to entity.RequestStatus) (*entity.BuyerRequest, error) {
	request, err := srv.GetOwned(ctx, requestID, buyerID)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(to) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "request %s -> %s", request.Status, to)
	}

	if err := srv.requestRepo.UpdateStatus(ctx, requestID, entity.RequestSourcesOf(to), to); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "request status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to update request status")
	}

	srv.log(ctx).Info("Buyer request status changed",
		slog.String("requestID", requestID.String()),
		slog.String("from", string(request.Status)),
		slog.String("to", string(to)),
	)

	request.Status = to
	request.UpdatedAt = time.Now()

	return request, nil
}

// ExpireOverdue runs the expiry sweep in one transaction so a request never
// expires while its offers stay submitted.
func (srv *requestService) ExpireOverdue(ctx context.Context, now time.Time) (*usecase.ExpiryReport, error) {
	report := &usecase.ExpiryReport{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expired, err := repoFactory.NewBuyerRequestRepository().ExpireOverdue(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to expire requests")
		}

		offers, err := repoFactory.NewOfferRepository().ExpireForRequests(ctx, expired)
		if err != nil {
			return errors.Wrap(err, "failed to expire offers")
		}

		report.RequestIDs = expired
		report.OffersExpired = offers

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "expiry sweep failed")
	}

	srv.metrics.RequestsExpired(len(report.RequestIDs))
	if len(report.RequestIDs) > 0 {
		srv.log(ctx).Info("Expired overdue requests",
			slog.Int("requests", len(report.RequestIDs)),
			slog.Int64("offers", report.OffersExpired),
		)
	}

	return report, nil
}

func (srv *requestService) QRCode(ctx context.Context, requestID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetOpen(ctx, requestID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateRequestQR(requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate request QR code")
	}

	return png, nil
}
