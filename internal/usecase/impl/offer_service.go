package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
	"carmarket/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxOfferImages = 20

type offerService struct {
	txManager      repository.TransactionManager
	requestRepo    repository.BuyerRequestRepository
	offerRepo      repository.OfferRepository
	dealershipRepo repository.DealershipRepository
	publisher      service.EventPublisher
	metrics        service.MarketMetrics
	settings       MarketplaceSettings
	logger         *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RequestRepo    repository.BuyerRequestRepository
	OfferRepo      repository.OfferRepository
	DealershipRepo repository.DealershipRepository
	Publisher      service.EventPublisher
	Metrics        service.MarketMetrics
	Settings       MarketplaceSettings
	Logger         *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager:      params.TxManager,
		requestRepo:    params.RequestRepo,
		offerRepo:      params.OfferRepo,
		dealershipRepo: params.DealershipRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		settings:       params.Settings,
		logger:         params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create checks eligibility before input so a closed request always answers
// REQUEST_NOT_OPEN. The request row stays share-locked until the insert
// commits, so an accept or expiry sweep either lands first and is seen here,
// or waits and then sees the new offer.
func (srv *offerService) Create(
	ctx context.Context,
	dealerUserID string,
	dealershipID, requestID uuid.UUID,
	input *usecase.CreateOfferInput,
) (*entity.Offer, error) {
	var (
		request *entity.BuyerRequest
		offer   *entity.Offer
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealershipRepo := repoFactory.NewDealershipRepository()

		// 1. The request must exist and be open
		var err error
		request, err = repoFactory.NewBuyerRequestRepository().FindByIDForShare(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotOpen, "buyer request not found")
			}

			return errors.Wrap(err, "failed to find buyer request")
		}
		if !request.IsOpen() {
			return errors.Wrapf(domainerrors.ErrRequestNotOpen, "buyer request is %s", request.Status)
		}

		// 2. The dealer must act for the dealership
		dealership, err := dealershipRepo.FindByID(ctx, dealershipID)
		if err != nil {
			if errors.Is(err, repository.ErrDealershipNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "dealership not found")
			}

			return errors.Wrap(err, "failed to find dealership")
		}
		isMember, err := dealershipRepo.IsMember(ctx, dealershipID, dealerUserID)
		if err != nil {
			return errors.Wrap(err, "failed to check dealership membership")
		}
		if !isMember {
			return errors.Wrap(domainerrors.ErrNotFound, "dealer is not a member of the dealership")
		}

		// 3. Validate and build
		offer, err = srv.newOffer(dealerUserID, dealership, request, input)
		if err != nil {
			return err
		}

		// 4. Insert
		if err := repoFactory.NewOfferRepository().Create(ctx, offer); err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotOpen, "buyer request disappeared")
			}

			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit offer")
	}

	srv.metrics.OfferSubmitted()
	srv.log(ctx).Info("Offer submitted",
		slog.String("offerID", offer.ID.String()),
		slog.String("requestID", requestID.String()),
		slog.String("dealershipID", dealershipID.String()),
	)

	publishMarketEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketEvent{
		Type:           service.EventOfferSubmitted,
		BuyerRequestID: requestID.String(),
		OfferID:        offer.ID.String(),
		DealershipID:   dealershipID.String(),
		ActorID:        dealerUserID,
		Title:          "Nytt tilbud på " + request.Title,
		Preview:        fmt.Sprintf("%s %s %d, %d %s", offer.CarMake, offer.CarModel, offer.CarYear, offer.PriceTotal, offer.Currency),
		RecipientIDs:   []string{request.BuyerID},
		InvalidationPaths: []string{
			fmt.Sprintf("/buyer/requests/%s", requestID),
		},
	})

	return offer, nil
}

func (srv *offerService) newOffer(
	dealerUserID string,
	dealership *entity.Dealership,
	request *entity.BuyerRequest,
	input *usecase.CreateOfferInput,
) (*entity.Offer, error) {
	now := time.Now()

	offer := &entity.Offer{
		RequestID:            request.ID,
		DealershipID:         dealership.ID,
		DealerUserID:         dealerUserID,
		Status:               entity.OfferSubmitted,
		CarRegNr:             trimmedOrNil(input.CarRegNr),
		VIN:                  trimmedOrNil(input.VIN),
		CarMake:              strings.TrimSpace(input.CarMake),
		CarModel:             strings.TrimSpace(input.CarModel),
		CarVariant:           trimmedOrNil(input.CarVariant),
		CarYear:              input.CarYear,
		CarKm:                input.CarKm,
		CarCondition:         entity.ConditionUsed,
		FuelType:             request.FuelType,
		Gearbox:              request.Gearbox,
		BodyType:             request.BodyType,
		ColorExterior:        trimmedOrNil(input.ColorExterior),
		ColorInterior:        trimmedOrNil(input.ColorInterior),
		PriceTotal:           input.PriceTotal,
		PriceOld:             input.PriceOld,
		Currency:             srv.settings.Currency,
		DeliveryTimeEstimate: trimmedOrNil(input.DeliveryTimeEstimate),
		WarrantySummary:      trimmedOrNil(input.WarrantySummary),
		FinancingPossible:    input.FinancingPossible,
		FinancingExample:     trimmedOrNil(input.FinancingExample),
		LocationCity:         trimmedOrNil(input.LocationCity),
		LocationPostalCode:   trimmedOrNil(input.LocationPostalCode),
		ShortMessageToBuyer:  trimmedOrNil(input.ShortMessageToBuyer),
		InternalNotes:        trimmedOrNil(input.InternalNotes),
		ImageURLs:            input.ImageURLs,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// The dealer's choices win; the buyer's preferences fill the gaps.
	if request.Condition != nil {
		offer.CarCondition = *request.Condition
	}
	if input.CarCondition != nil {
		offer.CarCondition = *input.CarCondition
	}
	if input.FuelType != nil {
		offer.FuelType = input.FuelType
	}
	if input.Gearbox != nil {
		offer.Gearbox = input.Gearbox
	}
	if input.BodyType != nil {
		offer.BodyType = input.BodyType
	}
	if offer.LocationCity == nil && dealership.City != "" {
		offer.LocationCity = &dealership.City
	}
	if offer.LocationPostalCode == nil && dealership.PostalCode != "" {
		offer.LocationPostalCode = &dealership.PostalCode
	}
	if offer.ImageURLs == nil {
		offer.ImageURLs = []string{}
	}

	if from, ok := dealership.Coordinates(); ok {
		if to, ok := request.Coordinates(); ok {
			distance := util.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
			offer.DistanceKm = &distance
		}
	}

	check := newFormCheck()
	check.length("carMake", offer.CarMake, 1, 100)
	check.length("carModel", offer.CarModel, 1, 100)
	check.maxLength("carVariant", offer.CarVariant, 100)
	check.maxLength("carRegNr", offer.CarRegNr, 16)
	check.maxLength("vin", offer.VIN, 32)
	check.positive("carYear", offer.CarYear)
	check.positive("carKm", offer.CarKm)
	check.positive("priceTotal", offer.PriceTotal)
	check.nonNegative("priceOld", offer.PriceOld)
	check.maxLength("colorExterior", offer.ColorExterior, 60)
	check.maxLength("colorInterior", offer.ColorInterior, 60)
	check.maxLength("deliveryTimeEstimate", offer.DeliveryTimeEstimate, 200)
	check.maxLength("warrantySummary", offer.WarrantySummary, 2000)
	check.maxLength("financingExample", offer.FinancingExample, 2000)
	check.maxLength("locationCity", offer.LocationCity, 120)
	check.maxLength("locationPostalCode", offer.LocationPostalCode, 16)
	check.maxLength("shortMessageToBuyer", offer.ShortMessageToBuyer, 2000)
	check.maxLength("internalNotes", offer.InternalNotes, 2000)
	check.check("carCondition", offer.CarCondition.IsValid(), "Ugyldig tilstand")
	check.check("fuelType", offer.FuelType == nil || offer.FuelType.IsValid(), "Ugyldig drivstoff")
	check.check("gearbox", offer.Gearbox == nil || offer.Gearbox.IsValid(), "Ugyldig girkasse")
	check.check("bodyType", offer.BodyType == nil || offer.BodyType.IsValid(), "Ugyldig karosseri")
	check.check("imageUrls", len(offer.ImageURLs) <= maxOfferImages, "For mange bilder")
	if err := check.err(); err != nil {
		return nil, err
	}

	return offer, nil
}

func (srv *offerService) ListForDealership(ctx context.Context, dealershipID uuid.UUID) ([]*entity.OfferWithRequest, error) {
	rows, err := srv.offerRepo.ListByDealership(ctx, dealershipID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers for dealership")
	}

	return rows, nil
}

// ListForRequest returns nothing for a request the buyer does not own.
// Internal notes never leave the dealer side.
func (srv *offerService) ListForRequest(ctx context.Context, requestID uuid.UUID, buyerID string) ([]*entity.OfferWithDealership, error) {
	rows, err := srv.offerRepo.ListByRequestForBuyer(ctx, requestID, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers for request")
	}

	for _, row := range rows {
		row.Offer = row.Offer.ForBuyer()
	}

	return rows, nil
}

func (srv *offerService) GetForDealer(ctx context.Context, offerID uuid.UUID, userID string) (*entity.OfferThread, error) {
	return srv.dealerThread(ctx, offerID, userID)
}

func (srv *offerService) dealerThread(ctx context.Context, offerID uuid.UUID, userID string) (*entity.OfferThread, error) {
	thread, err := srv.offerRepo.FindThread(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "offer not found")
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	dealerSide, err := isDealerSide(ctx, srv.dealershipRepo, thread, userID)
	if err != nil {
		return nil, err
	}
	if !dealerSide {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller is not on the dealer side of the offer")
	}

	return thread, nil
}

// buyerOffer loads an offer through the buyer's own request.
func buyerOffer(
	ctx context.Context,
	requestRepo repository.BuyerRequestRepository,
	offerRepo repository.OfferRepository,
	offerID, requestID uuid.UUID,
	buyerID string,
) (*entity.BuyerRequest, *entity.Offer, error) {
	request, err := requestRepo.FindByIDAndBuyer(ctx, requestID, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "buyer request not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find buyer request")
	}

	offer, err := offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "offer not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find offer")
	}
	if offer.RequestID != request.ID {
		return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "offer does not belong to request")
	}

	return request, offer, nil
}

// Accept runs the three writes in one transaction. Each write is conditional,
// so of two racing accepts exactly one commits.
func (srv *offerService) Accept(ctx context.Context, offerID, requestID uuid.UUID, buyerID string) (*entity.Offer, error) {
	var (
		request  *entity.BuyerRequest
		accepted *entity.Offer
		rejected []*entity.Offer
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewBuyerRequestRepository()
		offerRepo := repoFactory.NewOfferRepository()

		var err error
		request, accepted, err = buyerOffer(ctx, requestRepo, offerRepo, offerID, requestID, buyerID)
		if err != nil {
			return err
		}

		if !accepted.Status.CanTransitionTo(entity.OfferAccepted) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "offer is %s", accepted.Status)
		}
		if !request.Status.CanTransitionTo(entity.RequestAccepted) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "request is %s", request.Status)
		}

		// 1. Offer submitted -> accepted
		if err := offerRepo.UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferAccepted); err != nil {
			return statusUpdateError(err, "failed to accept offer")
		}

		// 2. Request -> accepted, pointing at the offer
		if err := requestRepo.MarkAccepted(ctx, requestID, offerID, entity.RequestSourcesOf(entity.RequestAccepted)); err != nil {
			return statusUpdateError(err, "failed to mark request accepted")
		}

		// 3. Every other submitted offer loses
		rejected, err = offerRepo.RejectSiblings(ctx, requestID, offerID)
		if err != nil {
			return errors.Wrap(err, "failed to reject sibling offers")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to accept offer")
	}

	accepted.Status = entity.OfferAccepted
	accepted.UpdatedAt = time.Now()

	srv.metrics.OfferStatusChanged(string(entity.OfferAccepted))
	for range rejected {
		srv.metrics.OfferStatusChanged(string(entity.OfferRejected))
	}
	srv.log(ctx).Info("Offer accepted",
		slog.String("offerID", offerID.String()),
		slog.String("requestID", requestID.String()),
		slog.Int("siblingsRejected", len(rejected)),
	)

	srv.publishDecision(ctx, service.EventOfferAccepted, request, accepted, buyerID)
	for _, sibling := range rejected {
		srv.publishDecision(ctx, service.EventOfferRejected, request, sibling, buyerID)
	}

	return accepted.ForBuyer(), nil
}

func (srv *offerService) Reject(ctx context.Context, offerID, requestID uuid.UUID, buyerID string) (*entity.Offer, error) {
	request, offer, err := buyerOffer(ctx, srv.requestRepo, srv.offerRepo, offerID, requestID, buyerID)
	if err != nil {
		return nil, err
	}

	if !offer.Status.CanTransitionTo(entity.OfferRejected) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "offer is %s", offer.Status)
	}

	if err := srv.offerRepo.UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferRejected); err != nil {
		return nil, statusUpdateError(err, "failed to reject offer")
	}

	offer.Status = entity.OfferRejected
	offer.UpdatedAt = time.Now()

	srv.metrics.OfferStatusChanged(string(entity.OfferRejected))
	srv.log(ctx).Info("Offer rejected", slog.String("offerID", offerID.String()))
	srv.publishDecision(ctx, service.EventOfferRejected, request, offer, buyerID)

	return offer.ForBuyer(), nil
}

func (srv *offerService) Withdraw(ctx context.Context, offerID uuid.UUID, userID string) (*entity.Offer, error) {
	thread, err := srv.dealerThread(ctx, offerID, userID)
	if err != nil {
		return nil, err
	}

	offer := thread.Offer
	if !offer.Status.CanTransitionTo(entity.OfferWithdrawn) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "offer is %s", offer.Status)
	}

	if err := srv.offerRepo.UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferWithdrawn); err != nil {
		return nil, statusUpdateError(err, "failed to withdraw offer")
	}

	offer.Status = entity.OfferWithdrawn
	offer.UpdatedAt = time.Now()

	srv.metrics.OfferStatusChanged(string(entity.OfferWithdrawn))
	srv.log(ctx).Info("Offer withdrawn", slog.String("offerID", offerID.String()))

	publishMarketEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketEvent{
		Type:           service.EventOfferWithdrawn,
		BuyerRequestID: offer.RequestID.String(),
		OfferID:        offer.ID.String(),
		DealershipID:   offer.DealershipID.String(),
		ActorID:        userID,
		Title:          "Et tilbud ble trukket",
		Preview:        fmt.Sprintf("%s %s", offer.CarMake, offer.CarModel),
		RecipientIDs:   []string{thread.Request.BuyerID},
		InvalidationPaths: []string{
			fmt.Sprintf("/buyer/requests/%s", offer.RequestID),
		},
	})

	return offer, nil
}

func (srv *offerService) publishDecision(
	ctx context.Context,
	eventType service.MarketEventType,
	request *entity.BuyerRequest,
	offer *entity.Offer,
	buyerID string,
) {
	title := "Tilbudet ditt ble avslått"
	if eventType == service.EventOfferAccepted {
		title = "Tilbudet ditt ble akseptert"
	}

	publishMarketEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketEvent{
		Type:           eventType,
		BuyerRequestID: request.ID.String(),
		OfferID:        offer.ID.String(),
		DealershipID:   offer.DealershipID.String(),
		ActorID:        buyerID,
		Title:          title,
		Preview:        request.Title,
		RecipientIDs:   []string{offer.DealerUserID},
		InvalidationPaths: []string{
			fmt.Sprintf("/dealer/offers/%s", offer.ID),
		},
	})
}

// statusUpdateError turns a lost conditional update into a 409.
func statusUpdateError(err error, message string) error {
	if errors.Is(err, repository.ErrStatusConflict) {
		return errors.Wrap(domainerrors.ErrInvalidTransition, message)
	}

	return errors.Wrap(err, message)
}
