package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	mockRepo "carmarket/internal/mocks/repository"
	mockSvc "carmarket/internal/mocks/service"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	requestRepo    *mockRepo.MockBuyerRequestRepository
	offerRepo      *mockRepo.MockOfferRepository
	dealershipRepo *mockRepo.MockDealershipRepository
	publisher      *mockSvc.MockEventPublisher
	metrics        *mockSvc.MockMarketMetrics
	srv            usecase.OfferUsecase
}

func createTestOfferService(t *testing.T) *offerServiceFixture {
	t.Helper()

	fx := &offerServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		requestRepo:    mockRepo.NewMockBuyerRequestRepository(t),
		offerRepo:      mockRepo.NewMockOfferRepository(t),
		dealershipRepo: mockRepo.NewMockDealershipRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		metrics:        mockSvc.NewMockMarketMetrics(t),
	}
	fx.srv = NewOfferService(OfferServiceParams{
		TxManager:      fx.txManager,
		RequestRepo:    fx.requestRepo,
		OfferRepo:      fx.offerRepo,
		DealershipRepo: fx.dealershipRepo,
		Publisher:      fx.publisher,
		Metrics:        fx.metrics,
		Settings:       MarketplaceSettings{Currency: "NOK", Country: "NO"},
		Logger:         testLogger(),
	})

	return fx
}

// runCreateTx runs the submit transaction against the fixture's own repositories.
func (fx *offerServiceFixture) runCreateTx(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewBuyerRequestRepository().Return(fx.requestRepo).Maybe()
	factory.EXPECT().NewDealershipRepository().Return(fx.dealershipRepo).Maybe()
	factory.EXPECT().NewOfferRepository().Return(fx.offerRepo).Maybe()
	runTx(fx.txManager, factory)
}

func validOfferInput() *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		CarMake:    "Volvo",
		CarModel:   "XC60",
		CarYear:    2021,
		CarKm:      42000,
		PriceTotal: 449000,
	}
}

func TestOfferService_Create_RequestNotOpenWinsOverInput(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()

	for _, status := range []entity.RequestStatus{
		entity.RequestUnderReview, entity.RequestAccepted, entity.RequestExpired, entity.RequestCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			fx := createTestOfferService(t)
			fx.runCreateTx(t)
			fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(&entity.BuyerRequest{ID: requestID, Status: status}, nil)

			// Invalid input must not change the answer.
			_, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, &usecase.CreateOfferInput{})
			assert.ErrorIs(t, err, domainerrors.ErrRequestNotOpen)
		})
	}

	t.Run("missing request", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.runCreateTx(t)
		fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

		_, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, validOfferInput())
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotOpen)
	})
}

func TestOfferService_Create_NotAMember(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()

	fx.runCreateTx(t)
	fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(&entity.BuyerRequest{ID: requestID, Status: entity.RequestOpen}, nil)
	fx.dealershipRepo.EXPECT().FindByID(ctx, dealershipID).Return(&entity.Dealership{ID: dealershipID, OwnerID: "owner-1"}, nil)
	fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "stranger").Return(false, nil)

	_, err := fx.srv.Create(ctx, "stranger", dealershipID, requestID, validOfferInput())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_Create_Validation(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()

	fx.runCreateTx(t)
	fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(&entity.BuyerRequest{ID: requestID, Status: entity.RequestOpen}, nil)
	fx.dealershipRepo.EXPECT().FindByID(ctx, dealershipID).Return(&entity.Dealership{ID: dealershipID}, nil)
	fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(true, nil)

	input := validOfferInput()
	input.CarYear = 0
	input.PriceTotal = -5
	input.CarCondition = ptr(entity.CarCondition("mint"))

	_, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, input)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "carYear")
	assert.Contains(t, validationErr.Fields(), "priceTotal")
	assert.Contains(t, validationErr.Fields(), "carCondition")
}

func TestOfferService_Create_Success(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()
	offerID := uuid.New()

	request := &entity.BuyerRequest{
		ID:        requestID,
		BuyerID:   "buyer-1",
		Status:    entity.RequestOpen,
		Title:     "Familiebil",
		Condition: ptr(entity.ConditionNew),
		FuelType:  ptr(entity.FuelEV),
		Latitude:  ptr(60.3913),
		Longitude: ptr(5.3221),
	}
	dealership := &entity.Dealership{
		ID:         dealershipID,
		OwnerID:    "owner-1",
		City:       "Oslo",
		PostalCode: "0150",
		Latitude:   ptr(59.9139),
		Longitude:  ptr(10.7522),
	}

	fx.runCreateTx(t)
	fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(request, nil)
	fx.dealershipRepo.EXPECT().FindByID(ctx, dealershipID).Return(dealership, nil)
	fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(true, nil)
	fx.offerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(_ context.Context, o *entity.Offer) { o.ID = offerID }).
		Return(nil)
	fx.metrics.EXPECT().OfferSubmitted().Return()
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventOfferSubmitted &&
				e.OfferID == offerID.String() &&
				assert.ObjectsAreEqual([]string{"buyer-1"}, e.RecipientIDs) &&
				e.EventID != ""
		})).
		Return(nil)

	offer, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, validOfferInput())
	require.NoError(t, err)

	assert.Equal(t, entity.OfferSubmitted, offer.Status)
	assert.Equal(t, entity.ConditionNew, offer.CarCondition)
	require.NotNil(t, offer.FuelType)
	assert.Equal(t, entity.FuelEV, *offer.FuelType)
	assert.Equal(t, "NOK", offer.Currency)
	require.NotNil(t, offer.LocationCity)
	assert.Equal(t, "Oslo", *offer.LocationCity)
	require.NotNil(t, offer.DistanceKm)
	assert.InDelta(t, 305, *offer.DistanceKm, 10)
	assert.Equal(t, []string{}, offer.ImageURLs)
}

func TestOfferService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()

	fx.runCreateTx(t)
	fx.requestRepo.EXPECT().FindByIDForShare(ctx, requestID).Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
	fx.dealershipRepo.EXPECT().FindByID(ctx, dealershipID).Return(&entity.Dealership{ID: dealershipID}, nil)
	fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(true, nil)
	fx.offerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().OfferSubmitted().Return()
	fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	offer, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, validOfferInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ConditionUsed, offer.CarCondition)
}

func TestOfferService_Create_SerialisesWithRequestStatusChanges(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	dealershipID := uuid.New()

	// The fixture's non-transactional repositories carry no expectations, so
	// any read or insert outside the transaction fails the test.
	setup := func(t *testing.T) (*offerServiceFixture, *mockRepo.MockBuyerRequestRepository, *mockRepo.MockDealershipRepository, *mockRepo.MockOfferRepository) {
		fx := createTestOfferService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txRequests := mockRepo.NewMockBuyerRequestRepository(t)
		txDealerships := mockRepo.NewMockDealershipRepository(t)
		txOffers := mockRepo.NewMockOfferRepository(t)

		runTx(fx.txManager, factory)
		factory.EXPECT().NewBuyerRequestRepository().Return(txRequests)
		factory.EXPECT().NewDealershipRepository().Return(txDealerships)
		factory.EXPECT().NewOfferRepository().Return(txOffers).Maybe()

		return fx, txRequests, txDealerships, txOffers
	}

	t.Run("accept committed before the lock was granted", func(t *testing.T) {
		fx, txRequests, _, _ := setup(t)
		txRequests.EXPECT().FindByIDForShare(ctx, requestID).
			Return(&entity.BuyerRequest{ID: requestID, Status: entity.RequestAccepted}, nil)

		_, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, validOfferInput())
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotOpen)
	})

	t.Run("insert runs under the lock", func(t *testing.T) {
		fx, txRequests, txDealerships, txOffers := setup(t)
		txRequests.EXPECT().FindByIDForShare(ctx, requestID).
			Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
		txDealerships.EXPECT().FindByID(ctx, dealershipID).Return(&entity.Dealership{ID: dealershipID}, nil)
		txDealerships.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(true, nil)
		txOffers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
		fx.metrics.EXPECT().OfferSubmitted().Return()
		fx.publisher.EXPECT().PublishMarketEvent(ctx, mock.Anything).Return(nil)

		offer, err := fx.srv.Create(ctx, "dealer-1", dealershipID, requestID, validOfferInput())
		require.NoError(t, err)
		assert.Equal(t, entity.OfferSubmitted, offer.Status)
	})
}

func TestOfferService_Accept_Success(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	offerID := uuid.New()
	siblingID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRequests := mockRepo.NewMockBuyerRequestRepository(t)
	txOffers := mockRepo.NewMockOfferRepository(t)

	runTx(fx.txManager, factory)
	factory.EXPECT().NewBuyerRequestRepository().Return(txRequests)
	factory.EXPECT().NewOfferRepository().Return(txOffers)

	txRequests.EXPECT().FindByIDAndBuyer(ctx, requestID, "buyer-1").
		Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
	txOffers.EXPECT().FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, RequestID: requestID, DealerUserID: "dealer-1", Status: entity.OfferSubmitted}, nil)
	txOffers.EXPECT().UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferAccepted).Return(nil)
	txRequests.EXPECT().
		MarkAccepted(ctx, requestID, offerID, []entity.RequestStatus{entity.RequestOpen, entity.RequestUnderReview}).
		Return(nil)
	txOffers.EXPECT().RejectSiblings(ctx, requestID, offerID).
		Return([]*entity.Offer{{ID: siblingID, RequestID: requestID, DealerUserID: "dealer-2", Status: entity.OfferRejected}}, nil)

	fx.metrics.EXPECT().OfferStatusChanged("accepted").Return()
	fx.metrics.EXPECT().OfferStatusChanged("rejected").Return()
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventOfferAccepted && e.RecipientIDs[0] == "dealer-1"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventOfferRejected && e.RecipientIDs[0] == "dealer-2"
		})).
		Return(nil)

	offer, err := fx.srv.Accept(ctx, offerID, requestID, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OfferAccepted, offer.Status)
}

func TestOfferService_Accept_LostRace(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	offerID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRequests := mockRepo.NewMockBuyerRequestRepository(t)
	txOffers := mockRepo.NewMockOfferRepository(t)

	runTx(fx.txManager, factory)
	factory.EXPECT().NewBuyerRequestRepository().Return(txRequests)
	factory.EXPECT().NewOfferRepository().Return(txOffers)

	txRequests.EXPECT().FindByIDAndBuyer(ctx, requestID, "buyer-1").
		Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
	txOffers.EXPECT().FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, RequestID: requestID, Status: entity.OfferSubmitted}, nil)
	txOffers.EXPECT().UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferAccepted).Return(nil)
	txRequests.EXPECT().MarkAccepted(ctx, requestID, offerID, mock.Anything).Return(repository.ErrStatusConflict)

	_, err := fx.srv.Accept(ctx, offerID, requestID, "buyer-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOfferService_Accept_OfferFromAnotherRequest(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	offerID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRequests := mockRepo.NewMockBuyerRequestRepository(t)
	txOffers := mockRepo.NewMockOfferRepository(t)

	runTx(fx.txManager, factory)
	factory.EXPECT().NewBuyerRequestRepository().Return(txRequests)
	factory.EXPECT().NewOfferRepository().Return(txOffers)

	txRequests.EXPECT().FindByIDAndBuyer(ctx, requestID, "buyer-1").
		Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
	txOffers.EXPECT().FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, RequestID: uuid.New(), Status: entity.OfferSubmitted}, nil)

	_, err := fx.srv.Accept(ctx, offerID, requestID, "buyer-1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_Reject_TerminalOffer(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	requestID := uuid.New()
	offerID := uuid.New()

	fx.requestRepo.EXPECT().FindByIDAndBuyer(ctx, requestID, "buyer-1").
		Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen}, nil)
	fx.offerRepo.EXPECT().FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, RequestID: requestID, Status: entity.OfferWithdrawn}, nil)

	_, err := fx.srv.Reject(ctx, offerID, requestID, "buyer-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOfferService_Withdraw(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	requestID := uuid.New()
	dealershipID := uuid.New()

	thread := func() *entity.OfferThread {
		return &entity.OfferThread{
			Offer: &entity.Offer{
				ID: offerID, RequestID: requestID, DealershipID: dealershipID,
				DealerUserID: "dealer-1", Status: entity.OfferSubmitted,
			},
			Request:    &entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Status: entity.RequestOpen},
			Dealership: &entity.Dealership{ID: dealershipID, OwnerID: "owner-1"},
		}
	}

	t.Run("by submitting dealer", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.offerRepo.EXPECT().FindThread(ctx, offerID).Return(thread(), nil)
		fx.offerRepo.EXPECT().UpdateStatus(ctx, offerID, entity.OfferSubmitted, entity.OfferWithdrawn).Return(nil)
		fx.metrics.EXPECT().OfferStatusChanged("withdrawn").Return()
		fx.publisher.EXPECT().
			PublishMarketEvent(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
				return e.Type == service.EventOfferWithdrawn && e.RecipientIDs[0] == "buyer-1"
			})).
			Return(nil)

		offer, err := fx.srv.Withdraw(ctx, offerID, "dealer-1")
		require.NoError(t, err)
		assert.Equal(t, entity.OfferWithdrawn, offer.Status)
	})

	t.Run("by stranger", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.offerRepo.EXPECT().FindThread(ctx, offerID).Return(thread(), nil)
		fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "stranger").Return(false, nil)

		_, err := fx.srv.Withdraw(ctx, offerID, "stranger")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
