package handler

import (
	"net/http"
	"net/url"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/errors"
	mockUC "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type buyerRequestHandlerFixture struct {
	requestUC *mockUC.MockRequestUsecase
	offerUC   *mockUC.MockOfferUsecase
	h         *BuyerRequestHandler
}

func createTestBuyerRequestHandler(t *testing.T) *buyerRequestHandlerFixture {
	t.Helper()

	fx := &buyerRequestHandlerFixture{
		requestUC: mockUC.NewMockRequestUsecase(t),
		offerUC:   mockUC.NewMockOfferUsecase(t),
	}
	fx.h = NewBuyerRequestHandler(BuyerRequestHandlerParams{
		RequestUC: fx.requestUC,
		OfferUC:   fx.offerUC,
		Logger:    testLogger(),
	})

	return fx
}

func TestBuyerRequestHandler_CreateRequest(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)
	requestID := uuid.New()

	body, contentType := formBody(url.Values{
		"title":           {"  Familie-SUV  "},
		"make":            {"Volvo"},
		"yearFrom":        {"2019"},
		"yearTo":          {"nyeste"},
		"condition":       {"used"},
		"fuelType":        {"plasma"},
		"budgetMax":       {"650000"},
		"wantsTradeIn":    {"on"},
		"financingNeeded": {"yes"},
		"imageUrls":       {`["https://cdn/a.jpg", 7, "https://cdn/b.jpg"]`},
	})

	fx.requestUC.EXPECT().
		Create(mock.Anything, "buyer-1", mock.MatchedBy(func(in *usecase.CreateBuyerRequestInput) bool {
			return in.Title == "Familie-SUV" &&
				in.Make == "Volvo" &&
				in.Model == "" &&
				in.YearFrom != nil && *in.YearFrom == 2019 &&
				in.YearTo == nil &&
				in.Condition != nil && *in.Condition == entity.ConditionUsed &&
				in.FuelType == nil &&
				in.BudgetMax != nil && *in.BudgetMax == 650000 &&
				in.WantsTradeIn &&
				!in.FinancingNeeded &&
				assert.ObjectsAreEqual([]string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, in.ImageURLs)
		})).
		Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1", Title: "Familie-SUV", Status: entity.RequestOpen}, nil)

	rec := serve(t, testCall{
		method:      http.MethodPost,
		target:      "/api/v1/buyer/requests",
		body:        body,
		contentType: contentType,
		userID:      "buyer-1",
	}, fx.h.CreateRequest)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	created := decodeData[entity.BuyerRequest](t, env)
	assert.Equal(t, requestID, created.ID)
	assert.Equal(t, entity.RequestOpen, created.Status)
}

func TestBuyerRequestHandler_CreateRequest_ValidationError(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)

	body, contentType := formBody(url.Values{"title": {"ab"}})

	fx.requestUC.EXPECT().
		Create(mock.Anything, "buyer-1", mock.Anything).
		Return(nil, domainerrors.NewFieldError("title", "Må være minst 3 tegn"))

	rec := serve(t, testCall{
		method:      http.MethodPost,
		target:      "/api/v1/buyer/requests",
		body:        body,
		contentType: contentType,
		userID:      "buyer-1",
	}, fx.h.CreateRequest)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []string{"Må være minst 3 tegn"}, fieldDetails(t, env)["title"])
}

func TestBuyerRequestHandler_Unauthenticated(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)

	rec := serve(t, testCall{method: http.MethodGet, target: "/api/v1/buyer/requests"}, fx.h.ListRequests)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}

func TestBuyerRequestHandler_GetRequest(t *testing.T) {
	t.Run("MalformedIDIsNotFound", func(t *testing.T) {
		fx := createTestBuyerRequestHandler(t)

		rec := serve(t, testCall{
			method: http.MethodGet,
			target: "/api/v1/buyer/requests/nope",
			userID: "buyer-1",
			params: map[string]string{"id": "nope"},
		}, fx.h.GetRequest)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("ForeignRequestLooksMissing", func(t *testing.T) {
		fx := createTestBuyerRequestHandler(t)
		requestID := uuid.New()

		fx.requestUC.EXPECT().
			GetOwned(mock.Anything, requestID, "buyer-2").
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "request not found"))

		rec := serve(t, testCall{
			method: http.MethodGet,
			target: "/api/v1/buyer/requests/" + requestID.String(),
			userID: "buyer-2",
			params: map[string]string{"id": requestID.String()},
		}, fx.h.GetRequest)

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestBuyerRequestHandler_CancelRequest(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)
	requestID := uuid.New()

	fx.requestUC.EXPECT().
		Cancel(mock.Anything, requestID, "buyer-1").
		Return(&entity.BuyerRequest{ID: requestID, Status: entity.RequestCancelled}, nil)

	rec := serve(t, testCall{
		method: http.MethodPost,
		target: "/api/v1/buyer/requests/" + requestID.String() + "/cancel",
		userID: "buyer-1",
		params: map[string]string{"id": requestID.String()},
	}, fx.h.CancelRequest)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RequestCancelled, decodeData[entity.BuyerRequest](t, decodeEnvelope(t, rec)).Status)
}

func TestBuyerRequestHandler_ReviewRequest_InvalidTransition(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)
	requestID := uuid.New()

	fx.requestUC.EXPECT().
		MarkUnderReview(mock.Anything, requestID, "buyer-1").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "request is not open"))

	rec := serve(t, testCall{
		method: http.MethodPost,
		target: "/api/v1/buyer/requests/" + requestID.String() + "/review",
		userID: "buyer-1",
		params: map[string]string{"id": requestID.String()},
	}, fx.h.ReviewRequest)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeEnvelope(t, rec).Error.Code)
}

func TestBuyerRequestHandler_ListOffers(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		fx := createTestBuyerRequestHandler(t)
		requestID := uuid.New()
		offerID := uuid.New()

		fx.requestUC.EXPECT().
			GetOwned(mock.Anything, requestID, "buyer-1").
			Return(&entity.BuyerRequest{ID: requestID, BuyerID: "buyer-1"}, nil)
		fx.offerUC.EXPECT().
			ListForRequest(mock.Anything, requestID, "buyer-1").
			Return([]*entity.OfferWithDealership{{
				Offer:      &entity.Offer{ID: offerID, RequestID: requestID},
				Dealership: &entity.Dealership{Name: "Bilhuset Oslo"},
			}}, nil)

		rec := serve(t, testCall{
			method: http.MethodGet,
			target: "/api/v1/buyer/requests/" + requestID.String() + "/offers",
			userID: "buyer-1",
			params: map[string]string{"id": requestID.String()},
		}, fx.h.ListOffers)

		require.Equal(t, http.StatusOK, rec.Code)
		rows := decodeData[[]entity.OfferWithDealership](t, decodeEnvelope(t, rec))
		require.Len(t, rows, 1)
		assert.Equal(t, offerID, rows[0].Offer.ID)
		assert.Equal(t, "Bilhuset Oslo", rows[0].Dealership.Name)
	})

	t.Run("StrangerNeverReachesOffers", func(t *testing.T) {
		fx := createTestBuyerRequestHandler(t)
		requestID := uuid.New()

		fx.requestUC.EXPECT().
			GetOwned(mock.Anything, requestID, "buyer-2").
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "request not found"))

		rec := serve(t, testCall{
			method: http.MethodGet,
			target: "/api/v1/buyer/requests/" + requestID.String() + "/offers",
			userID: "buyer-2",
			params: map[string]string{"id": requestID.String()},
		}, fx.h.ListOffers)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBuyerRequestHandler_AcceptOffer(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)
	requestID := uuid.New()
	offerID := uuid.New()

	fx.offerUC.EXPECT().
		Accept(mock.Anything, offerID, requestID, "buyer-1").
		Return(&entity.Offer{ID: offerID, RequestID: requestID, Status: entity.OfferAccepted}, nil)

	rec := serve(t, testCall{
		method: http.MethodPost,
		target: "/api/v1/buyer/requests/" + requestID.String() + "/offers/" + offerID.String() + "/accept",
		userID: "buyer-1",
		params: map[string]string{"id": requestID.String(), "offerId": offerID.String()},
	}, fx.h.AcceptOffer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OfferAccepted, decodeData[entity.Offer](t, decodeEnvelope(t, rec)).Status)
}

func TestBuyerRequestHandler_RejectOffer_Terminal(t *testing.T) {
	fx := createTestBuyerRequestHandler(t)
	requestID := uuid.New()
	offerID := uuid.New()

	fx.offerUC.EXPECT().
		Reject(mock.Anything, offerID, requestID, "buyer-1").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "offer is not submitted"))

	rec := serve(t, testCall{
		method: http.MethodPost,
		target: "/api/v1/buyer/requests/" + requestID.String() + "/offers/" + offerID.String() + "/reject",
		userID: "buyer-1",
		params: map[string]string{"id": requestID.String(), "offerId": offerID.String()},
	}, fx.h.RejectOffer)

	require.Equal(t, http.StatusConflict, rec.Code)
}
