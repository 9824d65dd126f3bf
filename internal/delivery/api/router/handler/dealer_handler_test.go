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

type dealerHandlerFixture struct {
	dealershipUC *mockUC.MockDealershipUsecase
	requestUC    *mockUC.MockRequestUsecase
	offerUC      *mockUC.MockOfferUsecase
	h            *DealerHandler
}

func createTestDealerHandler(t *testing.T) *dealerHandlerFixture {
	t.Helper()

	fx := &dealerHandlerFixture{
		dealershipUC: mockUC.NewMockDealershipUsecase(t),
		requestUC:    mockUC.NewMockRequestUsecase(t),
		offerUC:      mockUC.NewMockOfferUsecase(t),
	}
	fx.h = NewDealerHandler(DealerHandlerParams{
		DealershipUC: fx.dealershipUC,
		RequestUC:    fx.requestUC,
		OfferUC:      fx.offerUC,
		Logger:       testLogger(),
	})

	return fx
}

func TestDealerHandler_Onboard(t *testing.T) {
	fx := createTestDealerHandler(t)
	dealershipID := uuid.New()

	body, contentType := formBody(url.Values{
		"name":       {" Bilhuset Oslo "},
		"orgNumber":  {"912345678"},
		"city":       {"Oslo"},
		"postalCode": {"0150"},
		"latitude":   {"59.91"},
		"longitude":  {"10.75"},
	})

	fx.dealershipUC.EXPECT().
		Register(mock.Anything, "owner-1", mock.MatchedBy(func(in *usecase.RegisterDealershipInput) bool {
			return in.Name == "Bilhuset Oslo" &&
				in.OrgNumber == "912345678" &&
				in.City == "Oslo" &&
				in.PostalCode == "0150" &&
				in.Address == "" &&
				in.Latitude != nil && *in.Latitude == 59.91 &&
				in.Longitude != nil && *in.Longitude == 10.75
		})).
		Return(&entity.Dealership{ID: dealershipID, OwnerID: "owner-1", Name: "Bilhuset Oslo", Country: "NO"}, nil)

	rec := serve(t, testCall{
		method:      http.MethodPost,
		target:      "/api/v1/dealer/onboarding",
		body:        body,
		contentType: contentType,
		userID:      "owner-1",
	}, fx.h.Onboard)

	require.Equal(t, http.StatusCreated, rec.Code)
	dealership := decodeData[entity.Dealership](t, decodeEnvelope(t, rec))
	assert.Equal(t, dealershipID, dealership.ID)
	assert.Equal(t, "NO", dealership.Country)
}

func TestDealerHandler_CreateOffer(t *testing.T) {
	validForm := func() url.Values {
		return url.Values{
			"carMake":             {"Volvo"},
			"carModel":            {"XC90"},
			"carYear":             {"2021"},
			"carKm":               {"42000"},
			"priceTotal":          {"629000"},
			"carCondition":        {"demo"},
			"financingPossible":   {"on"},
			"shortMessageToBuyer": {"  Klar for levering  "},
		}
	}

	t.Run("SingleDealership", func(t *testing.T) {
		fx := createTestDealerHandler(t)
		requestID := uuid.New()
		dealershipID := uuid.New()
		offerID := uuid.New()

		body, contentType := formBody(validForm())

		fx.dealershipUC.EXPECT().
			ResolveForDealer(mock.Anything, "dealer-1", (*uuid.UUID)(nil)).
			Return(&entity.Dealership{ID: dealershipID}, nil)
		fx.offerUC.EXPECT().
			Create(mock.Anything, "dealer-1", dealershipID, requestID, mock.MatchedBy(func(in *usecase.CreateOfferInput) bool {
				return in.CarMake == "Volvo" &&
					in.CarModel == "XC90" &&
					in.CarYear == 2021 &&
					in.CarKm == 42000 &&
					in.PriceTotal == 629000 &&
					in.CarCondition != nil && *in.CarCondition == entity.ConditionDemo &&
					in.FinancingPossible &&
					in.ShortMessageToBuyer != nil && *in.ShortMessageToBuyer == "Klar for levering" &&
					len(in.ImageURLs) == 0
			})).
			Return(&entity.Offer{ID: offerID, RequestID: requestID, DealershipID: dealershipID, Status: entity.OfferSubmitted}, nil)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/dealer/requests/" + requestID.String() + "/offers",
			body:        body,
			contentType: contentType,
			userID:      "dealer-1",
			params:      map[string]string{"id": requestID.String()},
		}, fx.h.CreateOffer)

		require.Equal(t, http.StatusCreated, rec.Code)
		offer := decodeData[entity.Offer](t, decodeEnvelope(t, rec))
		assert.Equal(t, offerID, offer.ID)
		assert.Equal(t, entity.OfferSubmitted, offer.Status)
	})

	t.Run("ExplicitDealership", func(t *testing.T) {
		fx := createTestDealerHandler(t)
		requestID := uuid.New()
		dealershipID := uuid.New()

		values := validForm()
		values.Set("dealershipId", dealershipID.String())
		body, contentType := formBody(values)

		fx.dealershipUC.EXPECT().
			ResolveForDealer(mock.Anything, "dealer-1", &dealershipID).
			Return(&entity.Dealership{ID: dealershipID}, nil)
		fx.offerUC.EXPECT().
			Create(mock.Anything, "dealer-1", dealershipID, requestID, mock.Anything).
			Return(&entity.Offer{ID: uuid.New()}, nil)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/dealer/requests/" + requestID.String() + "/offers",
			body:        body,
			contentType: contentType,
			userID:      "dealer-1",
			params:      map[string]string{"id": requestID.String()},
		}, fx.h.CreateOffer)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("MalformedDealershipID", func(t *testing.T) {
		fx := createTestDealerHandler(t)
		requestID := uuid.New()

		values := validForm()
		values.Set("dealershipId", "første")
		body, contentType := formBody(values)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/dealer/requests/" + requestID.String() + "/offers",
			body:        body,
			contentType: contentType,
			userID:      "dealer-1",
			params:      map[string]string{"id": requestID.String()},
		}, fx.h.CreateOffer)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "dealershipId")
	})

	t.Run("NoDealership", func(t *testing.T) {
		fx := createTestDealerHandler(t)
		requestID := uuid.New()

		body, contentType := formBody(validForm())

		fx.dealershipUC.EXPECT().
			ResolveForDealer(mock.Anything, "dealer-1", (*uuid.UUID)(nil)).
			Return(nil, errors.Wrap(domainerrors.ErrDealershipRequired, "no dealership"))

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/dealer/requests/" + requestID.String() + "/offers",
			body:        body,
			contentType: contentType,
			userID:      "dealer-1",
			params:      map[string]string{"id": requestID.String()},
		}, fx.h.CreateOffer)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEALERSHIP_REQUIRED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("RequestNotOpen", func(t *testing.T) {
		fx := createTestDealerHandler(t)
		requestID := uuid.New()
		dealershipID := uuid.New()

		body, contentType := formBody(url.Values{})

		fx.dealershipUC.EXPECT().
			ResolveForDealer(mock.Anything, "dealer-1", (*uuid.UUID)(nil)).
			Return(&entity.Dealership{ID: dealershipID}, nil)
		fx.offerUC.EXPECT().
			Create(mock.Anything, "dealer-1", dealershipID, requestID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrRequestNotOpen, "request is accepted"))

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/dealer/requests/" + requestID.String() + "/offers",
			body:        body,
			contentType: contentType,
			userID:      "dealer-1",
			params:      map[string]string{"id": requestID.String()},
		}, fx.h.CreateOffer)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "REQUEST_NOT_OPEN", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestDealerHandler_RequestQRCode(t *testing.T) {
	fx := createTestDealerHandler(t)
	requestID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.requestUC.EXPECT().QRCode(mock.Anything, requestID).Return(png, nil)

	rec := serve(t, testCall{
		method: http.MethodGet,
		target: "/api/v1/dealer/requests/" + requestID.String() + "/qrcode",
		userID: "dealer-1",
		params: map[string]string{"id": requestID.String()},
	}, fx.h.RequestQRCode)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDealerHandler_ListOffers(t *testing.T) {
	fx := createTestDealerHandler(t)
	dealershipID := uuid.New()

	fx.dealershipUC.EXPECT().
		ResolveForDealer(mock.Anything, "dealer-1", &dealershipID).
		Return(&entity.Dealership{ID: dealershipID}, nil)
	fx.offerUC.EXPECT().
		ListForDealership(mock.Anything, dealershipID).
		Return([]*entity.OfferWithRequest{{
			Offer:   &entity.Offer{ID: uuid.New()},
			Request: &entity.BuyerRequest{Title: "Familie-SUV"},
		}}, nil)

	rec := serve(t, testCall{
		method: http.MethodGet,
		target: "/api/v1/dealer/offers?dealershipId=" + dealershipID.String(),
		userID: "dealer-1",
	}, fx.h.ListOffers)

	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeData[[]entity.OfferWithRequest](t, decodeEnvelope(t, rec))
	require.Len(t, rows, 1)
	assert.Equal(t, "Familie-SUV", rows[0].Request.Title)
}

func TestDealerHandler_GetOffer_NotDealerSide(t *testing.T) {
	fx := createTestDealerHandler(t)
	offerID := uuid.New()

	fx.offerUC.EXPECT().
		GetForDealer(mock.Anything, offerID, "buyer-1").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "not on the dealer side"))

	rec := serve(t, testCall{
		method: http.MethodGet,
		target: "/api/v1/dealer/offers/" + offerID.String(),
		userID: "buyer-1",
		params: map[string]string{"id": offerID.String()},
	}, fx.h.GetOffer)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestDealerHandler_WithdrawOffer(t *testing.T) {
	fx := createTestDealerHandler(t)
	offerID := uuid.New()

	fx.offerUC.EXPECT().
		Withdraw(mock.Anything, offerID, "dealer-1").
		Return(&entity.Offer{ID: offerID, Status: entity.OfferWithdrawn}, nil)

	rec := serve(t, testCall{
		method: http.MethodPost,
		target: "/api/v1/dealer/offers/" + offerID.String() + "/withdraw",
		userID: "dealer-1",
		params: map[string]string{"id": offerID.String()},
	}, fx.h.WithdrawOffer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OfferWithdrawn, decodeData[entity.Offer](t, decodeEnvelope(t, rec)).Status)
}
