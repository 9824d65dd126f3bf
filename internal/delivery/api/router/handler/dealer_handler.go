package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/api/response"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dealershipIDField = "dealershipId"

// DealerHandlerParams holds dependencies for DealerHandler, injected by Fx.
type DealerHandlerParams struct {
	fx.In

	DealershipUC usecase.DealershipUsecase
	RequestUC    usecase.RequestUsecase
	OfferUC      usecase.OfferUsecase
	Logger       *slog.Logger
}

// DealerHandler serves onboarding, the open request feed and the dealer's offers.
type DealerHandler struct {
	dealershipUC usecase.DealershipUsecase
	requestUC    usecase.RequestUsecase
	offerUC      usecase.OfferUsecase
	logger       *slog.Logger
}

// NewDealerHandler is the constructor for DealerHandler
func NewDealerHandler(params DealerHandlerParams) *DealerHandler {
	return &DealerHandler{
		dealershipUC: params.DealershipUC,
		requestUC:    params.RequestUC,
		offerUC:      params.OfferUC,
		logger:       params.Logger,
	}
}

// Onboard registers a dealership owned by the caller
func (h *DealerHandler) Onboard(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	f, err := readForm(c)
	if err != nil {
		return err
	}

	input := &usecase.RegisterDealershipInput{
		Name:       f.text("name"),
		OrgNumber:  f.text("orgNumber"),
		Address:    f.text("address"),
		City:       f.text("city"),
		PostalCode: f.text("postalCode"),
		Makes:      f.text("makes"),
		Latitude:   f.optionalFloat("latitude"),
		Longitude:  f.optionalFloat("longitude"),
	}

	dealership, err := h.dealershipUC.Register(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, dealership)
}

// ListDealerships lists the dealerships the caller owns
func (h *DealerHandler) ListDealerships(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dealerships, err := h.dealershipUC.ListForOwner(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, dealerships)
}

// ListOpenRequests is the discovery feed
func (h *DealerHandler) ListOpenRequests(c echo.Context) error {
	requests, err := h.requestUC.ListOpen(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, requests)
}

// GetOpenRequest returns an open request's details
func (h *DealerHandler) GetOpenRequest(c echo.Context) error {
	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.GetOpen(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, request)
}

// RequestQRCode renders the request's dealer link as a PNG
func (h *DealerHandler) RequestQRCode(c echo.Context) error {
	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.requestUC.QRCode(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateOffer submits an offer on an open request for the caller's dealership
func (h *DealerHandler) CreateOffer(c echo.Context) error {
	dealerUserID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	f, err := readForm(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	dealershipID, err := dealershipSelection(f.text(dealershipIDField))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dealership, err := h.dealershipUC.ResolveForDealer(ctx, dealerUserID, dealershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.Create(ctx, dealerUserID, dealership.ID, requestID, offerInput(f))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, offer)
}

func offerInput(f *form) *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		CarRegNr:   f.optionalText("carRegNr"),
		VIN:        f.optionalText("vin"),
		CarMake:    f.text("carMake"),
		CarModel:   f.text("carModel"),
		CarVariant: f.optionalText("carVariant"),
		CarYear:    f.requiredInt("carYear"),
		CarKm:      f.requiredInt("carKm"),

		CarCondition: strictEnum[entity.CarCondition](f, "carCondition"),
		FuelType:     strictEnum[entity.FuelType](f, "fuelType"),
		Gearbox:      strictEnum[entity.Gearbox](f, "gearbox"),
		BodyType:     strictEnum[entity.BodyType](f, "bodyType"),

		ColorExterior: f.optionalText("colorExterior"),
		ColorInterior: f.optionalText("colorInterior"),

		PriceTotal: f.requiredInt("priceTotal"),
		PriceOld:   f.optionalInt("priceOld"),

		DeliveryTimeEstimate: f.optionalText("deliveryTimeEstimate"),
		WarrantySummary:      f.optionalText("warrantySummary"),
		FinancingPossible:    f.checkbox("financingPossible"),
		FinancingExample:     f.optionalText("financingExample"),

		LocationCity:        f.optionalText("locationCity"),
		LocationPostalCode:  f.optionalText("locationPostalCode"),
		ShortMessageToBuyer: f.optionalText("shortMessageToBuyer"),
		InternalNotes:       f.optionalText("internalNotes"),
		ImageURLs:           f.imageURLs("imageUrls"),
	}
}

// dealershipSelection parses an optional explicit dealership id.
func dealershipSelection(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(dealershipIDField, "Ugyldig forhandler")
	}

	return &id, nil
}

// ListOffers is the outbox of the dealership the caller acts for
func (h *DealerHandler) ListOffers(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dealershipID, err := dealershipSelection(c.QueryParam(dealershipIDField))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	dealership, err := h.dealershipUC.ResolveForDealer(ctx, userID, dealershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.offerUC.ListForDealership(ctx, dealership.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offers)
}

// GetOffer returns an offer with its request when the caller is on the dealer side
func (h *DealerHandler) GetOffer(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	thread, err := h.offerUC.GetForDealer(c.Request().Context(), offerID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, thread)
}

// WithdrawOffer pulls back a submitted offer
func (h *DealerHandler) WithdrawOffer(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.Withdraw(c.Request().Context(), offerID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offer)
}
