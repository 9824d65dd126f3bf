package handler

import (
	"context"
	"log/slog"

	"carmarket/internal/delivery/api/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuyerRequestHandlerParams holds dependencies for BuyerRequestHandler, injected by Fx.
type BuyerRequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	OfferUC   usecase.OfferUsecase
	Logger    *slog.Logger
}

// BuyerRequestHandler serves the buyer side: requests and the offers received on them.
type BuyerRequestHandler struct {
	requestUC usecase.RequestUsecase
	offerUC   usecase.OfferUsecase
	logger    *slog.Logger
}

// NewBuyerRequestHandler is the constructor for BuyerRequestHandler
func NewBuyerRequestHandler(params BuyerRequestHandlerParams) *BuyerRequestHandler {
	return &BuyerRequestHandler{
		requestUC: params.RequestUC,
		offerUC:   params.OfferUC,
		logger:    params.Logger,
	}
}

// CreateRequest handles the new request form
func (h *BuyerRequestHandler) CreateRequest(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	f, err := readForm(c)
	if err != nil {
		return err
	}

	request, err := h.requestUC.Create(c.Request().Context(), buyerID, buyerRequestInput(f))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, request)
}

func buyerRequestInput(f *form) *usecase.CreateBuyerRequestInput {
	return &usecase.CreateBuyerRequestInput{
		Title:      f.text("title"),
		Make:       f.text("make"),
		Model:      f.text("model"),
		Generation: f.optionalText("generation"),
		YearFrom:   f.optionalInt("yearFrom"),
		YearTo:     f.optionalInt("yearTo"),
		MinKm:      f.optionalInt("minKm"),
		MaxKm:      f.optionalInt("maxKm"),

		Condition: coercedEnum(f, "condition", entity.CarCondition.IsValid),
		FuelType:  coercedEnum(f, "fuelType", entity.FuelType.IsValid),
		Gearbox:   coercedEnum(f, "gearbox", entity.Gearbox.IsValid),
		BodyType:  coercedEnum(f, "bodyType", entity.BodyType.IsValid),

		BudgetMin: f.optionalInt("budgetMin"),
		BudgetMax: f.optionalInt("budgetMax"),

		LocationCity:       f.optionalText("locationCity"),
		LocationPostalCode: f.optionalText("locationPostalCode"),
		SearchRadiusKm:     f.optionalInt("searchRadiusKm"),
		Latitude:           f.optionalFloat("latitude"),
		Longitude:          f.optionalFloat("longitude"),

		WantsTradeIn:    f.checkbox("wantsTradeIn"),
		FinancingNeeded: f.checkbox("financingNeeded"),
		Description:     f.optionalText("description"),
		SearchType:      f.optionalText("searchType"),
		ImageURLs:       f.imageURLs("imageUrls"),
	}
}

// ListRequests lists the caller's requests in any status
func (h *BuyerRequestHandler) ListRequests(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requests, err := h.requestUC.ListForBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, requests)
}

// GetRequest returns one of the caller's requests
func (h *BuyerRequestHandler) GetRequest(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.GetOwned(c.Request().Context(), requestID, buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, request)
}

// CancelRequest withdraws an open request
func (h *BuyerRequestHandler) CancelRequest(c echo.Context) error {
	return h.transition(c, h.requestUC.Cancel)
}

// ReviewRequest marks an open request as under review
func (h *BuyerRequestHandler) ReviewRequest(c echo.Context) error {
	return h.transition(c, h.requestUC.MarkUnderReview)
}

func (h *BuyerRequestHandler) transition(
	c echo.Context,
	apply func(ctx context.Context, requestID uuid.UUID, buyerID string) (*entity.BuyerRequest, error),
) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := apply(c.Request().Context(), requestID, buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, request)
}

// ListOffers is the inbox of one of the caller's requests
func (h *BuyerRequestHandler) ListOffers(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.requestUC.GetOwned(ctx, requestID, buyerID); err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.offerUC.ListForRequest(ctx, requestID, buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offers)
}

// AcceptOffer accepts an offer and closes its request
func (h *BuyerRequestHandler) AcceptOffer(c echo.Context) error {
	return h.decide(c, h.offerUC.Accept)
}

// RejectOffer declines a single offer
func (h *BuyerRequestHandler) RejectOffer(c echo.Context) error {
	return h.decide(c, h.offerUC.Reject)
}

func (h *BuyerRequestHandler) decide(
	c echo.Context,
	apply func(ctx context.Context, offerID, requestID uuid.UUID, buyerID string) (*entity.Offer, error),
) error {
	buyerID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := uuidParam(c, "offerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := apply(c.Request().Context(), offerID, requestID, buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offer)
}
