package handler

import (
	"log/slog"

	"carmarket/internal/delivery/api/response"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	Logger         *slog.Logger
}

// ConversationHandler serves the per-offer message threads for both sides.
type ConversationHandler struct {
	conversationUC usecase.ConversationUsecase
	logger         *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{
		conversationUC: params.ConversationUC,
		logger:         params.Logger,
	}
}

// PostMessageRequest is the chat form
type PostMessageRequest struct {
	Message string `json:"message" form:"message"`
}

// ListMessages returns the thread and the caller's side of it
func (h *ConversationHandler) ListMessages(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conversation, err := h.conversationUC.ListMessages(c.Request().Context(), offerID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, conversation)
}

// PostMessage appends to the thread as whichever side the caller is on
func (h *ConversationHandler) PostMessage(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	posted, err := h.conversationUC.PostMessage(c.Request().Context(), offerID, userID, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, posted)
}
