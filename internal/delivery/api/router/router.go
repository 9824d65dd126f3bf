// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carmarket/config"
	"carmarket/internal/delivery/api/middleware"
	"carmarket/internal/delivery/api/router/handler"
	"carmarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	BuyerRequestHandler *handler.BuyerRequestHandler
	DealerHandler       *handler.DealerHandler
	ConversationHandler *handler.ConversationHandler
	UploadHandler       *handler.UploadHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	MessageRateLimiter  *middleware.RateLimiter
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	buyerRequestHandler *handler.BuyerRequestHandler
	dealerHandler       *handler.DealerHandler
	conversationHandler *handler.ConversationHandler
	uploadHandler       *handler.UploadHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
	messageRateLimiter  *middleware.RateLimiter
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		buyerRequestHandler: params.BuyerRequestHandler,
		dealerHandler:       params.DealerHandler,
		conversationHandler: params.ConversationHandler,
		uploadHandler:       params.UploadHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
		messageRateLimiter:  params.MessageRateLimiter,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/healthz", handler.HealthCheck)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	authed.GET("/me", r.profileHandler.Me)

	buyerGroup := authed.Group("/buyer/requests")
	{
		buyerGroup.POST("", r.buyerRequestHandler.CreateRequest)
		buyerGroup.GET("", r.buyerRequestHandler.ListRequests)
		buyerGroup.GET("/:id", r.buyerRequestHandler.GetRequest)
		buyerGroup.POST("/:id/cancel", r.buyerRequestHandler.CancelRequest)
		buyerGroup.POST("/:id/review", r.buyerRequestHandler.ReviewRequest)
		buyerGroup.GET("/:id/offers", r.buyerRequestHandler.ListOffers)
		buyerGroup.POST("/:id/offers/:offerId/accept", r.buyerRequestHandler.AcceptOffer)
		buyerGroup.POST("/:id/offers/:offerId/reject", r.buyerRequestHandler.RejectOffer)
	}

	// Onboarding is open to every signed-in user; the rest of /dealer needs the dealer role.
	authed.POST("/dealer/onboarding", r.dealerHandler.Onboard)

	dealerGroup := authed.Group("/dealer")
	dealerGroup.Use(r.authMiddleware.RequireDealer)
	{
		dealerGroup.GET("/dealerships", r.dealerHandler.ListDealerships)
		dealerGroup.GET("/requests", r.dealerHandler.ListOpenRequests)
		dealerGroup.GET("/requests/:id", r.dealerHandler.GetOpenRequest)
		dealerGroup.GET("/requests/:id/qrcode", r.dealerHandler.RequestQRCode)
		dealerGroup.POST("/requests/:id/offers", r.dealerHandler.CreateOffer)
		dealerGroup.GET("/offers", r.dealerHandler.ListOffers)
		dealerGroup.GET("/offers/:id", r.dealerHandler.GetOffer)
		dealerGroup.POST("/offers/:id/withdraw", r.dealerHandler.WithdrawOffer)
	}

	offersGroup := authed.Group("/offers")
	{
		offersGroup.GET("/:id/messages", r.conversationHandler.ListMessages)
		offersGroup.POST("/:id/messages", r.conversationHandler.PostMessage, r.messageRateLimiter.Limit)
	}

	authed.POST("/uploads/request-images", r.uploadHandler.UploadRequestImages)

	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}
}
