package main

import (
	"context"
	"log/slog"
	"os"

	"carmarket/config"
	"carmarket/internal/delivery"
	"carmarket/internal/delivery/api"
	"carmarket/internal/delivery/api/middleware"
	"carmarket/internal/delivery/api/router/handler"
	"carmarket/internal/domain/service"
	"carmarket/internal/infra/auth"
	logs "carmarket/internal/infra/log"
	"carmarket/internal/infra/metrics"
	"carmarket/internal/infra/persistence/postgres"
	"carmarket/internal/infra/pubsub"
	"carmarket/internal/infra/qrcode"
	"carmarket/internal/infra/storage"
	"carmarket/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerDBStats,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		func(m *metrics.Metrics) service.MarketMetrics { return m },
		impl.NewMarketplaceSettings,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewDealershipRepository,
			postgres.NewBuyerRequestRepository,
			postgres.NewOfferRepository,
			postgres.NewMessageRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewIdentityVerifier,
			storage.NewImageStore,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewDealershipService,
			impl.NewRequestService,
			impl.NewOfferService,
			impl.NewConversationService,
			impl.NewUploadService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewMessageRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewBuyerRequestHandler,
			handler.NewDealerHandler,
			handler.NewConversationHandler,
			handler.NewUploadHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func registerDBStats(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) error {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.WithStack(m.RegisterDBStats(sqlDB, "primary"))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
