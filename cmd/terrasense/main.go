package main

import (
	"context"
	"log/slog"
	"os"

	"terrasense/config"
	"terrasense/internal/delivery"
	"terrasense/internal/delivery/http"
	"terrasense/internal/delivery/http/middleware"
	"terrasense/internal/delivery/http/router/handler"
	"terrasense/internal/domain/repository"
	"terrasense/internal/infra/auth"
	logs "terrasense/internal/infra/log"
	"terrasense/internal/infra/persistence/postgres"
	"terrasense/internal/usecase"
	"terrasense/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAreaRepository,
			postgres.NewSensorRepository,
			postgres.NewReadingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAreaService,
			impl.NewSensorService,
			impl.NewReadingService,
			newDashboardService,
		),
	)
}

// newDashboardService wires the configured trend window into the dashboard
// service. The limit is plain data, so it is applied here rather than making
// the service depend on the config type.
func newDashboardService(
	areaRepo repository.AreaRepository,
	sensorRepo repository.SensorRepository,
	readingRepo repository.ReadingRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	trendLimit := 0
	if cfg.Dashboard != nil {
		trendLimit = cfg.Dashboard.TrendLimit
	}

	return impl.NewDashboardService(areaRepo, sensorRepo, readingRepo, trendLimit, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAreaHandler,
			handler.NewSensorHandler,
			handler.NewReadingHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
