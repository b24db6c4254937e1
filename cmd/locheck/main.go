package main

import (
	"context"
	"log/slog"
	"os"

	"locheck/config"
	"locheck/internal/delivery"
	"locheck/internal/delivery/http"
	"locheck/internal/delivery/http/middleware"
	"locheck/internal/delivery/http/router/handler"
	"locheck/internal/delivery/ws"
	"locheck/internal/domain/service"
	"locheck/internal/infra/auth"
	"locheck/internal/infra/crypto"
	logs "locheck/internal/infra/log"
	"locheck/internal/infra/persistence/postgres"
	"locheck/internal/usecase/impl"

	"github.com/pkg/errors"
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
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewSettingsRepository,
			postgres.NewCredentialRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newKeyDeriver,
			newFieldCipher,
		),
	)
}

type keyDeriverParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// newKeyDeriver creates the PBKDF2 worker pool and drains it on shutdown.
func newKeyDeriver(params keyDeriverParams) (service.KeyDeriver, error) {
	if params.Config.FieldCrypto == nil || params.Config.FieldCrypto.Secret == "" {
		return nil, errors.New("fieldCrypto.secret is required")
	}

	pool, err := crypto.NewKeyDerivationPool(
		params.Config.FieldCrypto.Secret,
		params.Config.FieldCrypto.Workers,
		params.Config.FieldCrypto.QueueSize,
	)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()

			return nil
		},
	})

	return pool, nil
}

func newFieldCipher(deriver service.KeyDeriver, cfg *config.Config, logger *slog.Logger) service.FieldCipher {
	return crypto.NewFieldCipher(deriver, cfg.FieldCrypto.DeriveTimeout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistryService,
			impl.NewTelemetryService,
			impl.NewNotificationService,
		),
	)
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
			handler.NewDeviceHandler,
			handler.NewTelemetryHandler,
			handler.NewNotificationHandler,
			ws.NewHub,
			ws.NewHandler,
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
