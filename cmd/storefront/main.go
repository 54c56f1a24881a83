package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/backend"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Session    usecase.SessionUsecase
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bindCartToSession,
			startServer,
		),
		fx.StartTimeout(lifecycle.DefaultTimeout),
		fx.StopTimeout(lifecycle.DefaultTimeout),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			service.SystemClock,
		),
		storage.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTCodec,
			newCredentialSource,
		),
		backend.Module,
	)
}

// newCredentialSource lets the backend clients read the bearer from the session.
func newCredentialSource(session usecase.SessionUsecase) service.CredentialSource {
	return session
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionManager,
			impl.NewCartStore,
			impl.NewAccountService,
			impl.NewCheckoutService,
			impl.NewCatalogService,
			impl.NewPrescriptionService,
			impl.NewPurchaseService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAccountHandler,
			handler.NewCartHandler,
			handler.NewCatalogHandler,
			handler.NewPrescriptionHandler,
			handler.NewPurchaseHandler,
			handler.NewAnalyticsHandler,
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

// bindCartToSession moves the active cart whenever the signed-in subject changes.
func bindCartToSession(session usecase.SessionUsecase, cart usecase.CartUsecase, logger *slog.Logger) {
	session.OnIdentityChange(func(ctx context.Context, subjectID string) {
		transition := cart.SwitchOwner(ctx, subjectID)
		if transition != entity.TransitionNone {
			logger.Debug("Cart owner switched",
				slog.String("owner", cart.Owner()),
				slog.String("transition", transition.String()),
			)
		}
	})
}

// startServer restores the persisted session before any delivery accepts requests.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			params.Session.Hydrate(startCtx)

			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
