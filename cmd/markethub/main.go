package main

import (
	"context"
	"log/slog"
	"os"

	"markethub/config"
	"markethub/internal/delivery"
	"markethub/internal/delivery/http"
	"markethub/internal/delivery/http/middleware"
	"markethub/internal/delivery/http/router/handler"
	"markethub/internal/infra/auth"
	"markethub/internal/infra/llm"
	logs "markethub/internal/infra/log"
	"markethub/internal/infra/persistence/mysql"
	"markethub/internal/usecase/impl"

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
		mysql.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mysql.NewTransactionManager,
			mysql.NewAccountRepository,
			mysql.NewActivityLogRepository,
			mysql.NewProductRepository,
			mysql.NewPriceHistoryRepository,
			mysql.NewSessionRepository,
			mysql.NewSchemaRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			llm.NewOpenAICompleter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewDashboardService,
			impl.NewCatalogService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewDashboardHandler,
			handler.NewCatalogHandler,
			handler.NewAssistantHandler,
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
