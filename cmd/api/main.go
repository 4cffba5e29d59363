package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Spencer4792/jwt-pizza-service/internal/api/http"
	"github.com/Spencer4792/jwt-pizza-service/internal/api/http/handlers"
	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/config"
	"github.com/Spencer4792/jwt-pizza-service/internal/events"
	"github.com/Spencer4792/jwt-pizza-service/internal/factory"
	"github.com/Spencer4792/jwt-pizza-service/internal/observability"
	"github.com/Spencer4792/jwt-pizza-service/internal/persistence"
	"github.com/Spencer4792/jwt-pizza-service/internal/repository"
	"github.com/Spencer4792/jwt-pizza-service/internal/service"
	"github.com/Spencer4792/jwt-pizza-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	franchiseRepo := repository.NewFranchiseRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	credentialService := service.NewCredentialService(*cfg, service.CredentialDependencies{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Dispatcher:  dispatcher,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		MenuRepo:   menuRepo,
		OrderRepo:  orderRepo,
		Factory:    factory.NewClient(cfg.Factory, logger),
		Dispatcher: dispatcher,
		ListPer:    cfg.App.ListPerPage,
	})
	franchiseService := service.NewFranchiseService(franchiseRepo, userRepo)

	identityResolver := auth.NewIdentityResolver(credentialService.TokenCodec(), sessionRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(httptransport.RateLimiter(redis.Client, cfg.RateLimit, logger))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Docs:             handlers.NewDocsHandler(cfg.App.Name, cfg.App.Version),
		Auth:             handlers.NewAuthHandler(credentialService),
		Orders:           handlers.NewOrderHandler(orderService),
		Franchises:       handlers.NewFranchiseHandler(franchiseService),
		IdentityResolver: identityResolver,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
