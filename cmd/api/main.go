package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hwelikannage/pos-api/internal/application/auth"
	"github.com/hwelikannage/pos-api/internal/application/billing"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
	"github.com/hwelikannage/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/hwelikannage/pos-api/internal/interfaces/http"
	"github.com/hwelikannage/pos-api/pkg/config"
	"github.com/hwelikannage/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	itemRepo := postgres.NewItemRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	billItemRepo := postgres.NewBillItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	billUC := billing.NewBillUseCase(txRunner, customerRepo, userRepo, itemRepo, billRepo, billItemRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BillSvc:    billUC,
		ItemUC:     itemUC,
		CustomerUC: customerUC,
		UserUC:     userUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
