package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/Gloweldev/ArximiaBackend/internal/application/analytics"
	"github.com/Gloweldev/ArximiaBackend/internal/application/auth"
	"github.com/Gloweldev/ArximiaBackend/internal/application/expenses"
	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/application/sales"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
	"github.com/Gloweldev/ArximiaBackend/internal/infrastructure/postgres"
	httpRouter "github.com/Gloweldev/ArximiaBackend/internal/interfaces/http"
	"github.com/Gloweldev/ArximiaBackend/pkg/config"
	"github.com/Gloweldev/ArximiaBackend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clubRepo := postgres.NewClubRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo)
	inventoryQueryUC := inventory.NewQueryUseCase(invRepo, movRepo, productRepo, userRepo)
	expensesUC := expenses.NewUseCase(registerMovementUC, expenseRepo)
	salesUC := sales.NewUseCase(registerMovementUC, saleRepo, clientRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Inventory.DefaultIdealStock)
	clubUC := usecase.NewClubUseCase(clubRepo, userRepo)
	accountUC := usecase.NewAccountUseCase(userRepo, clubUC)
	productUC := usecase.NewProductUseCase(productRepo, invRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, inventoryQueryUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arximia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		AccountUC:        accountUC,
		ClubUC:           clubUC,
		ProductUC:        productUC,
		ClientUC:         clientUC,
		EmployeeUC:       employeeUC,
		RegisterMovement: registerMovementUC,
		InventoryQuery:   inventoryQueryUC,
		SalesUC:          salesUC,
		ExpensesUC:       expensesUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
