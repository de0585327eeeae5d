package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/analytics"
	"github.com/Gloweldev/ArximiaBackend/internal/application/auth"
	"github.com/Gloweldev/ArximiaBackend/internal/application/expenses"
	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/application/sales"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	AccountUC        *usecase.AccountUseCase
	ClubUC           *usecase.ClubUseCase
	ProductUC        *usecase.ProductUseCase
	ClientUC         *usecase.ClientUseCase
	EmployeeUC       *usecase.EmployeeUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQuery   *inventory.QueryUseCase
	SalesUC          *sales.UseCase
	ExpensesUC       *expenses.UseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuenta del dueño
	userHandler := NewUserHandler(deps.AccountUC)
	protected.Get("/users/me", userHandler.Profile)
	protected.Put("/users/ideal-stock", userHandler.UpdateIdealStock)
	protected.Post("/onboarding", userHandler.CompleteOnboarding)
	protected.Put("/subscription", RequireRole("admin"), userHandler.ChangePlan)

	// Clubs
	clubs := protected.Group("/clubs")
	clubHandler := NewClubHandler(deps.ClubUC)
	clubs.Post("/", RequireRole("admin"), clubHandler.Create)
	clubs.Get("/", clubHandler.List)
	clubs.Get("/:id", clubHandler.GetByID)
	clubs.Put("/:id", RequireRole("admin"), clubHandler.Update)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Archive)
	products.Post("/:id/restore", productHandler.Restore)

	// Inventory
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQuery, deps.ExpensesUC)
	invGroup.Post("/movement", inventoryHandler.RegisterMovement)
	invGroup.Post("/rebuild", inventoryHandler.Rebuild)
	invGroup.Get("/club/:clubId", inventoryHandler.ListByClub)
	invGroup.Get("/:productId/movements", inventoryHandler.MovementHistory)
	invGroup.Get("/:productId/club/:clubId", inventoryHandler.GetRecord)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Register)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Expenses
	expensesGroup := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpensesUC)
	expensesGroup.Post("/", expenseHandler.Register)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Get("/kpis", expenseHandler.KPIs)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Employees (solo admin)
	employees := protected.Group("/employees", RequireRole("admin"))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/check-limit", employeeHandler.CheckLimit)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
}
