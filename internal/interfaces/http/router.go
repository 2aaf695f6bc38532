package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hwelikannage/pos-api/internal/application/auth"
	"github.com/hwelikannage/pos-api/internal/application/usecase"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	BillSvc    BillService
	ItemUC     *usecase.ItemUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bills
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillSvc)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/items", billHandler.Items)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Users (ADMIN only)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
