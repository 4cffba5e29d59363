package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Spencer4792/jwt-pizza-service/internal/api/http/handlers"
	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Docs             *handlers.DocsHandler
	Auth             *handlers.AuthHandler
	Orders           *handlers.OrderHandler
	Franchises       *handlers.FranchiseHandler
	IdentityResolver *auth.IdentityResolver
}

// RegisterRoutes wires HTTP routes. Every request passes through the
// identity resolver first; the guards on each route decide rejection.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.IdentityResolver.Handle)

	app.Get("/", cfg.Docs.Welcome)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/docs", cfg.Docs.Docs)

	authGroup := api.Group("/auth")
	authGroup.Post("/", cfg.Auth.Register)
	authGroup.Put("/", cfg.Auth.Login)
	authGroup.Delete("/", auth.Authenticated(), cfg.Auth.Logout)
	authGroup.Put("/:userId", auth.Authenticated(), cfg.Auth.UpdateUser)

	orderGroup := api.Group("/order")
	orderGroup.Get("/menu", cfg.Orders.Menu)
	orderGroup.Put("/menu", auth.RoleRequired(domain.RoleAdmin), cfg.Orders.AddMenuItem)
	orderGroup.Get("/", auth.Authenticated(), cfg.Orders.ListOrders)
	orderGroup.Post("/", auth.Authenticated(), cfg.Orders.SubmitOrder)

	franchiseGroup := api.Group("/franchise")
	franchiseGroup.Get("/", cfg.Franchises.List)
	franchiseGroup.Get("/:userId", auth.Authenticated(), cfg.Franchises.ListForUser)
	franchiseGroup.Post("/", auth.RoleRequired(domain.RoleAdmin), cfg.Franchises.Create)
	franchiseGroup.Delete("/:franchiseId", auth.RoleRequired(domain.RoleAdmin), cfg.Franchises.Delete)
	franchiseGroup.Post("/:franchiseId/store", auth.Authenticated(), cfg.Franchises.CreateStore)
	franchiseGroup.Delete("/:franchiseId/store/:storeId", auth.Authenticated(), cfg.Franchises.DeleteStore)

	app.Use(cfg.Docs.NotFound)
}
