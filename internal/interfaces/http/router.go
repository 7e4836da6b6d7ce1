package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/notify"
	"github.com/nmthanh/backoffice-api/internal/application/stats"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
)

// RouterDeps bundles the router's dependencies.
type RouterDeps struct {
	AuthUC       *usecase.AuthUseCase
	IngredientUC *usecase.ItemUseCase
	ProductUC    *usecase.ItemUseCase
	CategoryUC   *usecase.CategoryUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ExportUC     *usecase.ExportUseCase
	History      *history.Log
	Aggregator   *stats.Aggregator
	Notifier     *notify.Notifier
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	warehouse := protected.Group("/warehouse")
	statsHandler := NewStatsHandler(deps.Aggregator, deps.CategoryUC)
	warehouse.Get("/stats", statsHandler.Overview)

	registerItems := func(group fiber.Router, h *ItemHandler) {
		group.Get("/", h.List)
		group.Post("/", h.Create)
		group.Post("/import", h.Import)
		group.Post("/export", h.Export)
		group.Get("/:id", h.GetByID)
		group.Put("/:id", h.Update)
		group.Delete("/:id", h.Delete)
		group.Post("/:id/adjust", h.Adjust)
	}
	registerItems(warehouse.Group("/ingredients"),
		NewItemHandler(deps.IngredientUC, deps.ExportUC, "Danh sách nguyên liệu"))
	registerItems(warehouse.Group("/products"),
		NewItemHandler(deps.ProductUC, deps.ExportUC, "Danh sách sản phẩm"))

	categories := warehouse.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.IngredientUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:id/items", categoryHandler.Items)
	categories.Post("/:id/items", categoryHandler.CreateItem)
	categories.Put("/:id/items/:itemID", categoryHandler.UpdateItem)
	categories.Get("/:id/stats", categoryHandler.Stats)

	historyGroup := warehouse.Group("/history")
	historyHandler := NewHistoryHandler(deps.History)
	historyGroup.Get("/", historyHandler.List)
	historyGroup.Delete("/", historyHandler.Clear)

	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifier)
	notifications.Get("/current", notificationHandler.Current)
	notifications.Post("/dismiss", notificationHandler.Dismiss)
	notifications.Post("/close", notificationHandler.Close)

	// Account management (admin only)
	employees := protected.Group("/employees", RequireAdmin())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
}
