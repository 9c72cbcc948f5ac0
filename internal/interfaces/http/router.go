package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC  *usecase.LocationUseCase
	StockItemUC *inventory.StockItemUseCase
	MovementUC  *inventory.MovementUseCase
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API. Todo /api exige Bearer Token;
// escrituras solo admin/manager, lecturas también cashier.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	eh := errorHandler{log: log.Component("http")}

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	read := RequireRole(RoleAdmin, RoleManager, RoleCashier)
	write := RequireRole(RoleAdmin, RoleManager)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC, eh)
	locations.Post("/", write, locationHandler.Create)
	locations.Get("/", read, locationHandler.List)
	locations.Get("/:id", read, locationHandler.GetByID)
	locations.Put("/:id", write, locationHandler.Update)
	locations.Delete("/:id", write, locationHandler.Delete)

	items := api.Group("/stock-items")
	itemHandler := NewStockItemHandler(deps.StockItemUC, eh)
	items.Post("/", write, itemHandler.Create)
	items.Get("/", read, itemHandler.List)
	items.Get("/:id", read, itemHandler.GetByID)
	items.Put("/:id", write, itemHandler.Update)
	items.Delete("/:id", write, itemHandler.Delete)

	movements := api.Group("/stock-movements")
	movementHandler := NewMovementHandler(deps.MovementUC, eh)
	movements.Post("/", write, movementHandler.Create)
	movements.Get("/", read, movementHandler.List)
	movements.Get("/:id", read, movementHandler.GetByID)
	movements.Put("/:id", write, movementHandler.Update)
	movements.Delete("/:id", write, movementHandler.Delete)
}
