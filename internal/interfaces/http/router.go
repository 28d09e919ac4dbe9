package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storemanager/inventario-api/internal/application/auth"
	"github.com/storemanager/inventario-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	productHandler := NewProductHandler(deps.InventoryUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)

	// Productos
	productos := protected.Group("/productos")
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)
	productos.Post("/:id/stock", inventoryHandler.UpdateStock)
	productos.Get("/:id/historial", inventoryHandler.ListHistory)

	// Movimientos y alertas
	protected.Get("/movimientos", inventoryHandler.ListMovements)
	protected.Post("/movimientos", inventoryHandler.RegisterMovement)
	protected.Get("/alertas", inventoryHandler.ListAlerts)
}
