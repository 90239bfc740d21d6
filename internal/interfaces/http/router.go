package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/auth"
	"github.com/jhoicas/estoque-meias/internal/application/catalog"
	"github.com/jhoicas/estoque-meias/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session          *auth.SessionContext
	Store            *catalog.Store
	Products         *catalog.ProductUseCase
	Reports          *catalog.ReportUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Token            TokenConfig
	Log              zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.Session, deps.Token, deps.Log)
	requireAuth := AuthMiddleware(deps.Token.Secret, deps.Session)

	// Auth (público salvo logout)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", requireAuth, authHandler.Logout)
	api.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token de la sesión activa)
	protected := api.Group("/", requireAuth)

	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.Store, deps.Products)
	products.Get("/", productHandler.List)
	products.Get("/snapshot", productHandler.Snapshot)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Store)
	protected.Post("/movimentacoes", inventoryHandler.RegisterMovement)

	reportHandler := NewReportHandler(deps.Reports)
	protected.Get("/relatorios/estoque.pdf", reportHandler.StockPDF)
}
