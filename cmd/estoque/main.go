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

	"github.com/jhoicas/estoque-meias/internal/application/auth"
	"github.com/jhoicas/estoque-meias/internal/application/catalog"
	"github.com/jhoicas/estoque-meias/internal/application/inventory"
	"github.com/jhoicas/estoque-meias/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/estoque-meias/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/estoque-meias/internal/interfaces/http"
	"github.com/jhoicas/estoque-meias/pkg/config"
	"github.com/jhoicas/estoque-meias/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Dur("timeout", cfg.Backend.Timeout()).
		Bool("drop_stale_refresh", cfg.Catalog.DropStaleRefresh).
		Msg("iniciando aplicación")

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log.Component("backend"))

	session := auth.NewSessionContext(client, log.Component("session"))
	store := catalog.NewStore(client, log.Component("catalog"), catalog.WithStaleRefreshGuard(cfg.Catalog.DropStaleRefresh))
	productUC := catalog.NewProductUseCase(session, client, store)
	registerMovementUC := inventory.NewRegisterMovementUseCase(session, client, store, log.Component("inventory"))

	// PDF: relatório de estoque a partir del snapshot
	reportUC := catalog.NewReportUseCase(session, store, infrapdf.NewStockReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si el archivo existe)
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Estoque Meias API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:          session,
		Store:            store,
		Products:         productUC,
		Reports:          reportUC,
		RegisterMovement: registerMovementUC,
		Token: httpRouter.TokenConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Log: log.Component("http"),
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
