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

	"github.com/jhoicas/catalogos-api/internal/application/usecase"
	"github.com/jhoicas/catalogos-api/internal/domain/entity"
	"github.com/jhoicas/catalogos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogos-api/internal/interfaces/http"
	"github.com/jhoicas/catalogos-api/pkg/config"
	"github.com/jhoicas/catalogos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	colorsUC := usecase.NewCatalogUseCase(entity.KindColor,
		postgres.NewCatalogRepository(pool, postgres.ColorsTable))
	rolesUC := usecase.NewCatalogUseCase(entity.KindRole,
		postgres.NewCatalogRepository(pool, postgres.RolesTable))
	unitsUC := usecase.NewCatalogUseCase(entity.KindUnitOfMeasure,
		postgres.NewCatalogRepository(pool, postgres.UnitOfMeasuresTable))
	woodTypesUC := usecase.NewCatalogUseCase(entity.KindWoodType,
		postgres.NewCatalogRepository(pool, postgres.WoodTypesTable))
	furnitureTypesUC := usecase.NewCatalogUseCase(entity.KindFurnitureType,
		postgres.NewCatalogRepository(pool, postgres.FurnitureTypesTable))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Colors:         colorsUC,
		Roles:          rolesUC,
		UnitsOfMeasure: unitsUC,
		WoodTypes:      woodTypesUC,
		FurnitureTypes: furnitureTypesUC,
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
