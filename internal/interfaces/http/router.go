package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router: un caso de uso por catálogo.
type RouterDeps struct {
	Colors         *usecase.CatalogUseCase
	Roles          *usecase.CatalogUseCase
	UnitsOfMeasure *usecase.CatalogUseCase
	WoodTypes      *usecase.CatalogUseCase
	FurnitureTypes *usecase.CatalogUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	registerCatalog(api.Group("/colors"), deps.Colors)
	registerCatalog(api.Group("/roles"), deps.Roles)
	registerCatalog(api.Group("/unit-of-measures"), deps.UnitsOfMeasure)
	registerCatalog(api.Group("/wood-types"), deps.WoodTypes)
	registerCatalog(api.Group("/furniture-types"), deps.FurnitureTypes)
}

// registerCatalog monta el CRUD de un catálogo en el grupo dado.
func registerCatalog(grp fiber.Router, uc *usecase.CatalogUseCase) {
	h := NewCatalogHandler(uc)
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.GetByID)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
