package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogos-api/internal/application/dto"
	"github.com/jhoicas/catalogos-api/internal/application/usecase"
	"github.com/jhoicas/catalogos-api/internal/domain"
)

// HeaderActor identifica al usuario que ejecuta la operación; lo puebla el
// frontend y se registra en las columnas de auditoría.
const HeaderActor = "X-Usuario"

// CatalogHandler maneja las peticiones HTTP de un catálogo. El mismo handler
// sirve para los cinco catálogos: solo cambia el caso de uso inyectado.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar elementos activos del catálogo
// @Tags         catalogs
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/{catalog} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear elemento de catálogo
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogItemRequest  true  "Datos del elemento"
// @Success      201   {object}  dto.CatalogItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{catalog} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, c.Get(HeaderActor))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener elemento por ID (solo activos)
// @Tags         catalogs
// @Produce      json
// @Param        id   path  int  true  "ID del elemento"
// @Success      200  {object}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{catalog}/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	item, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCatalogItemResponse(item))
}

// Update godoc
// @Summary      Actualizar elemento de catálogo
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del elemento"
// @Param        body  body  dto.CatalogItemRequest  true  "Datos del elemento"
// @Success      200   {object}  dto.CatalogItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{catalog}/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in, c.Get(HeaderActor))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja un elemento de catálogo (borrado lógico)
// @Tags         catalogs
// @Param        id  path  int  true  "ID del elemento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{catalog}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id, c.Get(HeaderActor)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
}

// fail traduce un error de dominio a la respuesta HTTP correspondiente. Los
// errores fuera de la taxonomía se registran y salen como 500 genérico.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}
