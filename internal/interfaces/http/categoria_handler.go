package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoriaHandler maneja las peticiones HTTP para Categoria.
type CategoriaHandler struct {
	uc  *usecase.CategoriaUseCase
	log *logger.Logger
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase, log *logger.Logger) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Param        activo  query  string  false  "Filtro por activo (true/false)"
// @Success      200  {object}  dto.CategoriaListResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	activo := query.ParseBool(c.Query("activo"))
	items, err := h.uc.List(c.UserContext(), activo)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.CategoriaListResponse{Success: true, Items: items})
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaPayload  true  "Datos de la categoría"
// @Success      201  {object}  dto.CategoriaItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo inválido")
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CategoriaItemResponse{Success: true, Item: *out})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.CategoriaPayload  true  "Cambios (parcial)"
// @Success      200  {object}  dto.CategoriaItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Id inválido")
	}
	var in dto.CategoriaPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo inválido")
	}

	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.CategoriaItemResponse{Success: true, Item: *out})
}

// Delete godoc
// @Summary      Eliminar categoría (borrado lógico)
// @Tags         categorias
// @Produce      json
// @Param        id  path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Id inválido")
	}
	if err := h.uc.SoftDelete(c.UserContext(), id); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Categoría eliminada"})
}

func (h *CategoriaHandler) mapError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr)
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Categoría no encontrada")
	case errors.Is(err, domain.ErrDuplicate):
		return conflict(c, "Ya existe una categoría con ese nombre")
	default:
		return internalError(c, h.log, err)
	}
}

// parseID lee el path param id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
