package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc  *usecase.ProductoUseCase
	log *logger.Logger
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, log *logger.Logger) *ProductoHandler {
	return &ProductoHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos (filtros + orden + paginación)
// @Tags         productos
// @Produce      json
// @Param        search       query  string  false  "Texto a buscar en el nombre"
// @Param        idCategoria  query  int     false  "Filtro por categoría"
// @Param        precioMin    query  number  false  "Precio mínimo"
// @Param        precioMax    query  number  false  "Precio máximo"
// @Param        activo       query  string  false  "Filtro por activo (true/false)"
// @Param        sortBy       query  string  false  "nombre | precio | fechaCreacion"
// @Param        sortDir      query  string  false  "asc | desc"
// @Param        page         query  int     false  "Página (desde 1)"
// @Param        pageSize     query  int     false  "Tamaño de página (1-100)"
// @Success      200  {object}  dto.ProductoListResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	raw := query.Raw{}
	for _, k := range []string{"search", "idCategoria", "precioMin", "precioMax", "activo", "sortBy", "sortDir", "page", "pageSize"} {
		if v := c.Query(k); v != "" {
			raw[k] = v
		}
	}

	out, err := h.uc.List(c.UserContext(), raw)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.ProductoItemResponse{Success: true, Item: *out})
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoPayload  true  "Datos del producto"
// @Success      201  {object}  dto.ProductoItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo inválido")
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductoItemResponse{Success: true, Item: *out})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductoPayload  true  "Cambios (parcial)"
// @Success      200  {object}  dto.ProductoItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Id inválido")
	}
	var in dto.ProductoPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Cuerpo inválido")
	}

	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.ProductoItemResponse{Success: true, Item: *out})
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Id inválido")
	}
	if err := h.uc.SoftDelete(c.UserContext(), id); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Producto eliminado"})
}

func (h *ProductoHandler) mapError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr)
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Producto no encontrado")
	case errors.Is(err, domain.ErrCategoryNotExists):
		return badRequest(c, "La categoría no existe")
	case errors.Is(err, domain.ErrDuplicate):
		// Respaldo del índice único (SKU): la comprobación de aplicación
		// no cubre escritores concurrentes.
		return conflict(c, "Conflicto: registro duplicado")
	default:
		return internalError(c, h.log, err)
	}
}
