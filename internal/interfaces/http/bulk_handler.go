package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/bulkload"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// BulkHandler maneja la carga masiva de productos desde archivo.
type BulkHandler struct {
	uc  *bulkload.UseCase
	log *logger.Logger
}

// NewBulkHandler construye el handler.
func NewBulkHandler(uc *bulkload.UseCase, log *logger.Logger) *BulkHandler {
	return &BulkHandler{uc: uc, log: log}
}

// Import godoc
// @Summary      Carga masiva de productos (CSV / XLSX)
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .csv, .xlsx o .xls (máx. 10MB)"
// @Success      200  {object}  dto.BulkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productosMasivo [post]
func (h *BulkHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Debe enviar un archivo xlsx o csv en el campo 'file'")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c, h.log, err)
	}
	defer f.Close()

	rows, err := bulkload.Decode(f, fh.Filename)
	if err != nil {
		if errors.Is(err, bulkload.ErrFormato) {
			return badRequest(c, "Formato inválido. Use .xlsx o .csv")
		}
		return internalError(c, h.log, err)
	}

	res, err := h.uc.Import(c.UserContext(), rows)
	if err != nil {
		// Fallos estructurales del lote (no de filas individuales).
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.BulkResponse{
		Success:    true,
		Insertados: res.Insertados,
		Fallidos:   res.Fallidos,
		Errores:    res.Errores,
	})
}
