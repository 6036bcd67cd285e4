package dto

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoriaPayload body crudo de create/update. Los campos llegan sin tipar
// (JSON o formulario) y los normaliza el paquete validation.
type CategoriaPayload struct {
	Nombre      any `json:"nombre"`
	Descripcion any `json:"descripcion"`
	Activo      any `json:"activo"`
}

// CategoriaResponse representación JSON de una categoría.
type CategoriaResponse struct {
	IDCategoria       int64     `json:"idCategoria"`
	Nombre            string    `json:"nombre"`
	Descripcion       *string   `json:"descripcion"`
	Activo            bool      `json:"activo"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
	FechaModificacion time.Time `json:"fechaModificacion"`
}

// CategoriaItemResponse envoltorio {success, item}.
type CategoriaItemResponse struct {
	Success bool              `json:"success"`
	Item    CategoriaResponse `json:"item"`
}

// CategoriaListResponse envoltorio {success, items}.
type CategoriaListResponse struct {
	Success bool                `json:"success"`
	Items   []CategoriaResponse `json:"items"`
}

// ToCategoriaResponse convierte la entidad a su representación JSON.
func ToCategoriaResponse(c *entity.Categoria) CategoriaResponse {
	return CategoriaResponse{
		IDCategoria:       c.ID,
		Nombre:            c.Nombre,
		Descripcion:       c.Descripcion,
		Activo:            c.Activo,
		FechaCreacion:     c.FechaCreacion,
		FechaModificacion: c.FechaModificacion,
	}
}
