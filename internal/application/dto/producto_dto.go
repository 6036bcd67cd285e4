package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductoPayload body crudo de create/update. Precio puede llegar como
// número JSON o como string con punto decimal ("12.50"); stock e idCategoria
// como número o string de dígitos. La normalización la hace validation.
type ProductoPayload struct {
	Nombre      any `json:"nombre"`
	Descripcion any `json:"descripcion"`
	SKU         any `json:"sku"`
	Precio      any `json:"precio"`
	Stock       any `json:"stock"`
	Activo      any `json:"activo"`
	IDCategoria any `json:"idCategoria"`
}

// ProductoResponse representación JSON de un producto con su categoría.
type ProductoResponse struct {
	IDProducto        int64           `json:"idProducto"`
	Nombre            string          `json:"nombre"`
	Descripcion       *string         `json:"descripcion"`
	SKU               *string         `json:"sku"`
	Precio            decimal.Decimal `json:"precio"`
	Stock             int             `json:"stock"`
	Activo            bool            `json:"activo"`
	IDCategoria       int64           `json:"idCategoria"`
	CategoriaNombre   string          `json:"categoriaNombre"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	FechaModificacion time.Time       `json:"fechaModificacion"`
}

// ProductoItemResponse envoltorio {success, item}.
type ProductoItemResponse struct {
	Success bool             `json:"success"`
	Item    ProductoResponse `json:"item"`
}

// ProductoListResponse envoltorio del listado paginado.
type ProductoListResponse struct {
	Success  bool               `json:"success"`
	Items    []ProductoResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// ToProductoResponse convierte la entidad a su representación JSON.
func ToProductoResponse(p *entity.Producto) ProductoResponse {
	return ProductoResponse{
		IDProducto:        p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		SKU:               p.SKU,
		Precio:            p.Precio,
		Stock:             p.Stock,
		Activo:            p.Activo,
		IDCategoria:       p.IDCategoria,
		CategoriaNombre:   p.CategoriaNombre,
		FechaCreacion:     p.FechaCreacion,
		FechaModificacion: p.FechaModificacion,
	}
}
