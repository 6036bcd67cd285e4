package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo.
// IDCategoria debe referir a una categoría existente (lo valida la capa de
// aplicación; la FK en DB es el respaldo). La baja es Activo=false.
type Producto struct {
	ID                int64
	Nombre            string
	Descripcion       *string // NULL si no se informó
	SKU               *string // opcional; único cuando está presente
	Precio            decimal.Decimal
	Stock             int
	Activo            bool
	IDCategoria       int64
	CategoriaNombre   string // nombre de la categoría (JOIN en lecturas)
	FechaCreacion     time.Time
	FechaModificacion time.Time
}
