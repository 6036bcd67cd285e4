package entity

import "time"

// Categoria agrupa productos del catálogo. El nombre es único (índice en DB).
// Nunca se borra físicamente: la baja es Activo=false.
type Categoria struct {
	ID                int64
	Nombre            string
	Descripcion       *string // NULL si no se informó
	Activo            bool
	FechaCreacion     time.Time
	FechaModificacion time.Time
}
