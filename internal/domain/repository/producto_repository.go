package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetByID devuelve (nil, nil) cuando no existe el registro. El listado
// paginado/filtrado es un puerto aparte en la capa de aplicación (query.Pager)
// porque depende de la especificación saneada de listado.
type ProductoRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	Create(ctx context.Context, p *entity.Producto) (int64, error)
	Update(ctx context.Context, p *entity.Producto) error
	SoftDelete(ctx context.Context, id int64) error
}
