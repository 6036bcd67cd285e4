package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
// GetByID y FindByNombre devuelven (nil, nil) cuando no existe el registro.
type CategoriaRepository interface {
	List(ctx context.Context, activo *bool) ([]*entity.Categoria, error)
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*entity.Categoria, error)
	Create(ctx context.Context, c *entity.Categoria) (int64, error)
	Update(ctx context.Context, c *entity.Categoria) error
	SoftDelete(ctx context.Context, id int64) error
}
