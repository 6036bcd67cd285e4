package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/validation"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías. El invariante de
// unicidad del nombre se comprueba aquí como camino rápido; el índice único
// en DB es el respaldo ante escritores concurrentes.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// List lista categorías ordenadas por nombre, con filtro opcional por activo.
func (uc *CategoriaUseCase) List(ctx context.Context, activo *bool) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(ctx, activo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoriaResponse(c))
	}
	return items, nil
}

// Create valida el payload, rechaza nombres repetidos y devuelve la fila
// recién leída.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CategoriaPayload) (*dto.CategoriaResponse, error) {
	norm, err := validation.ValidarCategoriaCreate(in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByNombre(ctx, norm.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	activo := true
	if norm.Activo != nil {
		activo = *norm.Activo
	}
	id, err := uc.repo.Create(ctx, &entity.Categoria{
		Nombre:      norm.Nombre,
		Descripcion: norm.Descripcion,
		Activo:      activo,
	})
	if err != nil {
		return nil, err
	}
	return uc.leer(ctx, id)
}

// Update aplica los cambios presentes sobre la categoría existente.
// Falla con ErrNotFound si no existe y con ErrDuplicate si otra categoría
// ya usa el nombre pedido.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, in dto.CategoriaPayload) (*dto.CategoriaResponse, error) {
	cambios, err := validation.ValidarCategoriaUpdate(in)
	if err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	if cambios.Nombre != nil {
		existing, err := uc.repo.FindByNombre(ctx, *cambios.Nombre)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		current.Nombre = *cambios.Nombre
	}
	if cambios.Descripcion != nil {
		if *cambios.Descripcion == "" {
			current.Descripcion = nil
		} else {
			current.Descripcion = cambios.Descripcion
		}
	}
	if cambios.Activo != nil {
		current.Activo = *cambios.Activo
	}

	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return uc.leer(ctx, id)
}

// SoftDelete marca la categoría como inactiva. Borrarla dos veces deja el
// mismo estado (activo=false).
func (uc *CategoriaUseCase) SoftDelete(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *CategoriaUseCase) leer(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToCategoriaResponse(c)
	return &resp, nil
}
