package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/application/validation"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Columnas por las que se permite ordenar el listado de productos. El
// whitelist es la única defensa contra inyección por nombre de columna.
var (
	ProductoSortWhitelist = []string{"nombre", "precio", "fechaCreacion"}
	ProductoSortDefault   = query.Sort{Campo: "fechaCreacion", Direccion: "desc"}
)

// ProductoUseCase casos de uso CRUD + listado filtrado para productos.
// La existencia de la categoría referida se comprueba en cada escritura.
type ProductoUseCase struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
	pager      query.Pager
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categorias repository.CategoriaRepository, pager query.Pager) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categorias: categorias, pager: pager}
}

// List sanea los query params crudos y ejecuta el listado paginado.
// Nunca falla por parámetros malformados: caen a los valores por defecto.
func (uc *ProductoUseCase) List(ctx context.Context, raw query.Raw) (*dto.ProductoListResponse, error) {
	spec := query.Build(raw, ProductoSortWhitelist, ProductoSortDefault)
	items, total, err := uc.pager.ListPaged(ctx, spec)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductoListResponse{
		Success:  true,
		Items:    make([]dto.ProductoResponse, 0, len(items)),
		Total:    total,
		Page:     spec.Page,
		PageSize: spec.PageSize,
	}
	for _, p := range items {
		resp.Items = append(resp.Items, dto.ToProductoResponse(p))
	}
	return resp, nil
}

// GetByID obtiene un producto con el nombre de su categoría.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	return uc.leer(ctx, id)
}

// Create valida el payload, exige que la categoría exista y devuelve la fila
// recién leída (con el nombre de la categoría).
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoPayload) (*dto.ProductoResponse, error) {
	norm, err := validation.ValidarProductoCreate(in)
	if err != nil {
		return nil, err
	}

	cat, err := uc.categorias.GetByID(ctx, norm.IDCategoria)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrCategoryNotExists
	}

	activo := true
	if norm.Activo != nil {
		activo = *norm.Activo
	}
	id, err := uc.repo.Create(ctx, &entity.Producto{
		Nombre:      norm.Nombre,
		Descripcion: norm.Descripcion,
		SKU:         norm.SKU,
		Precio:      norm.Precio,
		Stock:       norm.Stock,
		Activo:      activo,
		IDCategoria: norm.IDCategoria,
	})
	if err != nil {
		return nil, err
	}
	return uc.leer(ctx, id)
}

// Update aplica los cambios presentes sobre el producto existente. Si el
// update cambia la categoría, la nueva debe existir.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.ProductoPayload) (*dto.ProductoResponse, error) {
	cambios, err := validation.ValidarProductoUpdate(in)
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

	if cambios.IDCategoria != nil {
		cat, err := uc.categorias.GetByID(ctx, *cambios.IDCategoria)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrCategoryNotExists
		}
		current.IDCategoria = *cambios.IDCategoria
	}
	if cambios.Nombre != nil {
		current.Nombre = *cambios.Nombre
	}
	if cambios.Descripcion != nil {
		current.Descripcion = textoONil(cambios.Descripcion)
	}
	if cambios.SKU != nil {
		current.SKU = textoONil(cambios.SKU)
	}
	if cambios.Precio != nil {
		current.Precio = *cambios.Precio
	}
	if cambios.Stock != nil {
		current.Stock = *cambios.Stock
	}
	if cambios.Activo != nil {
		current.Activo = *cambios.Activo
	}

	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return uc.leer(ctx, id)
}

// SoftDelete marca el producto como inactivo.
func (uc *ProductoUseCase) SoftDelete(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *ProductoUseCase) leer(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductoResponse(p)
	return &resp, nil
}

// textoONil convierte el marcador "limpiar" (puntero a "") en NULL.
func textoONil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
