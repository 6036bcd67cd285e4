package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

const categoriaCols = `id_categoria, nombre, descripcion, activo, fecha_creacion, fecha_modificacion`

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// List lista categorías ordenadas por nombre, con filtro opcional por activo.
func (r *CategoriaRepo) List(ctx context.Context, activo *bool) ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias ORDER BY nombre ASC`
	var args []any
	if activo != nil {
		query = `SELECT ` + categoriaCols + ` FROM categorias WHERE activo = $1 ORDER BY nombre ASC`
		args = append(args, *activo)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo, &c.FechaCreacion, &c.FechaModificacion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`SELECT `+categoriaCols+` FROM categorias WHERE id_categoria = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo, &c.FechaCreacion, &c.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// FindByNombre busca una categoría por nombre exacto (sensible a mayúsculas).
func (r *CategoriaRepo) FindByNombre(ctx context.Context, nombre string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`SELECT `+categoriaCols+` FROM categorias WHERE nombre = $1 LIMIT 1`, nombre,
	).Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo, &c.FechaCreacion, &c.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find categoria por nombre: %w", err)
	}
	return &c, nil
}

// Create inserta una categoría y devuelve el id asignado por la base.
// Un nombre repetido (índice único) se reporta como domain.ErrDuplicate.
func (r *CategoriaRepo) Create(ctx context.Context, c *entity.Categoria) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO categorias (nombre, descripcion, activo) VALUES ($1, $2, $3) RETURNING id_categoria`,
		c.Nombre, c.Descripcion, c.Activo,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert categoria: %w", err)
	}
	return id, nil
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(ctx context.Context, c *entity.Categoria) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categorias SET nombre = $2, descripcion = $3, activo = $4, fecha_modificacion = now() WHERE id_categoria = $1`,
		c.ID, c.Nombre, c.Descripcion, c.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// SoftDelete marca la categoría como inactiva (nunca se borra la fila).
func (r *CategoriaRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categorias SET activo = false, fecha_modificacion = now() WHERE id_categoria = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete categoria: %w", err)
	}
	return nil
}
