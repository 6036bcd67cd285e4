package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var (
	_ repository.ProductoRepository = (*ProductoRepo)(nil)
	_ query.Pager                   = (*ProductoRepo)(nil)
)

const productoCols = `p.id_producto, p.nombre, p.descripcion, p.sku, p.precio, p.stock, p.activo,
		p.id_categoria, c.nombre AS categoria_nombre, p.fecha_creacion, p.fecha_modificacion`

// Columnas SQL permitidas en ORDER BY, indexadas por el nombre expuesto en la
// API. Solo identificadores de este mapa llegan al string de la consulta.
var sortColumns = map[string]string{
	"nombre":        "p.nombre",
	"precio":        "p.precio",
	"fechaCreacion": "p.fecha_creacion",
}

// ProductoRepo implementación del puerto ProductoRepository y del pager sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// ListPaged ejecuta el listado filtrado: COUNT(*) bajo el mismo WHERE y
// después la página con el JOIN a categorías. Los valores de filtro van como
// parámetros; LIMIT/OFFSET se incrustan como enteros ya validados por el
// constructor de la especificación (nunca hay string del cliente en esa
// posición).
func (r *ProductoRepo) ListPaged(ctx context.Context, spec query.Spec) ([]*entity.Producto, int64, error) {
	whereSQL, args := buildWhere(spec.Filters)

	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos p`+whereSQL, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	col, ok := sortColumns[spec.Sort.Campo]
	if !ok {
		col = sortColumns["fechaCreacion"]
	}
	dir := "DESC"
	if spec.Sort.Direccion == "asc" {
		dir = "ASC"
	}

	pageSQL := fmt.Sprintf(`
		SELECT `+productoCols+`
		FROM productos p
		INNER JOIN categorias c ON c.id_categoria = p.id_categoria
		%s
		ORDER BY %s %s
		LIMIT %d OFFSET %d`,
		whereSQL, col, dir, spec.PageSize, spec.Offset,
	)

	rows, err := r.q.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// buildWhere arma la conjunción de los filtros presentes; los ausentes no
// imponen predicado. Todos los valores van como parámetros posicionales.
func buildWhere(f query.Filters) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Search != nil {
		add("p.nombre ILIKE $%d", "%"+*f.Search+"%")
	}
	if f.IDCategoria != nil {
		add("p.id_categoria = $%d", *f.IDCategoria)
	}
	if f.PrecioMin != nil {
		add("p.precio >= $%d", *f.PrecioMin)
	}
	if f.PrecioMax != nil {
		add("p.precio <= $%d", *f.PrecioMax)
	}
	if f.Activo != nil {
		add("p.activo = $%d", *f.Activo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetByID obtiene un producto con el nombre de su categoría. (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+productoCols+`
		FROM productos p
		INNER JOIN categorias c ON c.id_categoria = p.id_categoria
		WHERE p.id_producto = $1`, id)

	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserta un producto y devuelve el id asignado por la base.
// Un SKU repetido (índice único parcial) se reporta como domain.ErrDuplicate.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO productos (nombre, descripcion, sku, precio, stock, activo, id_categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_producto`,
		p.Nombre, p.Descripcion, p.SKU, p.Precio, p.Stock, p.Activo, p.IDCategoria,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	_, err := r.q.Exec(ctx, `
		UPDATE productos
		SET nombre = $2, descripcion = $3, sku = $4, precio = $5, stock = $6, activo = $7,
			id_categoria = $8, fecha_modificacion = now()
		WHERE id_producto = $1`,
		p.ID, p.Nombre, p.Descripcion, p.SKU, p.Precio, p.Stock, p.Activo, p.IDCategoria,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como inactivo (nunca se borra la fila).
func (r *ProductoRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE productos SET activo = false, fecha_modificacion = now() WHERE id_producto = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.SKU, &p.Precio, &p.Stock, &p.Activo,
		&p.IDCategoria, &p.CategoriaNombre, &p.FechaCreacion, &p.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}
