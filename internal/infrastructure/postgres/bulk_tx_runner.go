package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-api/internal/application/bulkload"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var _ bulkload.TxRunner = (*BulkTxRunner)(nil)

// BulkTxRunner ejecuta el lote de carga masiva dentro de una transacción
// PostgreSQL. La conexión se retiene durante todo el lote y se libera en
// todos los caminos de salida (commit o rollback).
type BulkTxRunner struct {
	pool *pgxpool.Pool
}

// NewBulkTxRunner construye el runner con el pool.
func NewBulkTxRunner(pool *pgxpool.Pool) *BulkTxRunner {
	return &BulkTxRunner{pool: pool}
}

// Run inicia la transacción, ejecuta fn con un repo atado a la tx y hace
// Commit o Rollback.
func (r *BulkTxRunner) Run(ctx context.Context, fn func(repo bulkload.Repo) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&bulkRepo{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// bulkRepo operaciones del lote atadas a la transacción en curso.
type bulkRepo struct {
	tx pgx.Tx
}

// ExistingCategorias devuelve, en una sola consulta, cuáles de los ids
// referidos por el lote existen de verdad.
func (r *bulkRepo) ExistingCategorias(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT id_categoria FROM categorias WHERE id_categoria = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("categorias existentes: %w", err)
	}
	defer rows.Close()

	existing := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id_categoria: %w", err)
		}
		existing[id] = struct{}{}
	}
	return existing, rows.Err()
}

// Insert inserta una fila bajo un savepoint propio: si la fila viola el
// índice único de SKU, el savepoint se revierte y la transacción del lote
// sigue utilizable para las filas siguientes.
func (r *bulkRepo) Insert(ctx context.Context, p *entity.Producto) error {
	sp, err := r.tx.Begin(ctx) // Begin sobre una tx abre un savepoint
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}

	_, err = sp.Exec(ctx, `
		INSERT INTO productos (nombre, descripcion, sku, precio, stock, activo, id_categoria)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.Nombre, p.Descripcion, p.SKU, p.Precio, p.Stock, p.Activo, p.IDCategoria,
	)
	if err != nil {
		_ = sp.Rollback(ctx)
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto en lote: %w", err)
	}
	return sp.Commit(ctx)
}
