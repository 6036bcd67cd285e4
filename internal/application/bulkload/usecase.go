package bulkload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Alias de cabecera aceptados para la columna de categoría, en orden de
// preferencia.
var aliasCategoria = []string{"idcategoria", "id_categoria", "categoria", "idcat"}

// Repo puerto mínimo del lote, atado a la transacción en curso.
// Insert devuelve domain.ErrDuplicate ante un SKU repetido.
type Repo interface {
	ExistingCategorias(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	Insert(ctx context.Context, p *entity.Producto) error
}

// TxRunner ejecuta fn dentro de una transacción de BD con un Repo atado a
// esa tx. El fallo de una fila individual no aborta la transacción; solo un
// error estructural (conexión perdida) provoca rollback de todo el lote.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo Repo) error) error
}

// UseCase pipeline de carga masiva: validación independiente por fila,
// inserción del lote en una transacción y reporte agregado por fila.
type UseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewUseCase construye el pipeline.
func NewUseCase(tx TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, log: log}
}

type candidato struct {
	fila int
	prod entity.Producto
}

// Import valida cada fila de forma independiente, inserta las válidas en una
// sola transacción (re-comprobando allí la existencia de las categorías) y
// devuelve insertados/fallidos más la lista de errores: primero los rechazos
// de validación en orden de fila, después los rechazos de la transacción.
func (uc *UseCase) Import(ctx context.Context, rows []Row) (*dto.BulkResult, error) {
	start := time.Now()
	batchID := uuid.New().String()

	res := &dto.BulkResult{Errores: []dto.BulkError{}}
	var candidatos []candidato

	for i, r := range rows {
		fila := i + 2 // 1-based más la fila de cabecera
		c, motivo := validarFila(r)
		if motivo != "" {
			res.Errores = append(res.Errores, dto.BulkError{Fila: fila, Motivo: motivo})
			continue
		}
		candidatos = append(candidatos, candidato{fila: fila, prod: *c})
	}
	res.Fallidos = len(res.Errores)

	if len(candidatos) > 0 {
		err := uc.tx.Run(ctx, func(repo Repo) error {
			return uc.insertarLote(ctx, repo, candidatos, res)
		})
		if err != nil {
			return nil, err
		}
	}

	uc.log.Info().
		Str("batch_id", batchID).
		Int("filas", len(rows)).
		Int("insertados", res.Insertados).
		Int("fallidos", res.Fallidos).
		Dur("duracion", time.Since(start)).
		Msg("carga masiva de productos")
	return res, nil
}

// insertarLote corre dentro de la transacción: una consulta resuelve qué
// categorías referidas existen y luego se intenta cada fila; los fallos de
// fila se registran y se continúa con la siguiente.
func (uc *UseCase) insertarLote(ctx context.Context, repo Repo, candidatos []candidato, res *dto.BulkResult) error {
	existing, err := repo.ExistingCategorias(ctx, idsCategorias(candidatos))
	if err != nil {
		return err
	}

	for i := range candidatos {
		c := &candidatos[i]
		if _, ok := existing[c.prod.IDCategoria]; !ok {
			res.Fallidos++
			res.Errores = append(res.Errores, dto.BulkError{
				Fila:   c.fila,
				Motivo: fmt.Sprintf("IdCategoria no existe: %d", c.prod.IDCategoria),
			})
			continue
		}
		if err := repo.Insert(ctx, &c.prod); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				res.Fallidos++
				res.Errores = append(res.Errores, dto.BulkError{Fila: c.fila, Motivo: "SKU duplicado"})
				continue
			}
			// Error no atribuible a la fila (conexión, etc.): aborta el lote.
			return err
		}
		res.Insertados++
	}
	return nil
}

// validarFila comprueba una fila de forma pura (sin I/O) y devuelve el
// producto normalizado o el primer motivo de rechazo de la fila.
func validarFila(r Row) (*entity.Producto, string) {
	nombre := strings.TrimSpace(r["nombre"])
	if nombre == "" {
		return nil, "Nombre es obligatorio"
	}

	precio, err := decimal.NewFromString(strings.TrimSpace(r["precio"]))
	if err != nil || !precio.IsPositive() {
		return nil, "Precio inválido (> 0)"
	}

	idCategoria, ok := parseEnteroCelda(valorCategoria(r))
	if !ok || idCategoria <= 0 {
		return nil, "IdCategoria inválido"
	}

	stock := int64(0)
	if s := strings.TrimSpace(r["stock"]); s != "" {
		stock, ok = parseEnteroCelda(s)
		if !ok || stock < 0 {
			return nil, "Stock inválido (>= 0)"
		}
	}

	return &entity.Producto{
		Nombre:      nombre,
		Descripcion: celdaOpcional(r["descripcion"]),
		SKU:         celdaOpcional(r["sku"]),
		Precio:      precio,
		Stock:       int(stock),
		Activo:      activoCelda(r["activo"]),
		IDCategoria: idCategoria,
	}, ""
}

// valorCategoria devuelve la primera columna de categoría presente según los
// alias aceptados.
func valorCategoria(r Row) string {
	for _, alias := range aliasCategoria {
		if v, ok := r[alias]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parseEnteroCelda acepta celdas "3" y "3.0" (los spreadsheets suelen
// renderizar enteros con parte decimal nula); rechaza fracciones reales.
func parseEnteroCelda(s string) (int64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}

// activoCelda mapeo total del booleano de celda: vacío → true (default),
// false/0/no → false, cualquier otra cosa → true.
func activoCelda(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

func celdaOpcional(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

func idsCategorias(candidatos []candidato) []int64 {
	seen := make(map[int64]struct{}, len(candidatos))
	ids := make([]int64, 0, len(candidatos))
	for _, c := range candidatos {
		if _, ok := seen[c.prod.IDCategoria]; ok {
			continue
		}
		seen[c.prod.IDCategoria] = struct{}{}
		ids = append(ids, c.prod.IDCategoria)
	}
	return ids
}
