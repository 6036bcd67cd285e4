package query

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Límites de paginación del listado.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Tope de página: garantiza que (page-1)*pageSize no desborda int y el
	// offset resultante nunca es negativo.
	maxPage = math.MaxInt / MaxPageSize
)

// Raw son los query params crudos de la petición (clave → valor sin sanear).
// Las claves ausentes simplemente no están en el mapa.
type Raw map[string]string

// Filters son los predicados saneados del listado. Un puntero nil significa
// "sin filtro" (distinto de filtrar por el valor cero).
type Filters struct {
	Search      *string
	IDCategoria *int64
	PrecioMin   *decimal.Decimal
	PrecioMax   *decimal.Decimal
	Activo      *bool
}

// Sort es el ordenamiento saneado: Campo siempre pertenece al whitelist del
// llamador y Direccion es exactamente "asc" o "desc".
type Sort struct {
	Campo     string
	Direccion string
}

// Spec es la especificación saneada de un listado: filtros, orden y página.
// Es efímera (vive lo que dura la petición) y es lo único que llega a la capa
// de persistencia: el input crudo nunca cruza esta frontera.
type Spec struct {
	Filters  Filters
	Sort     Sort
	Page     int
	PageSize int
	Offset   int
}

// Pager ejecuta un listado filtrado contra el almacén: total de filas que
// cumplen los predicados (independiente de la página) más una página de items.
type Pager interface {
	ListPaged(ctx context.Context, spec Spec) (items []*entity.Producto, total int64, err error)
}

// Build sanea los query params crudos contra el whitelist de columnas de
// orden del llamador. Nunca falla: todo valor ausente o malformado cae al
// valor por defecto o al predicado ausente.
func Build(raw Raw, allowed []string, def Sort) Spec {
	page := parsePage(raw["page"])
	size := clamp(parseIntOr(raw["pageSize"], DefaultPageSize), 1, MaxPageSize)
	return Spec{
		Filters:  buildFilters(raw),
		Sort:     buildSort(raw, allowed, def),
		Page:     page,
		PageSize: size,
		Offset:   (page - 1) * size,
	}
}

func buildFilters(raw Raw) Filters {
	var f Filters

	if v := strings.TrimSpace(raw["search"]); v != "" {
		f.Search = &v
	}
	if v := strings.TrimSpace(raw["idCategoria"]); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.IDCategoria = &id
		}
	}
	f.PrecioMin = parseDecimal(raw["precioMin"])
	f.PrecioMax = parseDecimal(raw["precioMax"])
	f.Activo = ParseBool(raw["activo"])
	return f
}

// buildSort aplica el whitelist. Una columna fuera del whitelist descarta
// también la dirección pedida: se devuelve el orden por defecto completo.
// Esta comprobación es la única defensa contra inyección por columna.
func buildSort(raw Raw, allowed []string, def Sort) Sort {
	campo := raw["sortBy"]
	if campo == "" {
		campo = def.Campo
	}
	ok := false
	for _, a := range allowed {
		if campo == a {
			ok = true
			break
		}
	}
	if !ok {
		return def
	}

	dir := strings.ToLower(raw["sortDir"])
	if dir != "asc" && dir != "desc" {
		dir = def.Direccion
	}
	return Sort{Campo: campo, Direccion: dir}
}

// ParseBool interpreta un booleano tri-estado desde texto: true/1/yes → true,
// false/0/no → false, cualquier otra cosa (incluida la ausencia) → nil,
// que significa "sin filtro" y es distinto de false.
func ParseBool(s string) *bool {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "true", "1", "yes":
		t := true
		return &t
	case "false", "0", "no":
		f := false
		return &f
	default:
		return nil
	}
}

func parseDecimal(s string) *decimal.Decimal {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return clamp(n, 1, maxPage)
}

func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
