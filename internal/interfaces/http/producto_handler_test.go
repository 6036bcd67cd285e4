package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestProductos_CrearYLeer(t *testing.T) {
	env := newTestApp(t).conCategoria(entity.Categoria{ID: 1, Nombre: "Hogar", Activo: true})

	status, body := doJSON(t, env.app, http.MethodPost, "/api/productos", map[string]any{
		"nombre":      "Lámpara",
		"precio":      "45.90",
		"stock":       10,
		"sku":         "LAM-1",
		"idCategoria": 1,
	})
	require.Equal(t, http.StatusCreated, status)
	item := body["item"].(map[string]any)
	assert.Equal(t, float64(1), item["idProducto"])
	assert.Equal(t, "45.9", item["precio"], "decimal serializa como string JSON")
	assert.Equal(t, "Hogar", item["categoriaNombre"], "la lectura resuelve el nombre de la categoría")

	status, body = doJSON(t, env.app, http.MethodGet, "/api/productos/1", nil)
	require.Equal(t, http.StatusOK, status)
	item = body["item"].(map[string]any)
	assert.Equal(t, "Lámpara", item["nombre"])
}

// La categoría inexistente es un 400 del payload, no un conflicto.
func TestProductos_CategoriaInexistenteDevuelve400(t *testing.T) {
	env := newTestApp(t)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/productos", map[string]any{
		"nombre":      "Lámpara",
		"precio":      10,
		"idCategoria": 99,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "La categoría no existe", body["message"])
}

func TestProductos_SKUDuplicadoDevuelve409(t *testing.T) {
	env := newTestApp(t).conCategoria(entity.Categoria{ID: 1, Nombre: "Hogar", Activo: true})

	carga := map[string]any{"nombre": "Lámpara", "precio": 10, "sku": "LAM-1", "idCategoria": 1}
	status, _ := doJSON(t, env.app, http.MethodPost, "/api/productos", carga)
	require.Equal(t, http.StatusCreated, status)

	carga["nombre"] = "Otra Lámpara"
	status, body := doJSON(t, env.app, http.MethodPost, "/api/productos", carga)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Conflicto: registro duplicado", body["message"])
}

func TestProductos_NoEncontradoDevuelve404(t *testing.T) {
	env := newTestApp(t)

	status, body := doJSON(t, env.app, http.MethodGet, "/api/productos/42", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Producto no encontrado", body["message"])
}

func TestProductos_ValidacionAcumulada(t *testing.T) {
	env := newTestApp(t)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/productos", map[string]any{
		"nombre": "Lámpara 3000",
		"precio": "10,50",
		"stock":  -1,
	})
	require.Equal(t, http.StatusBadRequest, status)
	details := body["details"].([]any)
	assert.Len(t, details, 4, "nombre, precio, stock y categoría fallan juntos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

// Lo que cruza al repositorio tras un sortBy malicioso es el orden por
// defecto, nunca el texto crudo.
func TestProductos_ListadoSaneaElOrden(t *testing.T) {
	env := newTestApp(t)

	status, body := doJSON(t, env.app, http.MethodGet,
		"/api/productos?sortBy=precio%3B%20DROP%20TABLE%20productos&sortDir=asc&page=-2&pageSize=9999", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(100), body["pageSize"])

	require.NotNil(t, env.productos.ultimaSpec)
	assert.Equal(t, query.Sort{Campo: "fechaCreacion", Direccion: "desc"}, env.productos.ultimaSpec.Sort)
}

func TestProductos_ListadoConFiltros(t *testing.T) {
	env := newTestApp(t).conCategoria(entity.Categoria{ID: 1, Nombre: "Hogar", Activo: true})
	for _, nombre := range []string{"Lámpara", "Velador", "Lámpara de pie"} {
		status, _ := doJSON(t, env.app, http.MethodPost, "/api/productos", map[string]any{
			"nombre": nombre, "precio": 10, "idCategoria": 1,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, env.app, http.MethodGet, "/api/productos?search=l%C3%A1mpara", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["items"], 2)

	spec := env.productos.ultimaSpec
	require.NotNil(t, spec)
	require.NotNil(t, spec.Filters.Search)
	assert.Equal(t, "lámpara", *spec.Filters.Search)
}

func TestProductos_UpdateYBaja(t *testing.T) {
	env := newTestApp(t).conCategoria(entity.Categoria{ID: 1, Nombre: "Hogar", Activo: true})
	status, _ := doJSON(t, env.app, http.MethodPost, "/api/productos", map[string]any{
		"nombre": "Lámpara", "precio": 10, "idCategoria": 1,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, env.app, http.MethodPut, "/api/productos/1", map[string]any{
		"precio": "12.50",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "12.5", body["item"].(map[string]any)["precio"])

	status, body = doJSON(t, env.app, http.MethodDelete, "/api/productos/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Producto eliminado", body["message"])
	assert.False(t, env.productos.datos[1].Activo)
}
