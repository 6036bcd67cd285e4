package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/bulkload"
	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Fakes en memoria que implementan los puertos de persistencia. Los handlers
// se prueban de punta a punta: HTTP → handler → caso de uso → fake.

type memCategoriaRepo struct {
	seq   int64
	datos map[int64]entity.Categoria
}

func (m *memCategoriaRepo) List(_ context.Context, activo *bool) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range m.datos {
		if activo != nil && c.Activo != *activo {
			continue
		}
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (m *memCategoriaRepo) GetByID(_ context.Context, id int64) (*entity.Categoria, error) {
	c, ok := m.datos[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCategoriaRepo) FindByNombre(_ context.Context, nombre string) (*entity.Categoria, error) {
	for _, c := range m.datos {
		if c.Nombre == nombre {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCategoriaRepo) Create(_ context.Context, c *entity.Categoria) (int64, error) {
	m.seq++
	nuevo := *c
	nuevo.ID = m.seq
	nuevo.FechaCreacion = time.Now()
	nuevo.FechaModificacion = nuevo.FechaCreacion
	m.datos[nuevo.ID] = nuevo
	return nuevo.ID, nil
}

func (m *memCategoriaRepo) Update(_ context.Context, c *entity.Categoria) error {
	m.datos[c.ID] = *c
	return nil
}

func (m *memCategoriaRepo) SoftDelete(_ context.Context, id int64) error {
	c := m.datos[id]
	c.Activo = false
	m.datos[id] = c
	return nil
}

type memProductoRepo struct {
	seq   int64
	datos map[int64]entity.Producto
	cats  *memCategoriaRepo

	ultimaSpec *query.Spec
}

func (m *memProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := m.datos[id]
	if !ok {
		return nil, nil
	}
	if c, ok := m.cats.datos[p.IDCategoria]; ok {
		p.CategoriaNombre = c.Nombre
	}
	return &p, nil
}

func (m *memProductoRepo) Create(_ context.Context, p *entity.Producto) (int64, error) {
	if p.SKU != nil {
		for _, otro := range m.datos {
			if otro.SKU != nil && *otro.SKU == *p.SKU {
				return 0, domain.ErrDuplicate
			}
		}
	}
	m.seq++
	nuevo := *p
	nuevo.ID = m.seq
	nuevo.FechaCreacion = time.Now()
	nuevo.FechaModificacion = nuevo.FechaCreacion
	m.datos[nuevo.ID] = nuevo
	return nuevo.ID, nil
}

func (m *memProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	m.datos[p.ID] = *p
	return nil
}

func (m *memProductoRepo) SoftDelete(_ context.Context, id int64) error {
	p := m.datos[id]
	p.Activo = false
	m.datos[id] = p
	return nil
}

// ListPaged registra la especificación recibida y devuelve todo sin paginar
// de verdad; los tests del builder cubren el saneo fino.
func (m *memProductoRepo) ListPaged(_ context.Context, spec query.Spec) ([]*entity.Producto, int64, error) {
	m.ultimaSpec = &spec
	var out []*entity.Producto
	for _, p := range m.datos {
		if spec.Filters.Activo != nil && p.Activo != *spec.Filters.Activo {
			continue
		}
		if spec.Filters.Search != nil && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(*spec.Filters.Search)) {
			continue
		}
		p := p
		out = append(out, &p)
	}
	return out, int64(len(out)), nil
}

// memTxRunner atado al repo de productos: simula la transacción del lote.
type memTxRunner struct {
	productos *memProductoRepo
}

func (m *memTxRunner) Run(_ context.Context, fn func(repo bulkload.Repo) error) error {
	return fn(m)
}

func (m *memTxRunner) ExistingCategorias(_ context.Context, ids []int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{})
	for _, id := range ids {
		if _, ok := m.productos.cats.datos[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (m *memTxRunner) Insert(ctx context.Context, p *entity.Producto) error {
	_, err := m.productos.Create(ctx, p)
	return err
}

type testEnv struct {
	app        *fiber.App
	categorias *memCategoriaRepo
	productos  *memProductoRepo
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	cats := &memCategoriaRepo{datos: make(map[int64]entity.Categoria)}
	prods := &memProductoRepo{datos: make(map[int64]entity.Producto), cats: cats}
	log := logger.New(logger.Config{Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoriaUC: usecase.NewCategoriaUseCase(cats),
		ProductoUC:  usecase.NewProductoUseCase(prods, cats, prods),
		BulkUC:      bulkload.NewUseCase(&memTxRunner{productos: prods}, log),
		Log:         log,
	})
	return &testEnv{app: app, categorias: cats, productos: prods}
}

func (e *testEnv) conCategoria(c entity.Categoria) *testEnv {
	if c.ID > e.categorias.seq {
		e.categorias.seq = c.ID
	}
	e.categorias.datos[c.ID] = c
	return e
}

// doJSON ejecuta una petición con body JSON y decodifica la respuesta en un
// mapa genérico.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// doUpload ejecuta la carga masiva con un archivo adjunto en el campo dado.
func doUpload(t *testing.T, app *fiber.App, campo, filename, contenido string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if campo != "" {
		fw, err := w.CreateFormFile(campo, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(contenido))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/productosMasivo", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}
