package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Copian en entrada y salida
// para que los tests no compartan punteros con el "almacén".

type fakeCategoriaRepo struct {
	seq   int64
	datos map[int64]entity.Categoria
}

func newFakeCategoriaRepo(iniciales ...entity.Categoria) *fakeCategoriaRepo {
	f := &fakeCategoriaRepo{datos: make(map[int64]entity.Categoria)}
	for _, c := range iniciales {
		if c.ID > f.seq {
			f.seq = c.ID
		}
		f.datos[c.ID] = c
	}
	return f
}

func (f *fakeCategoriaRepo) List(_ context.Context, activo *bool) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.datos {
		if activo != nil && c.Activo != *activo {
			continue
		}
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCategoriaRepo) GetByID(_ context.Context, id int64) (*entity.Categoria, error) {
	c, ok := f.datos[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoriaRepo) FindByNombre(_ context.Context, nombre string) (*entity.Categoria, error) {
	for _, c := range f.datos {
		if c.Nombre == nombre {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoriaRepo) Create(_ context.Context, c *entity.Categoria) (int64, error) {
	f.seq++
	nuevo := *c
	nuevo.ID = f.seq
	nuevo.FechaCreacion = time.Now()
	nuevo.FechaModificacion = nuevo.FechaCreacion
	f.datos[nuevo.ID] = nuevo
	return nuevo.ID, nil
}

func (f *fakeCategoriaRepo) Update(_ context.Context, c *entity.Categoria) error {
	actual := *c
	actual.FechaModificacion = time.Now()
	f.datos[c.ID] = actual
	return nil
}

func (f *fakeCategoriaRepo) SoftDelete(_ context.Context, id int64) error {
	c := f.datos[id]
	c.Activo = false
	c.FechaModificacion = time.Now()
	f.datos[id] = c
	return nil
}

type fakeProductoRepo struct {
	seq   int64
	datos map[int64]entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{datos: make(map[int64]entity.Producto)}
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := f.datos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) (int64, error) {
	f.seq++
	nuevo := *p
	nuevo.ID = f.seq
	nuevo.FechaCreacion = time.Now()
	nuevo.FechaModificacion = nuevo.FechaCreacion
	f.datos[nuevo.ID] = nuevo
	return nuevo.ID, nil
}

func (f *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	actual := *p
	actual.FechaModificacion = time.Now()
	f.datos[p.ID] = actual
	return nil
}

func (f *fakeProductoRepo) SoftDelete(_ context.Context, id int64) error {
	p := f.datos[id]
	p.Activo = false
	p.FechaModificacion = time.Now()
	f.datos[id] = p
	return nil
}

// fakePager captura la especificación saneada que le llega y devuelve una
// respuesta fija. Sirve para comprobar qué cruza la frontera de persistencia.
type fakePager struct {
	ultimaSpec query.Spec
	items      []*entity.Producto
	total      int64
}

func (f *fakePager) ListPaged(_ context.Context, spec query.Spec) ([]*entity.Producto, int64, error) {
	f.ultimaSpec = spec
	return f.items, f.total, nil
}
