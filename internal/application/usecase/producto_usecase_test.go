package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/usecase"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ producto, sucursal int64 }

type catalogoStore struct {
	productos  map[int64]*entity.Producto
	codigos    map[string]int64
	inventario map[invKey]*entity.Inventario
	nextID     int64
}

func nuevoStore() *catalogoStore {
	return &catalogoStore{
		productos:  make(map[int64]*entity.Producto),
		codigos:    make(map[string]int64),
		inventario: make(map[invKey]*entity.Inventario),
	}
}

type fakeProductoRepo struct{ s *catalogoStore }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	if _, ok := r.s.codigos[p.Codigo]; ok {
		return domain.ErrDuplicate
	}
	r.s.nextID++
	p.ID = r.s.nextID
	copia := *p
	r.s.productos[p.ID] = &copia
	r.s.codigos[p.Codigo] = p.ID
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	id, ok := r.s.codigos[codigo]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	actual, ok := r.s.productos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if id, dup := r.s.codigos[p.Codigo]; dup && id != p.ID {
		return domain.ErrDuplicate
	}
	delete(r.s.codigos, actual.Codigo)
	copia := *p
	r.s.productos[p.ID] = &copia
	r.s.codigos[p.Codigo] = p.ID
	return nil
}

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.s.productos))
	for id := int64(1); id <= r.s.nextID; id++ {
		if p, ok := r.s.productos[id]; ok {
			copia := *p
			out = append(out, &copia)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductoRepo) Delete(id int64) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.s.codigos, p.Codigo)
	delete(r.s.productos, id)
	return nil
}

type fakeInvRepo struct{ s *catalogoStore }

func (r *fakeInvRepo) Get(productoID, sucursalID int64) (*entity.Inventario, error) {
	inv, ok := r.s.inventario[invKey{productoID, sucursalID}]
	if !ok {
		return nil, nil
	}
	copia := *inv
	return &copia, nil
}

func (r *fakeInvRepo) GetForUpdate(productoID, sucursalID int64) (*entity.Inventario, error) {
	return r.Get(productoID, sucursalID)
}

func (r *fakeInvRepo) Upsert(inv *entity.Inventario) error {
	copia := *inv
	r.s.inventario[invKey{inv.ProductoID, inv.SucursalID}] = &copia
	return nil
}

func (r *fakeInvRepo) SetStock(productoID, sucursalID int64, stockActual int) error {
	inv, ok := r.s.inventario[invKey{productoID, sucursalID}]
	if !ok {
		return domain.ErrSinInventario
	}
	inv.StockActual = stockActual
	return nil
}

func (r *fakeInvRepo) ListBySucursal(int64, repository.InventarioFiltro) ([]repository.InventarioItem, error) {
	return nil, nil
}

func (r *fakeInvRepo) DeleteByProducto(productoID int64) error {
	for k := range r.s.inventario {
		if k.producto == productoID {
			delete(r.s.inventario, k)
		}
	}
	return nil
}

type fakeCategoriaRepo struct{}

func (r *fakeCategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	if id == 1 {
		return &entity.Categoria{ID: 1, Nombre: "Abarrotes"}, nil
	}
	return nil, nil
}

func (r *fakeCategoriaRepo) List() ([]*entity.Categoria, error) {
	return []*entity.Categoria{{ID: 1, Nombre: "Abarrotes"}}, nil
}

type fakeSucursalRepo struct{}

func (r *fakeSucursalRepo) GetByID(id int64) (*entity.Sucursal, error) {
	if id == 1 {
		return &entity.Sucursal{ID: 1, Nombre: "Central"}, nil
	}
	return nil, nil
}

func (r *fakeSucursalRepo) List() ([]*entity.Sucursal, error) {
	return []*entity.Sucursal{{ID: 1, Nombre: "Central"}}, nil
}

// fakeTxRunner ejecuta el callback y deshace los cambios si falla.
type fakeTxRunner struct{ s *catalogoStore }

func (t *fakeTxRunner) RunCatalogo(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	prev := t.snapshot()
	if err := fn(&fakeProductoRepo{t.s}, &fakeInvRepo{t.s}); err != nil {
		t.restore(prev)
		return err
	}
	return nil
}

func (t *fakeTxRunner) snapshot() *catalogoStore {
	prev := nuevoStore()
	prev.nextID = t.s.nextID
	for id, p := range t.s.productos {
		copia := *p
		prev.productos[id] = &copia
	}
	for cod, id := range t.s.codigos {
		prev.codigos[cod] = id
	}
	for k, inv := range t.s.inventario {
		copia := *inv
		prev.inventario[k] = &copia
	}
	return prev
}

func (t *fakeTxRunner) restore(prev *catalogoStore) {
	*t.s = *prev
}

func nuevoUseCase(s *catalogoStore) *usecase.ProductoUseCase {
	return usecase.NewProductoUseCase(
		&fakeTxRunner{s},
		&fakeProductoRepo{s},
		&fakeCategoriaRepo{},
		&fakeSucursalRepo{},
	)
}

func crearRequest() dto.CreateProductoRequest {
	return dto.CreateProductoRequest{
		Codigo:      "AB-01",
		Nombre:      "Arroz Grano de Oro",
		CategoriaID: 1,
		Precio:      decimal.NewFromInt(20),
		Costo:       decimal.NewFromInt(14),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NormalizaElCodigo(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.Codigo = "  ab-01 "
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "AB-01", out.Codigo, "mayúsculas y sin espacios en los bordes")
	assert.NotZero(t, out.ID)
}

func TestCreate_CodigoConEspaciosInternos(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.Codigo = "AB 01"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrCodigoConEspacios)
	assert.Empty(t, s.productos)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	_, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	in := crearRequest()
	in.Codigo = "ab-01" // mismo código tras normalizar
	in.Nombre = "Otro producto"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.productos, 1)
}

func TestCreate_ConInventarioInicial(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.InventarioInicial = &dto.InventarioInicial{SucursalID: 1, Stock: 25, StockMinimo: 5}
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	inv, ok := s.inventario[invKey{out.ID, 1}]
	require.True(t, ok, "el alta crea la fila de inventario")
	assert.Equal(t, 25, inv.StockActual)
	assert.Equal(t, 5, inv.StockMinimo)
}

func TestCreate_InventarioInicialEnSucursalInexistente(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.InventarioInicial = &dto.InventarioInicial{SucursalID: 99, Stock: 25}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.productos, "no se crea el producto sin sucursal válida")
}

func TestCreate_CategoriaInexistente(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.CategoriaID = 42
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_PrecioNegativo(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.Precio = decimal.NewFromInt(-1)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByCodigo_NormalizaLaConsulta(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	creado, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	out, err := uc.GetByCodigo(" ab-01 ")
	require.NoError(t, err)
	require.NotNil(t, out, "la consulta se normaliza igual que el alta")
	assert.Equal(t, creado.ID, out.ID)

	out, err = uc.GetByCodigo("ZZ-99")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloLosCamposEnviados(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	creado, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	precio := decimal.NewFromInt(22)
	out, err := uc.Update(creado.ID, dto.UpdateProductoRequest{Precio: &precio})
	require.NoError(t, err)

	assert.True(t, out.Precio.Equal(precio))
	assert.Equal(t, creado.Codigo, out.Codigo, "los campos no enviados no cambian")
	assert.Equal(t, creado.Nombre, out.Nombre)
}

func TestUpdate_RenormalizaElCodigo(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	creado, err := uc.Create(context.Background(), crearRequest())
	require.NoError(t, err)

	codigo := " ab-02 "
	out, err := uc.Update(creado.ID, dto.UpdateProductoRequest{Codigo: &codigo})
	require.NoError(t, err)
	assert.Equal(t, "AB-02", out.Codigo)

	conEspacio := "AB 03"
	_, err = uc.Update(creado.ID, dto.UpdateProductoRequest{Codigo: &conEspacio})
	assert.ErrorIs(t, err, domain.ErrCodigoConEspacios)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	out, err := uc.Update(99, dto.UpdateProductoRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDelete_EliminaElInventarioDelProducto(t *testing.T) {
	s := nuevoStore()
	uc := nuevoUseCase(s)

	in := crearRequest()
	in.InventarioInicial = &dto.InventarioInicial{SucursalID: 1, Stock: 10}
	creado, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), creado.ID))
	assert.Empty(t, s.productos)
	assert.Empty(t, s.inventario, "el stock del producto se va con él")
}
