package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/inventario"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ producto, sucursal int64 }

// almacen simula las tablas que toca el caso de uso. Los repos fake y el
// txRunner fake operan sobre la misma instancia.
type almacen struct {
	sucursales  map[int64]*entity.Sucursal
	productos   map[int64]repository.InventarioItem // datos de producto para los listados
	inventario  map[invKey]*entity.Inventario
	movimientos []*entity.Movimiento
	detalles    []*entity.MovimientoDetalle
	bloqueos    []invKey // filas pedidas con GetForUpdate, en orden
	nextID      int64
}

func nuevoAlmacen() *almacen {
	return &almacen{
		sucursales: map[int64]*entity.Sucursal{
			1: {ID: 1, Nombre: "Central"},
			2: {ID: 2, Nombre: "Norte"},
		},
		productos:  make(map[int64]repository.InventarioItem),
		inventario: make(map[invKey]*entity.Inventario),
	}
}

func (a *almacen) id() int64 {
	a.nextID++
	return a.nextID
}

// conProducto registra un producto y, si stock >= 0, su fila de inventario.
func (a *almacen) conProducto(id int64, codigo, nombre string, sucursal int64, stock, minimo int) {
	a.productos[id] = repository.InventarioItem{
		ProductoID:  id,
		Codigo:      codigo,
		Nombre:      nombre,
		CategoriaID: 1,
		Categoria:   "General",
		Precio:      decimal.NewFromInt(10),
	}
	if stock >= 0 {
		a.inventario[invKey{id, sucursal}] = &entity.Inventario{
			ID: a.id(), ProductoID: id, SucursalID: sucursal,
			StockActual: stock, StockMinimo: minimo,
		}
	}
}

type fakeSucursalRepo struct{ a *almacen }

func (r *fakeSucursalRepo) GetByID(id int64) (*entity.Sucursal, error) { return r.a.sucursales[id], nil }
func (r *fakeSucursalRepo) List() ([]*entity.Sucursal, error)         { return nil, nil }

type fakeInvRepo struct{ a *almacen }

func (r *fakeInvRepo) Get(productoID, sucursalID int64) (*entity.Inventario, error) {
	inv, ok := r.a.inventario[invKey{productoID, sucursalID}]
	if !ok {
		return nil, nil
	}
	copia := *inv
	return &copia, nil
}

func (r *fakeInvRepo) GetForUpdate(productoID, sucursalID int64) (*entity.Inventario, error) {
	r.a.bloqueos = append(r.a.bloqueos, invKey{productoID, sucursalID})
	return r.Get(productoID, sucursalID)
}

func (r *fakeInvRepo) Upsert(inv *entity.Inventario) error {
	k := invKey{inv.ProductoID, inv.SucursalID}
	if actual, ok := r.a.inventario[k]; ok {
		inv.ID = actual.ID
	} else if inv.ID == 0 {
		inv.ID = r.a.id()
	}
	copia := *inv
	r.a.inventario[k] = &copia
	return nil
}

func (r *fakeInvRepo) SetStock(productoID, sucursalID int64, stockActual int) error {
	inv, ok := r.a.inventario[invKey{productoID, sucursalID}]
	if !ok {
		return domain.ErrSinInventario
	}
	inv.StockActual = stockActual
	return nil
}

func (r *fakeInvRepo) ListBySucursal(sucursalID int64, filtro repository.InventarioFiltro) ([]repository.InventarioItem, error) {
	var items []repository.InventarioItem
	for k, inv := range r.a.inventario {
		if k.sucursal != sucursalID {
			continue
		}
		it := r.a.productos[k.producto]
		if filtro.CategoriaID != 0 && it.CategoriaID != filtro.CategoriaID {
			continue
		}
		it.InventarioID = inv.ID
		it.StockActual = inv.StockActual
		it.StockMinimo = inv.StockMinimo
		items = append(items, it)
	}
	return items, nil
}

func (r *fakeInvRepo) DeleteByProducto(productoID int64) error {
	for k := range r.a.inventario {
		if k.producto == productoID {
			delete(r.a.inventario, k)
		}
	}
	return nil
}

type fakeMovRepo struct{ a *almacen }

func (r *fakeMovRepo) Create(mov *entity.Movimiento) error {
	mov.ID = r.a.id()
	copia := *mov
	r.a.movimientos = append(r.a.movimientos, &copia)
	return nil
}

func (r *fakeMovRepo) CreateDetalle(det *entity.MovimientoDetalle) error {
	det.ID = r.a.id()
	copia := *det
	r.a.detalles = append(r.a.detalles, &copia)
	return nil
}

func (r *fakeMovRepo) ListByLote(lote string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.a.movimientos {
		if m.Lote == lote {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sobre el almacén y, si falla, restaura el
// estado previo para emular el rollback.
type fakeTxRunner struct{ a *almacen }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	respaldo := t.snapshot()
	if err := fn(&fakeMovRepo{t.a}, &fakeInvRepo{t.a}); err != nil {
		t.restore(respaldo)
		return err
	}
	return nil
}

type snapshot struct {
	inventario  map[invKey]entity.Inventario
	movimientos []*entity.Movimiento
	detalles    []*entity.MovimientoDetalle
}

func (t *fakeTxRunner) snapshot() snapshot {
	inv := make(map[invKey]entity.Inventario, len(t.a.inventario))
	for k, v := range t.a.inventario {
		inv[k] = *v
	}
	return snapshot{
		inventario:  inv,
		movimientos: append([]*entity.Movimiento(nil), t.a.movimientos...),
		detalles:    append([]*entity.MovimientoDetalle(nil), t.a.detalles...),
	}
}

func (t *fakeTxRunner) restore(s snapshot) {
	t.a.inventario = make(map[invKey]*entity.Inventario, len(s.inventario))
	for k, v := range s.inventario {
		copia := v
		t.a.inventario[k] = &copia
	}
	t.a.movimientos = s.movimientos
	t.a.detalles = s.detalles
}

func nuevoUseCase(a *almacen) *inventario.UseCase {
	return inventario.NewUseCase(&fakeTxRunner{a}, &fakeInvRepo{a}, &fakeMovRepo{a}, &fakeSucursalRepo{a})
}

func stock(a *almacen, producto, sucursal int64) int {
	inv, ok := a.inventario[invKey{producto, sucursal}]
	if !ok {
		return -1
	}
	return inv.StockActual
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos
// ──────────────────────────────────────────────────────────────────────────────

func TestIngresar_DescartaCantidadesNoPositivas(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 5, 0)
	a.conProducto(11, "A-02", "Azúcar", 1, 2, 0)
	uc := nuevoUseCase(a)

	out, err := uc.Ingresar(context.Background(), dto.IngresoRequest{
		SucursalID: 1,
		Items: []dto.IngresoItem{
			{ProductoID: 10, Cantidad: 3},
			{ProductoID: 11, Cantidad: 0},
			{ProductoID: 11, Cantidad: -4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Items, "solo la línea con cantidad positiva cuenta")
	assert.Equal(t, 8, stock(a, 10, 1))
	assert.Equal(t, 2, stock(a, 11, 1), "las líneas descartadas no tocan stock")
	assert.Len(t, a.movimientos, 1, "una sola cabecera por lote")
	assert.Len(t, a.detalles, 1)
	assert.Equal(t, entity.MovimientoIngreso, a.movimientos[0].Tipo)
	assert.NotEmpty(t, out.Lote)
}

func TestIngresar_LoteSinLineasValidas_NoEscribeNada(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 5, 0)
	uc := nuevoUseCase(a)

	_, err := uc.Ingresar(context.Background(), dto.IngresoRequest{
		SucursalID: 1,
		Items:      []dto.IngresoItem{{ProductoID: 10, Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrLoteVacio)
	assert.Equal(t, 5, stock(a, 10, 1))
	assert.Empty(t, a.movimientos)
}

func TestIngresar_ProductoSinFilaDeInventario_ArrancaDeCero(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, -1, 0) // sin fila de inventario
	uc := nuevoUseCase(a)

	_, err := uc.Ingresar(context.Background(), dto.IngresoRequest{
		SucursalID: 1,
		Items:      []dto.IngresoItem{{ProductoID: 10, Cantidad: 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, stock(a, 10, 1))
}

func TestIngresar_SucursalInexistente(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoUseCase(a)

	_, err := uc.Ingresar(context.Background(), dto.IngresoRequest{
		SucursalID: 99,
		Items:      []dto.IngresoItem{{ProductoID: 10, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTrasladar_MismaSucursal(t *testing.T) {
	a := nuevoAlmacen()
	uc := nuevoUseCase(a)

	_, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  1,
		SucursalDestino: 1,
		Items:           []dto.TrasladoItem{{ProductoID: 10, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrMismaSucursal)
}

func TestTrasladar_DebitaOrigenYAcreditaDestinoSinFila(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 10, 0) // solo en origen
	uc := nuevoUseCase(a)

	out, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  1,
		SucursalDestino: 2,
		Items:           []dto.TrasladoItem{{ProductoID: 10, Cantidad: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Aplicados)
	assert.Equal(t, 0, out.Fallidos)
	require.Len(t, out.Resultados, 1)
	assert.True(t, out.Resultados[0].Ok)
	assert.Equal(t, 6, out.Resultados[0].StockOrigen)
	assert.Equal(t, 4, out.Resultados[0].StockDestino)
	assert.Equal(t, 6, stock(a, 10, 1))
	assert.Equal(t, 4, stock(a, 10, 2), "el destino sin fila arranca en la cantidad trasladada")

	require.Len(t, a.movimientos, 1)
	mov := a.movimientos[0]
	assert.Equal(t, entity.MovimientoTraslado, mov.Tipo)
	require.NotNil(t, mov.SucursalOrigen)
	assert.Equal(t, int64(1), *mov.SucursalOrigen)
	assert.Equal(t, int64(2), mov.SucursalDestino)
	assert.Equal(t, "Traslado de 4 unidades", mov.Observaciones)
}

func TestTrasladar_LineaFallidaNoDetieneElResto(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, -1, 0) // sin inventario en origen
	a.conProducto(11, "A-02", "Azúcar", 1, 5, 0)
	uc := nuevoUseCase(a)

	out, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  1,
		SucursalDestino: 2,
		Items: []dto.TrasladoItem{
			{ProductoID: 10, Cantidad: 2},
			{ProductoID: 11, Cantidad: 3},
		},
	})
	require.NoError(t, err, "el lote no falla por una línea")

	assert.Equal(t, 1, out.Aplicados)
	assert.Equal(t, 1, out.Fallidos)
	require.Len(t, out.Resultados, 2)
	assert.False(t, out.Resultados[0].Ok)
	assert.Equal(t, domain.ErrSinInventario.Error(), out.Resultados[0].Error)
	assert.True(t, out.Resultados[1].Ok)

	assert.Equal(t, 2, stock(a, 11, 1))
	assert.Equal(t, 3, stock(a, 11, 2))
	assert.Len(t, a.movimientos, 1, "solo la línea aplicada deja cabecera")
	assert.Len(t, a.detalles, 1)
}

func TestTrasladar_StockInsuficiente_NoCambiaNada(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 2, 0)
	uc := nuevoUseCase(a)

	out, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  1,
		SucursalDestino: 2,
		Items:           []dto.TrasladoItem{{ProductoID: 10, Cantidad: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Fallidos)
	assert.Equal(t, domain.ErrInsufficientStock.Error(), out.Resultados[0].Error)
	assert.Equal(t, 2, stock(a, 10, 1), "el stock de origen queda intacto")
	assert.Equal(t, -1, stock(a, 10, 2), "no se crea fila en destino")
	assert.Empty(t, a.movimientos, "una línea revertida no deja cabecera")
}

func TestTrasladar_BloqueaFilasEnOrdenDeSucursal(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 2, 10, 0)
	a.conProducto(10, "A-01", "Arroz", 1, 3, 0)
	uc := nuevoUseCase(a)

	// Origen 2 → destino 1: aun así la sucursal menor se bloquea primero.
	out, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  2,
		SucursalDestino: 1,
		Items:           []dto.TrasladoItem{{ProductoID: 10, Cantidad: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Aplicados)

	require.Len(t, a.bloqueos, 2)
	assert.Equal(t, invKey{10, 1}, a.bloqueos[0])
	assert.Equal(t, invKey{10, 2}, a.bloqueos[1])

	assert.Equal(t, 6, stock(a, 10, 2))
	assert.Equal(t, 7, stock(a, 10, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos por lote
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_DevuelveLasCabecerasDelLote(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 5, 0)
	a.conProducto(11, "A-02", "Azúcar", 1, 5, 0)
	uc := nuevoUseCase(a)

	ingreso, err := uc.Ingresar(context.Background(), dto.IngresoRequest{
		SucursalID: 1,
		Items:      []dto.IngresoItem{{ProductoID: 10, Cantidad: 3}},
	})
	require.NoError(t, err)

	traslado, err := uc.Trasladar(context.Background(), dto.TrasladoRequest{
		SucursalOrigen:  1,
		SucursalDestino: 2,
		Items: []dto.TrasladoItem{
			{ProductoID: 10, Cantidad: 2},
			{ProductoID: 11, Cantidad: 1},
		},
	})
	require.NoError(t, err)

	movs, err := uc.Movimientos(ingreso.Lote)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoIngreso, movs[0].Tipo)
	assert.Nil(t, movs[0].SucursalOrigen)

	movs, err = uc.Movimientos(traslado.Lote)
	require.NoError(t, err)
	require.Len(t, movs, 2, "una cabecera por línea aplicada del traslado")
	for _, m := range movs {
		assert.Equal(t, entity.MovimientoTraslado, m.Tipo)
		require.NotNil(t, m.SucursalOrigen)
		assert.Equal(t, int64(1), *m.SucursalOrigen)
	}
}

func TestMovimientos_LoteDesconocido(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())

	_, err := uc.Movimientos("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscar_CodigoGanaSobreNombre(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "CAFE", "Filtro de café", 1, 3, 0)
	a.conProducto(11, "F-01", "Café molido", 1, 8, 0)
	uc := nuevoUseCase(a)

	out, err := uc.Buscar(1, 0, "café")
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ProductoID, "la igualdad de código manda sobre el substring del nombre")
	assert.Equal(t, 3, out.StockActual)
}

func TestBuscar_PorNombreSinTildes(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(11, "F-01", "Café molido", 1, 8, 0)
	uc := nuevoUseCase(a)

	out, err := uc.Buscar(1, 0, "cafe mol")
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ProductoID)
}

func TestBuscar_SinResultados(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(11, "F-01", "Café molido", 1, 8, 0)
	uc := nuevoUseCase(a)

	_, err := uc.Buscar(1, 0, "yerba")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListar_MarcaBajoMinimo(t *testing.T) {
	a := nuevoAlmacen()
	a.conProducto(10, "A-01", "Arroz", 1, 2, 5)
	a.conProducto(11, "A-02", "Azúcar", 1, 9, 5)
	uc := nuevoUseCase(a)

	out, err := uc.Listar(1, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	porProducto := map[int64]bool{}
	for _, it := range out.Items {
		porProducto[it.ProductoID] = it.BajoMinimo
	}
	assert.True(t, porProducto[10], "stock 2 con mínimo 5 está bajo mínimo")
	assert.False(t, porProducto[11])
}
