package inventario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/catalogo"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// UseCase opera el stock por sucursal: listados, búsqueda para la pantalla
// de ventas, ingresos de mercadería y traslados entre sucursales.
type UseCase struct {
	txRunner     TxRunner
	invRepo      repository.InventarioRepository
	movRepo      repository.MovimientoRepository
	sucursalRepo repository.SucursalRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.InventarioRepository,
	movRepo repository.MovimientoRepository,
	sucursalRepo repository.SucursalRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		invRepo:      invRepo,
		movRepo:      movRepo,
		sucursalRepo: sucursalRepo,
	}
}

// Listar devuelve el inventario de la sucursal, opcionalmente filtrado por
// categoría, con la marca de bajo mínimo calculada.
func (uc *UseCase) Listar(sucursalID, categoriaID int64) (*dto.InventarioListResponse, error) {
	if sucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.invRepo.ListBySucursal(sucursalID, repository.InventarioFiltro{CategoriaID: categoriaID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventarioItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return &dto.InventarioListResponse{Items: out}, nil
}

// Buscar resuelve un producto para la pantalla de ventas por código o nombre,
// sin distinguir mayúsculas ni tildes, dentro de la categoría elegida.
// El código gana sobre el nombre cuando ambos coinciden.
func (uc *UseCase) Buscar(sucursalID, categoriaID int64, q string) (*dto.BuscarProductoResponse, error) {
	if sucursalID == 0 || q == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.invRepo.ListBySucursal(sucursalID, repository.InventarioFiltro{CategoriaID: categoriaID})
	if err != nil {
		return nil, err
	}
	var porNombre *repository.InventarioItem
	for i := range items {
		it := items[i]
		if catalogo.Normalizar(it.Codigo) == catalogo.Normalizar(q) {
			return toBuscarResponse(it), nil
		}
		if porNombre == nil && catalogo.Coincide(q, it.Codigo, it.Nombre) {
			porNombre = &items[i]
		}
	}
	if porNombre != nil {
		return toBuscarResponse(*porNombre), nil
	}
	return nil, domain.ErrNotFound
}

// Ingresar registra un ingreso de mercadería multi-producto: una cabecera de
// movimiento, una línea de detalle por producto y el incremento de stock,
// todo en una sola transacción. Las cantidades <= 0 se descartan; si no queda
// ninguna línea válida no se escribe nada.
func (uc *UseCase) Ingresar(ctx context.Context, in dto.IngresoRequest) (*dto.IngresoResponse, error) {
	if in.SucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	sucursal, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, domain.ErrNotFound
	}

	validos := make([]dto.IngresoItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Cantidad > 0 {
			validos = append(validos, it)
		}
	}
	if len(validos) == 0 {
		return nil, domain.ErrLoteVacio
	}

	lote := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error {
		mov := &entity.Movimiento{
			Lote:            lote,
			SucursalDestino: in.SucursalID,
			Tipo:            entity.MovimientoIngreso,
			Observaciones:   in.Observaciones,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		for _, it := range validos {
			det := &entity.MovimientoDetalle{
				MovimientoID: mov.ID,
				ProductoID:   it.ProductoID,
				Cantidad:     it.Cantidad,
			}
			if err := movRepo.CreateDetalle(det); err != nil {
				return err
			}
			// Bloquea la fila de stock; si el producto aún no tiene
			// inventario en la sucursal, arranca de cero.
			inv, err := invRepo.GetForUpdate(it.ProductoID, in.SucursalID)
			if err != nil {
				return err
			}
			if inv == nil {
				inv = &entity.Inventario{ProductoID: it.ProductoID, SucursalID: in.SucursalID}
			}
			inv.StockActual += it.Cantidad
			if err := invRepo.Upsert(inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.IngresoResponse{Lote: lote, Items: len(validos)}, nil
}

// Trasladar mueve stock entre sucursales producto por producto. Cada línea
// corre en su propia transacción: una línea fallida (sin inventario en
// origen, stock insuficiente) se reporta y no detiene al resto del lote.
func (uc *UseCase) Trasladar(ctx context.Context, in dto.TrasladoRequest) (*dto.TrasladoResponse, error) {
	if in.SucursalOrigen == 0 || in.SucursalDestino == 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SucursalOrigen == in.SucursalDestino {
		return nil, domain.ErrMismaSucursal
	}
	for _, suc := range []int64{in.SucursalOrigen, in.SucursalDestino} {
		s, err := uc.sucursalRepo.GetByID(suc)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
	}

	lote := uuid.New().String()
	resp := &dto.TrasladoResponse{Lote: lote}
	for _, it := range in.Items {
		res := dto.TrasladoResultado{ProductoID: it.ProductoID, Cantidad: it.Cantidad}
		if it.Cantidad <= 0 {
			res.Error = domain.ErrInvalidInput.Error()
			resp.Fallidos++
			resp.Resultados = append(resp.Resultados, res)
			continue
		}
		err := uc.trasladarItem(ctx, lote, in.SucursalOrigen, in.SucursalDestino, it, &res)
		if err != nil {
			res.Error = err.Error()
			resp.Fallidos++
		} else {
			res.Ok = true
			resp.Aplicados++
		}
		resp.Resultados = append(resp.Resultados, res)
	}
	return resp, nil
}

// trasladarItem ejecuta los cuatro pasos de una línea (cabecera, detalle,
// débito en origen, crédito en destino) dentro de una transacción.
func (uc *UseCase) trasladarItem(
	ctx context.Context,
	lote string,
	origen, destino int64,
	it dto.TrasladoItem,
	res *dto.TrasladoResultado,
) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error {
		// Bloquea ambas filas en orden de sucursal: dos traslados opuestos
		// del mismo producto nunca se esperan en círculo.
		orden := []int64{origen, destino}
		if destino < origen {
			orden = []int64{destino, origen}
		}
		filas := make(map[int64]*entity.Inventario, 2)
		for _, suc := range orden {
			inv, err := invRepo.GetForUpdate(it.ProductoID, suc)
			if err != nil {
				return err
			}
			filas[suc] = inv
		}

		invOrigen := filas[origen]
		if invOrigen == nil {
			return domain.ErrSinInventario
		}
		if invOrigen.StockActual < it.Cantidad {
			return domain.ErrInsufficientStock
		}

		mov := &entity.Movimiento{
			Lote:            lote,
			SucursalOrigen:  &origen,
			SucursalDestino: destino,
			Tipo:            entity.MovimientoTraslado,
			Observaciones:   fmt.Sprintf("Traslado de %d unidades", it.Cantidad),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		det := &entity.MovimientoDetalle{
			MovimientoID: mov.ID,
			ProductoID:   it.ProductoID,
			Cantidad:     it.Cantidad,
		}
		if err := movRepo.CreateDetalle(det); err != nil {
			return err
		}

		invOrigen.StockActual -= it.Cantidad
		if err := invRepo.SetStock(it.ProductoID, origen, invOrigen.StockActual); err != nil {
			return err
		}

		invDestino := filas[destino]
		if invDestino == nil {
			invDestino = &entity.Inventario{ProductoID: it.ProductoID, SucursalID: destino}
		}
		invDestino.StockActual += it.Cantidad
		if err := invRepo.Upsert(invDestino); err != nil {
			return err
		}

		res.StockOrigen = invOrigen.StockActual
		res.StockDestino = invDestino.StockActual
		return nil
	})
}

// Movimientos devuelve las cabeceras registradas bajo un lote, para auditar
// qué dejó un ingreso o un traslado.
func (uc *UseCase) Movimientos(lote string) ([]dto.MovimientoResponse, error) {
	if lote == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListByLote(lote)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovimientoResponse{
			ID:              m.ID,
			Lote:            m.Lote,
			SucursalOrigen:  m.SucursalOrigen,
			SucursalDestino: m.SucursalDestino,
			Tipo:            m.Tipo,
			Observaciones:   m.Observaciones,
			Fecha:           m.Fecha,
		})
	}
	return out, nil
}

func toItemResponse(it repository.InventarioItem) dto.InventarioItemResponse {
	inv := entity.Inventario{StockActual: it.StockActual, StockMinimo: it.StockMinimo}
	return dto.InventarioItemResponse{
		InventarioID: it.InventarioID,
		ProductoID:   it.ProductoID,
		Codigo:       it.Codigo,
		Nombre:       it.Nombre,
		Descripcion:  it.Descripcion,
		CategoriaID:  it.CategoriaID,
		Categoria:    it.Categoria,
		Precio:       it.Precio,
		Costo:        it.Costo,
		FechaIngreso: it.FechaIngreso,
		StockActual:  it.StockActual,
		StockMinimo:  it.StockMinimo,
		BajoMinimo:   inv.BajoMinimo(),
	}
}

func toBuscarResponse(it repository.InventarioItem) *dto.BuscarProductoResponse {
	return &dto.BuscarProductoResponse{
		ProductoID:  it.ProductoID,
		Codigo:      it.Codigo,
		Nombre:      it.Nombre,
		CategoriaID: it.CategoriaID,
		Categoria:   it.Categoria,
		Precio:      it.Precio,
		StockActual: it.StockActual,
	}
}
