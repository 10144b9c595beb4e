package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// UseCase registra ventas de caja y lista las del día.
type UseCase struct {
	txRunner     TxRunner
	ventaRepo    repository.VentaRepository
	invRepo      repository.InventarioRepository
	productoRepo repository.ProductoRepository
	vendedorRepo repository.VendedorRepository
	loc          *time.Location
}

// NewUseCase construye el caso de uso. loc es la zona horaria de operación
// de las sucursales.
func NewUseCase(
	txRunner TxRunner,
	ventaRepo repository.VentaRepository,
	invRepo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
	vendedorRepo repository.VendedorRepository,
	loc *time.Location,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		ventaRepo:    ventaRepo,
		invRepo:      invRepo,
		productoRepo: productoRepo,
		vendedorRepo: vendedorRepo,
		loc:          loc,
	}
}

// Registrar cobra el carrito. Cada línea corre en su propia transacción:
// se bloquea la fila de stock (SELECT FOR UPDATE), se reverifica que alcance,
// se inserta una fila de venta POR UNIDAD (el descuento de la línea viaja en
// la primera) y se debita el stock por el total de la línea. Si una línea no
// tiene stock al momento de confirmar, esa línea se revierte y la operación
// se corta ahí.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	if in.SucursalID == 0 || in.VendedorID == 0 || len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendedor, err := uc.vendedorRepo.GetByID(in.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil || vendedor.SucursalID != in.SucursalID {
		return nil, domain.ErrNotFound
	}

	// Valida todas las líneas contra el stock visible antes de escribir nada.
	productos := make(map[int64]*entity.Producto, len(in.Lineas))
	for _, linea := range in.Lineas {
		if linea.Cantidad < 1 || linea.Descuento.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productoRepo.GetByID(linea.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		productos[linea.ProductoID] = p
		inv, err := uc.invRepo.Get(linea.ProductoID, in.SucursalID)
		if err != nil {
			return nil, err
		}
		if inv == nil || inv.StockActual < linea.Cantidad {
			return nil, fmt.Errorf("%s: %w", p.Nombre, domain.ErrInsufficientStock)
		}
	}

	resp := &dto.RegistrarVentaResponse{Total: decimal.Zero}
	for _, linea := range in.Lineas {
		p := productos[linea.ProductoID]
		subtotal, filas, err := uc.registrarLinea(ctx, in.SucursalID, in.VendedorID, p, linea)
		if err != nil {
			if resp.Filas > 0 {
				return nil, fmt.Errorf("%s (tras %d filas confirmadas): %w", p.Nombre, resp.Filas, err)
			}
			return nil, fmt.Errorf("%s: %w", p.Nombre, err)
		}
		resp.Filas += filas
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp, nil
}

// registrarLinea confirma una línea del carrito en una transacción.
func (uc *UseCase) registrarLinea(
	ctx context.Context,
	sucursalID, vendedorID int64,
	p *entity.Producto,
	linea dto.VentaLinea,
) (decimal.Decimal, int, error) {
	subtotal := decimal.Zero
	filas := 0
	err := uc.txRunner.RunVentas(ctx, func(
		ventaRepo repository.VentaRepository,
		invRepo repository.InventarioRepository,
	) error {
		inv, err := invRepo.GetForUpdate(linea.ProductoID, sucursalID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrSinInventario
		}
		if inv.StockActual < linea.Cantidad {
			return domain.ErrInsufficientStock
		}

		for i := 0; i < linea.Cantidad; i++ {
			descuento := decimal.Zero
			descDescuento := ""
			if i == 0 {
				descuento = linea.Descuento
				descDescuento = linea.DescDescuento
			}
			total := p.Precio.Sub(descuento)
			if total.IsNegative() {
				total = decimal.Zero
			}
			v := &entity.Venta{
				ProductoID:     linea.ProductoID,
				VendedorID:     vendedorID,
				SucursalID:     sucursalID,
				Cantidad:       1,
				PrecioUnitario: p.Precio,
				Descuento:      descuento,
				DescDescuento:  descDescuento,
				Total:          total,
			}
			if err := ventaRepo.Create(v); err != nil {
				return err
			}
			subtotal = subtotal.Add(total)
			filas++
		}
		return invRepo.SetStock(linea.ProductoID, sucursalID, inv.StockActual-linea.Cantidad)
	})
	if err != nil {
		return decimal.Zero, 0, err
	}
	return subtotal, filas, nil
}

// ListarDia devuelve las ventas de hoy de la sucursal (reloj local), de la
// más reciente a la más antigua, con filtros opcionales por categoría y
// vendedor, y los acumulados de importe y unidades.
func (uc *UseCase) ListarDia(sucursalID, categoriaID, vendedorID int64) (*dto.VentaListResponse, error) {
	if sucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	desde, hasta := RangoDia(time.Now(), uc.loc)
	items, err := uc.ventaRepo.ListBySucursal(sucursalID, repository.VentaFiltro{
		Desde:       desde,
		Hasta:       hasta,
		CategoriaID: categoriaID,
		VendedorID:  vendedorID,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.VentaListResponse{
		Items:   make([]dto.VentaItemResponse, 0, len(items)),
		Importe: decimal.Zero,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, ToVentaItemResponse(it))
		resp.Importe = resp.Importe.Add(it.Total)
		resp.Unidades += it.Cantidad
	}
	return resp, nil
}

// ToVentaItemResponse convierte la fila de lectura al DTO de salida.
func ToVentaItemResponse(it repository.VentaItem) dto.VentaItemResponse {
	return dto.VentaItemResponse{
		ID:             it.ID,
		ProductoID:     it.ProductoID,
		Codigo:         it.Codigo,
		Producto:       it.Producto,
		CategoriaID:    it.CategoriaID,
		Categoria:      it.Categoria,
		VendedorID:     it.VendedorID,
		Vendedor:       it.Vendedor,
		Caja:           it.Caja,
		Cantidad:       it.Cantidad,
		PrecioUnitario: it.PrecioUnitario,
		Descuento:      it.Descuento,
		DescDescuento:  it.DescDescuento,
		Total:          it.Total,
		Fecha:          it.Fecha,
	}
}
