package reportes

import (
	"fmt"
	"time"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/ventas"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// UseCase arma los reportes de inventario y ventas por rango de fechas y sus
// exportaciones a Excel. Sin rango explícito se reporta el mes en curso.
type UseCase struct {
	invRepo      repository.InventarioRepository
	ventaRepo    repository.VentaRepository
	sucursalRepo repository.SucursalRepository
	exporter     Exporter
	loc          *time.Location
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	invRepo repository.InventarioRepository,
	ventaRepo repository.VentaRepository,
	sucursalRepo repository.SucursalRepository,
	exporter Exporter,
	loc *time.Location,
) *UseCase {
	return &UseCase{
		invRepo:      invRepo,
		ventaRepo:    ventaRepo,
		sucursalRepo: sucursalRepo,
		exporter:     exporter,
		loc:          loc,
	}
}

// Inventario devuelve una página del reporte de inventario, filtrado por la
// fecha de ingreso del producto.
func (uc *UseCase) Inventario(f dto.ReporteFiltro) (*dto.ReporteInventarioResponse, error) {
	items, err := uc.inventarioItems(f)
	if err != nil {
		return nil, err
	}
	f.DefaultPage()
	pagina := paginar(items, f.Limit, f.Offset)
	out := make([]dto.InventarioItemResponse, 0, len(pagina))
	for _, it := range pagina {
		out = append(out, dto.InventarioItemResponse{
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
			BajoMinimo:   it.StockActual <= it.StockMinimo,
		})
	}
	return &dto.ReporteInventarioResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(items)},
	}, nil
}

// Ventas devuelve una página del reporte de ventas del rango.
func (uc *UseCase) Ventas(f dto.ReporteFiltro) (*dto.ReporteVentasResponse, error) {
	items, err := uc.ventaItems(f)
	if err != nil {
		return nil, err
	}
	f.DefaultPage()
	pagina := paginar(items, f.Limit, f.Offset)
	out := make([]dto.VentaItemResponse, 0, len(pagina))
	for _, it := range pagina {
		out = append(out, ventas.ToVentaItemResponse(it))
	}
	return &dto.ReporteVentasResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(items)},
	}, nil
}

// ExportInventario exporta el filtro vigente a un libro de una hoja.
func (uc *UseCase) ExportInventario(f dto.ReporteFiltro) (string, []byte, error) {
	sucursal, err := uc.nombreSucursal(f.SucursalID)
	if err != nil {
		return "", nil, err
	}
	items, err := uc.inventarioItems(f)
	if err != nil {
		return "", nil, err
	}
	data, err := uc.exporter.Inventario("Inventario", sucursal, items)
	if err != nil {
		return "", nil, err
	}
	return archivo("reporte_inventario", sucursal, uc.hoy()), data, nil
}

// ExportInventarioCompleto exporta todo el inventario de la sucursal con una
// hoja por categoría.
func (uc *UseCase) ExportInventarioCompleto(sucursalID int64) (string, []byte, error) {
	sucursal, err := uc.nombreSucursal(sucursalID)
	if err != nil {
		return "", nil, err
	}
	items, err := uc.invRepo.ListBySucursal(sucursalID, repository.InventarioFiltro{})
	if err != nil {
		return "", nil, err
	}
	data, err := uc.exporter.InventarioPorCategoria(sucursal, items)
	if err != nil {
		return "", nil, err
	}
	return archivo("inventario_completo", sucursal, uc.hoy()), data, nil
}

// ExportVentas exporta el filtro vigente a un libro de una hoja.
func (uc *UseCase) ExportVentas(f dto.ReporteFiltro) (string, []byte, error) {
	sucursal, err := uc.nombreSucursal(f.SucursalID)
	if err != nil {
		return "", nil, err
	}
	items, err := uc.ventaItems(f)
	if err != nil {
		return "", nil, err
	}
	data, err := uc.exporter.Ventas("Ventas", sucursal, items)
	if err != nil {
		return "", nil, err
	}
	return archivo("reporte_ventas", sucursal, uc.hoy()), data, nil
}

// ExportVentasAnual exporta las ventas del año en curso en una sola hoja
// Ventas_<año>.
func (uc *UseCase) ExportVentasAnual(sucursalID int64) (string, []byte, error) {
	sucursal, err := uc.nombreSucursal(sucursalID)
	if err != nil {
		return "", nil, err
	}
	ahora := time.Now().In(uc.loc)
	desde, hasta := ventas.RangoAnio(ahora, uc.loc)
	items, err := uc.ventaRepo.ListBySucursal(sucursalID, repository.VentaFiltro{Desde: desde, Hasta: hasta})
	if err != nil {
		return "", nil, err
	}
	hoja := fmt.Sprintf("Ventas_%d", ahora.Year())
	data, err := uc.exporter.Ventas(hoja, sucursal, items)
	if err != nil {
		return "", nil, err
	}
	return archivo(fmt.Sprintf("ventas_%d", ahora.Year()), sucursal, uc.hoy()), data, nil
}

func (uc *UseCase) inventarioItems(f dto.ReporteFiltro) ([]repository.InventarioItem, error) {
	if f.SucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	desde, hasta, err := uc.rango(f.Desde, f.Hasta)
	if err != nil {
		return nil, err
	}
	return uc.invRepo.ListBySucursal(f.SucursalID, repository.InventarioFiltro{
		CategoriaID: f.CategoriaID,
		Desde:       desde,
		Hasta:       hasta,
	})
}

func (uc *UseCase) ventaItems(f dto.ReporteFiltro) ([]repository.VentaItem, error) {
	if f.SucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	desde, hasta, err := uc.rango(f.Desde, f.Hasta)
	if err != nil {
		return nil, err
	}
	return uc.ventaRepo.ListBySucursal(f.SucursalID, repository.VentaFiltro{
		Desde:       desde,
		Hasta:       hasta,
		CategoriaID: f.CategoriaID,
	})
}

// rango interpreta desde/hasta (2006-01-02) en la zona de operación. Sin
// valores se asume el mes en curso; un hasta sin hora cubre el día completo.
func (uc *UseCase) rango(desde, hasta string) (time.Time, time.Time, error) {
	defDesde, defHasta := ventas.RangoMes(time.Now(), uc.loc)
	d, h := defDesde, defHasta
	if desde != "" {
		t, err := time.ParseInLocation(fechaLayout, desde, uc.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		d = t
	}
	if hasta != "" {
		t, err := time.ParseInLocation(fechaLayout, hasta, uc.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		_, h = ventas.RangoDia(t, uc.loc)
	}
	if h.Before(d) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return d, h, nil
}

func (uc *UseCase) nombreSucursal(id int64) (string, error) {
	if id == 0 {
		return "", domain.ErrInvalidInput
	}
	s, err := uc.sucursalRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", domain.ErrNotFound
	}
	return s.Nombre, nil
}

func (uc *UseCase) hoy() string {
	return time.Now().In(uc.loc).Format(fechaLayout)
}

func archivo(prefijo, sucursal, fecha string) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", prefijo, sucursal, fecha)
}

func paginar[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	fin := offset + limit
	if fin > len(items) {
		fin = len(items)
	}
	return items[offset:fin]
}
