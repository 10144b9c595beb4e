package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crodval/multicentro-api/internal/domain/entity"
)

// VentaItem es la fila de venta con producto y vendedor resueltos, como la
// muestran el listado del día y los reportes.
type VentaItem struct {
	ID             int64
	ProductoID     int64
	Codigo         string
	Producto       string
	CategoriaID    int64
	Categoria      string
	VendedorID     int64
	Vendedor       string
	Caja           string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	DescDescuento  string
	Total          decimal.Decimal
	Fecha          time.Time
}

// VentaFiltro acota los listados de ventas. Los campos en cero significan
// "sin filtro"; Desde y Hasta son obligatorios.
type VentaFiltro struct {
	Desde       time.Time
	Hasta       time.Time
	CategoriaID int64
	VendedorID  int64
}

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(venta *entity.Venta) error
	ListBySucursal(sucursalID int64, filtro VentaFiltro) ([]VentaItem, error)
}
