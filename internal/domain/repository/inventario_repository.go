package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crodval/multicentro-api/internal/domain/entity"
)

// InventarioItem es la fila de inventario con los datos del producto ya
// resueltos, tal como la consumen los listados y reportes por sucursal.
type InventarioItem struct {
	InventarioID int64
	ProductoID   int64
	Codigo       string
	Nombre       string
	Descripcion  string
	CategoriaID  int64
	Categoria    string
	Precio       decimal.Decimal
	Costo        decimal.Decimal
	FechaIngreso time.Time
	StockActual  int
	StockMinimo  int
}

// InventarioFiltro acota los listados de inventario. Los campos en cero
// significan "sin filtro".
type InventarioFiltro struct {
	CategoriaID int64
	Desde       time.Time // sobre productos.fecha_ingreso
	Hasta       time.Time
}

// InventarioRepository define el puerto de persistencia para las filas de
// stock por sucursal (DIP). Get y GetForUpdate devuelven (nil, nil) cuando
// el producto aún no tiene fila en la sucursal.
type InventarioRepository interface {
	Get(productoID, sucursalID int64) (*entity.Inventario, error)
	// GetForUpdate lee la fila con bloqueo de escritura. Solo tiene sentido
	// dentro de una transacción.
	GetForUpdate(productoID, sucursalID int64) (*entity.Inventario, error)
	Upsert(inv *entity.Inventario) error
	SetStock(productoID, sucursalID int64, stockActual int) error
	ListBySucursal(sucursalID int64, filtro InventarioFiltro) ([]InventarioItem, error)
	DeleteByProducto(productoID int64) error
}
