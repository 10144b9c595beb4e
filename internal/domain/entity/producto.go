package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo (compartido entre sucursales).
// Codigo es único en todo el catálogo, en mayúsculas y sin espacios.
// El stock se maneja por sucursal en Inventario, nunca aquí.
type Producto struct {
	ID           int64
	Codigo       string
	Nombre       string
	Descripcion  string
	CategoriaID  int64
	Precio       decimal.Decimal // precio de venta
	Costo        decimal.Decimal
	FechaIngreso time.Time
}
