package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta es una línea de venta registrada (append-only). En la versión vigente
// del registrador se inserta una fila por unidad vendida (Cantidad = 1); el
// descuento de la línea viaja en la primera unidad para que la suma de totales
// iguale precio*cantidad - descuento.
type Venta struct {
	ID             int64
	ProductoID     int64
	VendedorID     int64
	SucursalID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	DescDescuento  string // motivo del descuento
	Total          decimal.Decimal
	Fecha          time.Time
}
