package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoIngreso  = "ingreso"  // entrada de stock a una sucursal
	MovimientoTraslado = "traslado" // entre sucursales
)

// Movimiento es la cabecera de un evento de ingreso o traslado de stock.
// Lote agrupa las cabeceras generadas por una misma operación multi-producto.
// Es un registro de auditoría append-only.
type Movimiento struct {
	ID              int64
	Lote            string // UUID de la operación que lo originó
	SucursalOrigen  *int64 // nil en ingresos
	SucursalDestino int64
	Tipo            string // ingreso, traslado
	Observaciones   string
	Fecha           time.Time
}

// MovimientoDetalle es la línea de un Movimiento: producto y cantidad movida.
type MovimientoDetalle struct {
	ID           int64
	MovimientoID int64
	ProductoID   int64
	Cantidad     int
}
