package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductoVendido es una entrada de los rankings de ventas: producto y
// unidades acumuladas en el rango consultado.
type ProductoVendido struct {
	ProductoID int64
	Codigo     string
	Nombre     string
	Categoria  string
	Unidades   int
	Importe    decimal.Decimal
}

// TotalesVentas son los acumulados de ventas de una sucursal en un rango.
type TotalesVentas struct {
	Importe  decimal.Decimal
	Unidades int
	Filas    int
}

// ResumenRepository define el puerto de lectura para el resumen del día y
// los rankings de venta. Son consultas de solo lectura sobre ventas, por lo
// que aceptan contexto para poder cancelarlas en conjunto.
type ResumenRepository interface {
	GetTotales(ctx context.Context, sucursalID int64, desde, hasta time.Time) (TotalesVentas, error)
	GetTopProductos(ctx context.Context, sucursalID int64, desde, hasta time.Time, limit int) ([]ProductoVendido, error)
	// GetTopPorCategoria devuelve hasta porCategoria productos por cada
	// categoría con ventas en el rango, ordenados por unidades.
	GetTopPorCategoria(ctx context.Context, sucursalID int64, desde, hasta time.Time, porCategoria int) ([]ProductoVendido, error)
}
