package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventarioItemResponse fila del listado de inventario de una sucursal.
type InventarioItemResponse struct {
	InventarioID int64           `json:"inventario_id"`
	ProductoID   int64           `json:"producto_id"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CategoriaID  int64           `json:"categoria_id"`
	Categoria    string          `json:"categoria"`
	Precio       decimal.Decimal `json:"precio"`
	Costo        decimal.Decimal `json:"costo"`
	FechaIngreso time.Time       `json:"fecha_ingreso"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  int             `json:"stock_minimo"`
	BajoMinimo   bool            `json:"bajo_minimo"`
}

// InventarioListResponse listado de inventario, opcionalmente paginado.
type InventarioListResponse struct {
	Items []InventarioItemResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// IngresoItem línea de un ingreso de mercadería. Las cantidades <= 0 se
// descartan sin error.
type IngresoItem struct {
	ProductoID int64 `json:"producto_id" validate:"required"`
	Cantidad   int   `json:"cantidad"`
}

// IngresoRequest body para POST /api/inventarios/ingresos.
type IngresoRequest struct {
	SucursalID    int64         `json:"sucursal_id" validate:"required"`
	Observaciones string        `json:"observaciones"`
	Items         []IngresoItem `json:"items" validate:"required,min=1"`
}

// IngresoResponse resultado de un ingreso: lote generado y líneas aplicadas.
type IngresoResponse struct {
	Lote  string `json:"lote"`
	Items int    `json:"items"`
}

// TrasladoItem línea de un traslado entre sucursales.
type TrasladoItem struct {
	ProductoID int64 `json:"producto_id" validate:"required"`
	Cantidad   int   `json:"cantidad" validate:"min=1"`
}

// TrasladoRequest body para POST /api/inventarios/traslados.
type TrasladoRequest struct {
	SucursalOrigen  int64          `json:"sucursal_origen" validate:"required"`
	SucursalDestino int64          `json:"sucursal_destino" validate:"required"`
	Items           []TrasladoItem `json:"items" validate:"required,min=1"`
}

// TrasladoResultado resultado por línea de un traslado. Las líneas fallidas
// no detienen al resto del lote.
type TrasladoResultado struct {
	ProductoID   int64  `json:"producto_id"`
	Cantidad     int    `json:"cantidad"`
	Ok           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
	StockOrigen  int    `json:"stock_origen,omitempty"`
	StockDestino int    `json:"stock_destino,omitempty"`
}

// TrasladoResponse resultado de un traslado multi-producto.
type TrasladoResponse struct {
	Lote       string              `json:"lote"`
	Aplicados  int                 `json:"aplicados"`
	Fallidos   int                 `json:"fallidos"`
	Resultados []TrasladoResultado `json:"resultados"`
}

// MovimientoResponse cabecera de un movimiento de stock registrada bajo un
// lote (auditoría de ingresos y traslados).
type MovimientoResponse struct {
	ID              int64     `json:"id"`
	Lote            string    `json:"lote"`
	SucursalOrigen  *int64    `json:"sucursal_origen,omitempty"`
	SucursalDestino int64     `json:"sucursal_destino"`
	Tipo            string    `json:"tipo"`
	Observaciones   string    `json:"observaciones,omitempty"`
	Fecha           time.Time `json:"fecha"`
}

// BuscarProductoResponse resultado de la búsqueda de la pantalla de ventas:
// producto resuelto por código o nombre más su stock en la sucursal.
type BuscarProductoResponse struct {
	ProductoID  int64           `json:"producto_id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	CategoriaID int64           `json:"categoria_id"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	StockActual int             `json:"stock_actual"`
}
