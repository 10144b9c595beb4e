package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaLinea línea del carrito: un producto, su cantidad y el descuento
// aplicado a la línea completa.
type VentaLinea struct {
	ProductoID    int64           `json:"producto_id" validate:"required"`
	Cantidad      int             `json:"cantidad" validate:"min=1"`
	Descuento     decimal.Decimal `json:"descuento"`
	DescDescuento string          `json:"desc_descuento"`
}

// RegistrarVentaRequest body para POST /api/ventas.
type RegistrarVentaRequest struct {
	SucursalID int64        `json:"sucursal_id" validate:"required"`
	VendedorID int64        `json:"vendedor_id" validate:"required"`
	Lineas     []VentaLinea `json:"lineas" validate:"required,min=1"`
}

// RegistrarVentaResponse resultado del cobro del carrito.
type RegistrarVentaResponse struct {
	Filas int             `json:"filas"`
	Total decimal.Decimal `json:"total"`
}

// VentaItemResponse fila del listado de ventas del día y de los reportes.
type VentaItemResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	Codigo         string          `json:"codigo"`
	Producto       string          `json:"producto"`
	CategoriaID    int64           `json:"categoria_id"`
	Categoria      string          `json:"categoria"`
	VendedorID     int64           `json:"vendedor_id"`
	Vendedor       string          `json:"vendedor"`
	Caja           string          `json:"caja"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	DescDescuento  string          `json:"desc_descuento,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Fecha          time.Time       `json:"fecha"`
}

// VentaListResponse listado de ventas con sus acumulados.
type VentaListResponse struct {
	Items    []VentaItemResponse `json:"items"`
	Importe  decimal.Decimal     `json:"importe"`
	Unidades int                 `json:"unidades"`
	Page     PageResponse        `json:"page"`
}
