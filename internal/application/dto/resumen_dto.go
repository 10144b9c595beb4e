package dto

import "github.com/shopspring/decimal"

// ProductoVendidoResponse entrada de un ranking de productos vendidos.
type ProductoVendidoResponse struct {
	ProductoID int64           `json:"producto_id"`
	Codigo     string          `json:"codigo"`
	Nombre     string          `json:"nombre"`
	Unidades   int             `json:"unidades"`
	Importe    decimal.Decimal `json:"importe"`
}

// CategoriaTopResponse top de productos de una categoría.
type CategoriaTopResponse struct {
	Categoria string                    `json:"categoria"`
	Productos []ProductoVendidoResponse `json:"productos"`
}

// ResumenResponse resumen de ventas del día de una sucursal.
type ResumenResponse struct {
	SucursalID   int64                     `json:"sucursal_id"`
	Importe      decimal.Decimal           `json:"importe"`
	Filas        int                       `json:"filas"`
	Unidades     int                       `json:"unidades"`
	TopProductos []ProductoVendidoResponse `json:"top_productos"`
	PorCategoria []CategoriaTopResponse    `json:"por_categoria"`
}
