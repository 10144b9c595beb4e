package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto. InventarioInicial es
// opcional: cuando viene, la fila de stock se crea en la misma transacción.
type CreateProductoRequest struct {
	Codigo            string             `json:"codigo" validate:"required,min=1,max=50"`
	Nombre            string             `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion       string             `json:"descripcion"`
	CategoriaID       int64              `json:"categoria_id" validate:"required"`
	Precio            decimal.Decimal    `json:"precio"`
	Costo             decimal.Decimal    `json:"costo"`
	InventarioInicial *InventarioInicial `json:"inventario_inicial,omitempty"`
}

// InventarioInicial stock de arranque de un producto nuevo en una sucursal.
type InventarioInicial struct {
	SucursalID  int64 `json:"sucursal_id" validate:"required"`
	Stock       int   `json:"stock" validate:"min=0"`
	StockMinimo int   `json:"stock_minimo" validate:"min=0"`
}

// UpdateProductoRequest entrada para editar un producto en el catálogo.
type UpdateProductoRequest struct {
	Codigo      *string          `json:"codigo" validate:"omitempty,min=1,max=50"`
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	CategoriaID *int64           `json:"categoria_id"`
	Precio      *decimal.Decimal `json:"precio"`
	Costo       *decimal.Decimal `json:"costo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           int64           `json:"id"`
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CategoriaID  int64           `json:"categoria_id"`
	Precio       decimal.Decimal `json:"precio"`
	Costo        decimal.Decimal `json:"costo"`
	FechaIngreso time.Time       `json:"fecha_ingreso"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CategoriaResponse salida de una categoría del catálogo.
type CategoriaResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
