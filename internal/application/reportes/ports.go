package reportes

import "github.com/crodval/multicentro-api/internal/domain/repository"

// Exporter genera los libros .xlsx que descargan las pantallas de reportes.
type Exporter interface {
	// Inventario escribe las filas en una sola hoja.
	Inventario(hoja, sucursal string, items []repository.InventarioItem) ([]byte, error)
	// InventarioPorCategoria escribe una hoja por categoría presente.
	InventarioPorCategoria(sucursal string, items []repository.InventarioItem) ([]byte, error)
	// Ventas escribe las filas de venta en una sola hoja.
	Ventas(hoja, sucursal string, items []repository.VentaItem) ([]byte, error)
}
