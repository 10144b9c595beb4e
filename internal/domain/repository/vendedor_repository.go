package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// VentasPorCategoria es una entrada del ranking de un vendedor: unidades
// vendidas acumuladas por categoría.
type VentasPorCategoria struct {
	CategoriaID int64
	Categoria   string
	Unidades    int
}

// VendedorRepository define el puerto de persistencia para Vendedor (DIP).
type VendedorRepository interface {
	Create(vendedor *entity.Vendedor) error
	GetByID(id int64) (*entity.Vendedor, error)
	Update(vendedor *entity.Vendedor) error
	Delete(id int64) error
	// ListBySucursal filtra por nombre (substring, case-insensitive) y caja
	// exacta; las cadenas vacías no filtran.
	ListBySucursal(sucursalID int64, nombre, caja string) ([]*entity.Vendedor, error)
	// RankingCategorias devuelve las unidades vendidas en la sucursal
	// agrupadas por categoría, de mayor a menor. vendedorID en cero
	// acumula todos los vendedores.
	RankingCategorias(sucursalID, vendedorID int64) ([]VentasPorCategoria, error)
}
