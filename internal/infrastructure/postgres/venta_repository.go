package postgres

import (
	"context"
	"fmt"

	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con
// pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create inserta una fila de venta (una unidad) y asigna id y fecha generados.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (producto_id, vendedor_id, sucursal_id, cantidad,
		                    precio_unitario, descuento, desc_descuento, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		v.ProductoID, v.VendedorID, v.SucursalID, v.Cantidad,
		v.PrecioUnitario, v.Descuento, v.DescDescuento, v.Total,
	).Scan(&v.ID, &v.Fecha)
	if err != nil {
		return fmt.Errorf("create venta: %w", err)
	}
	return nil
}

// ListBySucursal devuelve las ventas de una sucursal en un rango, con
// producto y vendedor resueltos, de la más reciente a la más antigua.
// CategoriaID y VendedorID en cero no filtran.
func (r *VentaRepo) ListBySucursal(sucursalID int64, filtro repository.VentaFiltro) ([]repository.VentaItem, error) {
	query := `
		SELECT v.id, p.id, p.codigo, p.nombre, c.id, c.nombre,
		       ve.id, ve.nombre, ve.caja,
		       v.cantidad, v.precio_unitario, v.descuento, v.desc_descuento, v.total, v.fecha
		FROM ventas v
		JOIN productos p ON p.id = v.producto_id
		JOIN categorias c ON c.id = p.categoria_id
		JOIN vendedores ve ON ve.id = v.vendedor_id
		WHERE v.sucursal_id = $1 AND v.fecha >= $2 AND v.fecha <= $3`
	args := []any{sucursalID, filtro.Desde, filtro.Hasta}
	if filtro.CategoriaID != 0 {
		args = append(args, filtro.CategoriaID)
		query += fmt.Sprintf(" AND p.categoria_id = $%d", len(args))
	}
	if filtro.VendedorID != 0 {
		args = append(args, filtro.VendedorID)
		query += fmt.Sprintf(" AND v.vendedor_id = $%d", len(args))
	}
	query += " ORDER BY v.fecha DESC, v.id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var items []repository.VentaItem
	for rows.Next() {
		var it repository.VentaItem
		if err := rows.Scan(&it.ID, &it.ProductoID, &it.Codigo, &it.Producto,
			&it.CategoriaID, &it.Categoria, &it.VendedorID, &it.Vendedor, &it.Caja,
			&it.Cantidad, &it.PrecioUnitario, &it.Descuento, &it.DescDescuento,
			&it.Total, &it.Fecha); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
