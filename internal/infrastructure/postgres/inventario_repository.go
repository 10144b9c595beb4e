package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL
// (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Get obtiene la fila de stock de un producto en una sucursal.
// Devuelve (nil, nil) cuando el producto aún no tiene inventario ahí.
func (r *InventarioRepo) Get(productoID, sucursalID int64) (*entity.Inventario, error) {
	query := `
		SELECT id, producto_id, sucursal_id, stock_actual, stock_minimo
		FROM inventarios WHERE producto_id = $1 AND sucursal_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productoID, sucursalID))
}

// GetForUpdate obtiene la fila de stock bloqueada para escritura
// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
func (r *InventarioRepo) GetForUpdate(productoID, sucursalID int64) (*entity.Inventario, error) {
	query := `
		SELECT id, producto_id, sucursal_id, stock_actual, stock_minimo
		FROM inventarios WHERE producto_id = $1 AND sucursal_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productoID, sucursalID))
}

// Upsert inserta o actualiza la fila de stock (por producto y sucursal).
func (r *InventarioRepo) Upsert(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (producto_id, sucursal_id, stock_actual, stock_minimo)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (producto_id, sucursal_id)
		DO UPDATE SET stock_actual = EXCLUDED.stock_actual, stock_minimo = EXCLUDED.stock_minimo
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		inv.ProductoID, inv.SucursalID, inv.StockActual, inv.StockMinimo,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("upsert inventario: %w", err)
	}
	return nil
}

// SetStock fija el stock actual de una fila existente.
func (r *InventarioRepo) SetStock(productoID, sucursalID int64, stockActual int) error {
	query := `
		UPDATE inventarios SET stock_actual = $3
		WHERE producto_id = $1 AND sucursal_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productoID, sucursalID, stockActual)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set stock: fila inexistente producto=%d sucursal=%d", productoID, sucursalID)
	}
	return nil
}

// ListBySucursal devuelve el inventario de una sucursal con los datos del
// producto resueltos, ordenado por código. Los filtros en cero no aplican.
func (r *InventarioRepo) ListBySucursal(sucursalID int64, filtro repository.InventarioFiltro) ([]repository.InventarioItem, error) {
	query := `
		SELECT i.id, p.id, p.codigo, p.nombre, p.descripcion, c.id, c.nombre,
		       p.precio, p.costo, p.fecha_ingreso, i.stock_actual, i.stock_minimo
		FROM inventarios i
		JOIN productos p ON p.id = i.producto_id
		JOIN categorias c ON c.id = p.categoria_id
		WHERE i.sucursal_id = $1`
	args := []any{sucursalID}
	if filtro.CategoriaID != 0 {
		args = append(args, filtro.CategoriaID)
		query += fmt.Sprintf(" AND p.categoria_id = $%d", len(args))
	}
	if !filtro.Desde.IsZero() {
		args = append(args, filtro.Desde)
		query += fmt.Sprintf(" AND p.fecha_ingreso >= $%d", len(args))
	}
	if !filtro.Hasta.IsZero() {
		args = append(args, filtro.Hasta)
		query += fmt.Sprintf(" AND p.fecha_ingreso <= $%d", len(args))
	}
	query += " ORDER BY p.codigo"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()

	var items []repository.InventarioItem
	for rows.Next() {
		var it repository.InventarioItem
		if err := rows.Scan(&it.InventarioID, &it.ProductoID, &it.Codigo, &it.Nombre,
			&it.Descripcion, &it.CategoriaID, &it.Categoria, &it.Precio, &it.Costo,
			&it.FechaIngreso, &it.StockActual, &it.StockMinimo); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteByProducto borra todas las filas de stock de un producto (previo a
// eliminarlo del catálogo).
func (r *InventarioRepo) DeleteByProducto(productoID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventarios WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete inventarios: %w", err)
	}
	return nil
}

func (r *InventarioRepo) scanOne(row pgx.Row) (*entity.Inventario, error) {
	var inv entity.Inventario
	err := row.Scan(&inv.ID, &inv.ProductoID, &inv.SucursalID, &inv.StockActual, &inv.StockMinimo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}
