package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo implementación de VendedorRepository sobre PostgreSQL.
type VendedorRepo struct {
	q Querier
}

// NewVendedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendedorRepository(q Querier) *VendedorRepo {
	return &VendedorRepo{q: q}
}

// Create inserta un vendedor y asigna el id generado.
func (r *VendedorRepo) Create(v *entity.Vendedor) error {
	query := `
		INSERT INTO vendedores (nombre, caja, sucursal_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, v.Nombre, v.Caja, v.SucursalID).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("create vendedor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por id. Devuelve (nil, nil) si no existe.
func (r *VendedorRepo) GetByID(id int64) (*entity.Vendedor, error) {
	query := `SELECT id, nombre, caja, sucursal_id FROM vendedores WHERE id = $1`
	var v entity.Vendedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(&v.ID, &v.Nombre, &v.Caja, &v.SucursalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return &v, nil
}

// Update reescribe nombre y caja.
func (r *VendedorRepo) Update(v *entity.Vendedor) error {
	query := `UPDATE vendedores SET nombre = $2, caja = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, v.ID, v.Nombre, v.Caja)
	if err != nil {
		return fmt.Errorf("update vendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vendedor.
func (r *VendedorRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vendedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySucursal devuelve los vendedores de una sucursal. El nombre filtra
// por substring sin distinguir mayúsculas; la caja por igualdad exacta.
func (r *VendedorRepo) ListBySucursal(sucursalID int64, nombre, caja string) ([]*entity.Vendedor, error) {
	query := `SELECT id, nombre, caja, sucursal_id FROM vendedores WHERE sucursal_id = $1`
	args := []any{sucursalID}
	if nombre != "" {
		args = append(args, "%"+nombre+"%")
		query += fmt.Sprintf(" AND nombre ILIKE $%d", len(args))
	}
	if caja != "" {
		args = append(args, caja)
		query += fmt.Sprintf(" AND caja = $%d", len(args))
	}
	query += " ORDER BY nombre"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()

	var items []*entity.Vendedor
	for rows.Next() {
		var v entity.Vendedor
		if err := rows.Scan(&v.ID, &v.Nombre, &v.Caja, &v.SucursalID); err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

// RankingCategorias acumula las unidades vendidas en la sucursal agrupadas
// por categoría, de mayor a menor. vendedorID en cero no filtra.
func (r *VendedorRepo) RankingCategorias(sucursalID, vendedorID int64) ([]repository.VentasPorCategoria, error) {
	query := `
		SELECT c.id, c.nombre, COALESCE(SUM(v.cantidad), 0) AS unidades
		FROM ventas v
		JOIN productos p ON p.id = v.producto_id
		JOIN categorias c ON c.id = p.categoria_id
		WHERE v.sucursal_id = $1 AND ($2 = 0 OR v.vendedor_id = $2)
		GROUP BY c.id, c.nombre
		ORDER BY unidades DESC, c.nombre`
	rows, err := r.q.Query(context.Background(), query, sucursalID, vendedorID)
	if err != nil {
		return nil, fmt.Errorf("ranking vendedor: %w", err)
	}
	defer rows.Close()

	var items []repository.VentasPorCategoria
	for rows.Next() {
		var e repository.VentasPorCategoria
		if err := rows.Scan(&e.CategoriaID, &e.Categoria, &e.Unidades); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
