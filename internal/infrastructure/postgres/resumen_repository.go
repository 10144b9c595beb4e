package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.ResumenRepository = (*ResumenRepo)(nil)

// ResumenRepo consultas de solo lectura para el resumen del día y los
// rankings. Agrega en SQL; el usecase solo ordena la presentación.
type ResumenRepo struct {
	q Querier
}

// NewResumenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResumenRepository(q Querier) *ResumenRepo {
	return &ResumenRepo{q: q}
}

// GetTotales acumula importe, unidades y filas de venta del rango.
func (r *ResumenRepo) GetTotales(ctx context.Context, sucursalID int64, desde, hasta time.Time) (repository.TotalesVentas, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COALESCE(SUM(cantidad), 0), COUNT(*)
		FROM ventas
		WHERE sucursal_id = $1 AND fecha >= $2 AND fecha <= $3`
	var t repository.TotalesVentas
	err := r.q.QueryRow(ctx, query, sucursalID, desde, hasta).Scan(&t.Importe, &t.Unidades, &t.Filas)
	if err != nil {
		return repository.TotalesVentas{}, fmt.Errorf("totales ventas: %w", err)
	}
	return t, nil
}

// GetTopProductos devuelve los productos más vendidos del rango por unidades.
func (r *ResumenRepo) GetTopProductos(ctx context.Context, sucursalID int64, desde, hasta time.Time, limit int) ([]repository.ProductoVendido, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, c.nombre,
		       COALESCE(SUM(v.cantidad), 0) AS unidades, COALESCE(SUM(v.total), 0) AS importe
		FROM ventas v
		JOIN productos p ON p.id = v.producto_id
		JOIN categorias c ON c.id = p.categoria_id
		WHERE v.sucursal_id = $1 AND v.fecha >= $2 AND v.fecha <= $3
		GROUP BY p.id, p.codigo, p.nombre, c.nombre
		ORDER BY unidades DESC, p.codigo
		LIMIT $4`
	return r.queryVendidos(ctx, query, sucursalID, desde, hasta, limit)
}

// GetTopPorCategoria devuelve hasta porCategoria productos por cada categoría
// con ventas en el rango, ordenados por unidades dentro de su categoría.
func (r *ResumenRepo) GetTopPorCategoria(ctx context.Context, sucursalID int64, desde, hasta time.Time, porCategoria int) ([]repository.ProductoVendido, error) {
	query := `
		SELECT producto_id, codigo, nombre, categoria, unidades, importe
		FROM (
			SELECT p.id AS producto_id, p.codigo, p.nombre, c.nombre AS categoria,
			       COALESCE(SUM(v.cantidad), 0) AS unidades, COALESCE(SUM(v.total), 0) AS importe,
			       ROW_NUMBER() OVER (
			           PARTITION BY c.id ORDER BY SUM(v.cantidad) DESC, p.codigo
			       ) AS pos
			FROM ventas v
			JOIN productos p ON p.id = v.producto_id
			JOIN categorias c ON c.id = p.categoria_id
			WHERE v.sucursal_id = $1 AND v.fecha >= $2 AND v.fecha <= $3
			GROUP BY p.id, p.codigo, p.nombre, c.id, c.nombre
		) ranked
		WHERE pos <= $4
		ORDER BY categoria, unidades DESC, codigo`
	return r.queryVendidos(ctx, query, sucursalID, desde, hasta, porCategoria)
}

func (r *ResumenRepo) queryVendidos(ctx context.Context, query string, args ...any) ([]repository.ProductoVendido, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ranking productos: %w", err)
	}
	defer rows.Close()

	var items []repository.ProductoVendido
	for rows.Next() {
		var pv repository.ProductoVendido
		if err := rows.Scan(&pv.ProductoID, &pv.Codigo, &pv.Nombre, &pv.Categoria,
			&pv.Unidades, &pv.Importe); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		items = append(items, pv)
	}
	return items, rows.Err()
}
