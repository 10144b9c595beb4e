package postgres

import (
	"context"
	"fmt"

	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL.
// El historial es append-only: no hay update ni delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta la cabecera y asigna el id y la fecha generados.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (lote, sucursal_origen, sucursal_destino, tipo, observaciones)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		mov.Lote, mov.SucursalOrigen, mov.SucursalDestino, mov.Tipo, mov.Observaciones,
	).Scan(&mov.ID, &mov.Fecha)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// CreateDetalle inserta una línea de detalle y asigna su id.
func (r *MovimientoRepo) CreateDetalle(det *entity.MovimientoDetalle) error {
	query := `
		INSERT INTO movimientos_detalle (movimiento_id, producto_id, cantidad)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		det.MovimientoID, det.ProductoID, det.Cantidad,
	).Scan(&det.ID)
	if err != nil {
		return fmt.Errorf("create movimiento detalle: %w", err)
	}
	return nil
}

// ListByLote devuelve las cabeceras generadas por una misma operación.
func (r *MovimientoRepo) ListByLote(lote string) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, lote, sucursal_origen, sucursal_destino, tipo, observaciones, fecha
		FROM movimientos WHERE lote = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, lote)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var items []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.Lote, &m.SucursalOrigen, &m.SucursalDestino,
			&m.Tipo, &m.Observaciones, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}
