package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo implementación de SucursalRepository sobre PostgreSQL.
type SucursalRepo struct {
	q Querier
}

// NewSucursalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSucursalRepository(q Querier) *SucursalRepo {
	return &SucursalRepo{q: q}
}

// GetByID obtiene una sucursal por id. Devuelve (nil, nil) si no existe.
func (r *SucursalRepo) GetByID(id int64) (*entity.Sucursal, error) {
	query := `SELECT id, nombre FROM sucursales WHERE id = $1`
	var s entity.Sucursal
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal: %w", err)
	}
	return &s, nil
}

// List devuelve todas las sucursales ordenadas por nombre.
func (r *SucursalRepo) List() ([]*entity.Sucursal, error) {
	query := `SELECT id, nombre FROM sucursales ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()

	var items []*entity.Sucursal
	for rows.Next() {
		var s entity.Sucursal
		if err := rows.Scan(&s.ID, &s.Nombre); err != nil {
			return nil, fmt.Errorf("scan sucursal: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
