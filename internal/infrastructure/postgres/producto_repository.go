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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create inserta un producto y asigna ID y fecha de ingreso generados.
// La unicidad del código la garantiza la constraint de la tabla: un 23505
// se devuelve como domain.ErrDuplicate.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (codigo, nombre, descripcion, categoria_id, precio, costo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_ingreso`
	err := r.q.QueryRow(context.Background(), query,
		p.Codigo, p.Nombre, p.Descripcion, p.CategoriaID, p.Precio, p.Costo,
	).Scan(&p.ID, &p.FechaIngreso)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, categoria_id, precio, costo, fecha_ingreso
		FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCodigo obtiene un producto por su código. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, categoria_id, precio, costo, fecha_ingreso
		FROM productos WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo))
}

// Update reescribe los campos editables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre = $3, descripcion = $4, categoria_id = $5, precio = $6, costo = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.CategoriaID, p.Precio, p.Costo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos ordenados por código.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, categoria_id, precio, costo, fecha_ingreso
		FROM productos ORDER BY codigo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var items []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion,
			&p.CategoriaID, &p.Precio, &p.Costo, &p.FechaIngreso); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

// Delete elimina el producto. Las filas de inventarios se borran antes, en la
// misma transacción (ver usecase de catálogo).
func (r *ProductoRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion,
		&p.CategoriaID, &p.Precio, &p.Costo, &p.FechaIngreso)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}
