package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Create y Update propagan domain.ErrDuplicate cuando el código viola la
// constraint única de la tabla.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List(limit, offset int) ([]*entity.Producto, error)
	Delete(id int64) error
}
