package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// SucursalRepository define el puerto de persistencia para Sucursal (DIP).
type SucursalRepository interface {
	GetByID(id int64) (*entity.Sucursal, error)
	List() ([]*entity.Sucursal, error)
}
