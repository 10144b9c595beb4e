package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	GetByID(id int64) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
}
