package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	GetByUsuario(usuario string) (*entity.Usuario, error)
}
