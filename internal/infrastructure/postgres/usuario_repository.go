package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// GetByUsuario obtiene un usuario por su nombre de ingreso.
// Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByUsuario(usuario string) (*entity.Usuario, error) {
	query := `SELECT id, usuario, clave FROM usuarios WHERE usuario = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, usuario).Scan(&u.ID, &u.Usuario, &u.Clave)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
