// Package auth contiene el caso de uso de ingreso al sistema. La sesión es
// un JWT que el cliente descarta al salir; no hay registro de usuarios por
// API, se aprovisionan directamente en la tabla usuarios.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/repository"
	"github.com/crodval/multicentro-api/pkg/jwt"
)

// UseCase valida credenciales contra usuarios y emite el token de sesión.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	secret      string
	issuer      string
	expMinutes  int
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{
		usuarioRepo: usuarioRepo,
		secret:      secret,
		issuer:      issuer,
		expMinutes:  expMinutes,
	}
}

// Login compara la clave con el hash bcrypt almacenado y devuelve el token.
// Usuario inexistente y clave incorrecta responden el mismo error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Clave == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByUsuario(in.Usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(in.Clave)); err != nil {
		return nil, domain.ErrCredenciales
	}
	token, err := jwt.Generate(uc.secret, u.ID, u.Usuario, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: u.Usuario}, nil
}
