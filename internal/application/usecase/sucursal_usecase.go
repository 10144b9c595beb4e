package usecase

import (
	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// SucursalUseCase lecturas del selector de sucursal. La sucursal elegida
// vive en el cliente; el API solo sirve la lista.
type SucursalUseCase struct {
	repo repository.SucursalRepository
}

// NewSucursalUseCase construye el caso de uso.
func NewSucursalUseCase(repo repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{repo: repo}
}

// List devuelve todas las sucursales.
func (uc *SucursalUseCase) List() ([]dto.SucursalResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SucursalResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SucursalResponse{ID: s.ID, Nombre: s.Nombre})
	}
	return items, nil
}

// GetByID obtiene una sucursal. Devuelve (nil, nil) si no existe.
func (uc *SucursalUseCase) GetByID(id int64) (*dto.SucursalResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &dto.SucursalResponse{ID: s.ID, Nombre: s.Nombre}, nil
}
