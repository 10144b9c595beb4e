package usecase

import (
	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// VendedorUseCase casos de uso del módulo de vendedores y cajas.
type VendedorUseCase struct {
	vendedorRepo repository.VendedorRepository
	sucursalRepo repository.SucursalRepository
}

// NewVendedorUseCase construye el caso de uso.
func NewVendedorUseCase(
	vendedorRepo repository.VendedorRepository,
	sucursalRepo repository.SucursalRepository,
) *VendedorUseCase {
	return &VendedorUseCase{vendedorRepo: vendedorRepo, sucursalRepo: sucursalRepo}
}

// Create registra un vendedor con su caja en una sucursal. Nombre y caja son
// obligatorios.
func (uc *VendedorUseCase) Create(in dto.CreateVendedorRequest) (*dto.VendedorResponse, error) {
	if in.Nombre == "" || in.Caja == "" || in.SucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	suc, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if suc == nil {
		return nil, domain.ErrNotFound
	}
	v := &entity.Vendedor{Nombre: in.Nombre, Caja: in.Caja, SucursalID: in.SucursalID}
	if err := uc.vendedorRepo.Create(v); err != nil {
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// Update edita nombre o caja de un vendedor. Devuelve (nil, nil) si no existe.
func (uc *VendedorUseCase) Update(id int64, in dto.UpdateVendedorRequest) (*dto.VendedorResponse, error) {
	v, err := uc.vendedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		v.Nombre = *in.Nombre
	}
	if in.Caja != nil {
		if *in.Caja == "" {
			return nil, domain.ErrInvalidInput
		}
		v.Caja = *in.Caja
	}
	if err := uc.vendedorRepo.Update(v); err != nil {
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// Delete elimina un vendedor.
func (uc *VendedorUseCase) Delete(id int64) error {
	return uc.vendedorRepo.Delete(id)
}

// List devuelve los vendedores de una sucursal con filtros opcionales por
// nombre y caja.
func (uc *VendedorUseCase) List(sucursalID int64, nombre, caja string) ([]dto.VendedorResponse, error) {
	if sucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.vendedorRepo.ListBySucursal(sucursalID, nombre, caja)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendedorResponse(v))
	}
	return items, nil
}

// Ranking devuelve las unidades vendidas por categoría en la sucursal,
// opcionalmente de un solo vendedor, de mayor a menor.
func (uc *VendedorUseCase) Ranking(sucursalID, vendedorID int64) ([]dto.RankingCategoriaResponse, error) {
	if sucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.vendedorRepo.RankingCategorias(sucursalID, vendedorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RankingCategoriaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.RankingCategoriaResponse{
			CategoriaID: e.CategoriaID,
			Categoria:   e.Categoria,
			Unidades:    e.Unidades,
		})
	}
	return items, nil
}

func toVendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{ID: v.ID, Nombre: v.Nombre, Caja: v.Caja, SucursalID: v.SucursalID}
}
