package dto

// CreateVendedorRequest entrada para registrar un vendedor y su caja.
type CreateVendedorRequest struct {
	Nombre     string `json:"nombre" validate:"required,min=1,max=200"`
	Caja       string `json:"caja" validate:"required,min=1,max=50"`
	SucursalID int64  `json:"sucursal_id" validate:"required"`
}

// UpdateVendedorRequest entrada para editar un vendedor.
type UpdateVendedorRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Caja   *string `json:"caja" validate:"omitempty,min=1,max=50"`
}

// VendedorResponse salida de un vendedor.
type VendedorResponse struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Caja       string `json:"caja"`
	SucursalID int64  `json:"sucursal_id"`
}

// RankingCategoriaResponse entrada del ranking de un vendedor: unidades
// vendidas acumuladas por categoría, de mayor a menor.
type RankingCategoriaResponse struct {
	CategoriaID int64  `json:"categoria_id"`
	Categoria   string `json:"categoria"`
	Unidades    int    `json:"unidades"`
}
