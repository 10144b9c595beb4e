package usecase

import (
	"context"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/catalogo"
	"github.com/crodval/multicentro-api/internal/domain/entity"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD del catálogo de productos. El código se
// normaliza a mayúsculas sin espacios; la unicidad la decide la constraint
// de la tabla, no un pre-chequeo.
type ProductoUseCase struct {
	txRunner      CatalogoTxRunner
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	sucursalRepo  repository.SucursalRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	txRunner CatalogoTxRunner,
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	sucursalRepo repository.SucursalRepository,
) *ProductoUseCase {
	return &ProductoUseCase{
		txRunner:      txRunner,
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
		sucursalRepo:  sucursalRepo,
	}
}

// Create da de alta un producto y, si viene stock inicial, su fila de
// inventario en la misma transacción.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	codigo := catalogo.Normalizar(in.Codigo)
	if !catalogo.CodigoValido(codigo) {
		return nil, domain.ErrCodigoConEspacios
	}
	if in.Nombre == "" || in.CategoriaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() || in.Costo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.InventarioInicial != nil {
		suc, err := uc.sucursalRepo.GetByID(in.InventarioInicial.SucursalID)
		if err != nil {
			return nil, err
		}
		if suc == nil {
			return nil, domain.ErrNotFound
		}
		if in.InventarioInicial.Stock < 0 || in.InventarioInicial.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	producto := &entity.Producto{
		Codigo:      codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CategoriaID: in.CategoriaID,
		Precio:      in.Precio,
		Costo:       in.Costo,
	}
	err = uc.txRunner.RunCatalogo(ctx, func(
		productoRepo repository.ProductoRepository,
		invRepo repository.InventarioRepository,
	) error {
		if err := productoRepo.Create(producto); err != nil {
			return err
		}
		if in.InventarioInicial == nil {
			return nil
		}
		return invRepo.Upsert(&entity.Inventario{
			ProductoID:  producto.ID,
			SucursalID:  in.InventarioInicial.SucursalID,
			StockActual: in.InventarioInicial.Stock,
			StockMinimo: in.InventarioInicial.StockMinimo,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// GetByCodigo resuelve un producto por su código (la consulta pasa por la
// misma normalización que el alta). Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByCodigo(codigo string) (*dto.ProductoResponse, error) {
	codigo = catalogo.Normalizar(codigo)
	if codigo == "" {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update edita un producto en el catálogo. El código, si cambia, pasa por la
// misma normalización y constraint que en el alta.
func (uc *ProductoUseCase) Update(id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		codigo := catalogo.Normalizar(*in.Codigo)
		if !catalogo.CodigoValido(codigo) {
			return nil, domain.ErrCodigoConEspacios
		}
		producto.Codigo = codigo
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		cat, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
		producto.CategoriaID = *in.CategoriaID
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.Costo != nil {
		if in.Costo.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Costo = *in.Costo
	}
	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.productoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto junto con sus filas de inventario, en una sola
// transacción.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.RunCatalogo(ctx, func(
		productoRepo repository.ProductoRepository,
		invRepo repository.InventarioRepository,
	) error {
		if err := invRepo.DeleteByProducto(id); err != nil {
			return err
		}
		return productoRepo.Delete(id)
	})
}

// ListCategorias devuelve las categorías del catálogo.
func (uc *ProductoUseCase) ListCategorias() ([]dto.CategoriaResponse, error) {
	list, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return items, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:           p.ID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		CategoriaID:  p.CategoriaID,
		Precio:       p.Precio,
		Costo:        p.Costo,
		FechaIngreso: p.FechaIngreso,
	}
}
