package usecase

import (
	"context"

	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// CatalogoTxRunner ejecuta una función dentro de una transacción de BD con
// repos de productos e inventario atados a esa tx. Lo usan el alta con stock
// inicial y la baja con limpieza de inventarios.
type CatalogoTxRunner interface {
	RunCatalogo(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		invRepo repository.InventarioRepository,
	) error) error
}
