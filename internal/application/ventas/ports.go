package ventas

import (
	"context"

	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada línea del carrito usa su propia
// transacción: filas de venta y débito de stock se confirman juntos.
type TxRunner interface {
	RunVentas(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		invRepo repository.InventarioRepository,
	) error) error
}
