package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crodval/multicentro-api/internal/application/inventario"
	"github.com/crodval/multicentro-api/internal/application/usecase"
	"github.com/crodval/multicentro-api/internal/application/ventas"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ ventas.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogoTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con repos de movimientos e inventario atados a
// la tx y hace Commit o Rollback. Lo usan los ingresos y cada línea de un
// traslado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	invRepo := NewInventarioRepository(tx)

	if err := fn(movRepo, invRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVentas inicia una transacción con repos de ventas e inventario (una por
// línea del carrito).
func (r *TxRunner) RunVentas(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	invRepo repository.InventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ventaRepo := NewVentaRepository(tx)
	invRepo := NewInventarioRepository(tx)

	if err := fn(ventaRepo, invRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalogo inicia una transacción con repos de productos e inventario
// (alta con stock inicial y baja con limpieza de inventarios).
func (r *TxRunner) RunCatalogo(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productoRepo := NewProductoRepository(tx)
	invRepo := NewInventarioRepository(tx)

	if err := fn(productoRepo, invRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
