package repository

import "github.com/crodval/multicentro-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para el historial de
// movimientos de stock (DIP). Create asigna el ID generado a la cabecera.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	CreateDetalle(det *entity.MovimientoDetalle) error
	ListByLote(lote string) ([]*entity.Movimiento, error)
}
