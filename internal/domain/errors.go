package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUsuarioNotFound    = errors.New("usuario no encontrado")
	ErrCredenciales       = errors.New("usuario o contraseña incorrectos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrCodigoConEspacios  = errors.New("el código no puede contener espacios")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSinInventario      = errors.New("el producto no tiene inventario en la sucursal")
	ErrMismaSucursal      = errors.New("la sucursal destino debe ser distinta a la de origen")
	ErrLoteVacio          = errors.New("seleccione al menos un producto con cantidad válida")
)
