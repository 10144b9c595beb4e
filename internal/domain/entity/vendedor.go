package entity

// Vendedor representa un vendedor y la caja (estación) que opera en una sucursal.
type Vendedor struct {
	ID         int64
	Nombre     string
	Caja       string
	SucursalID int64
}
