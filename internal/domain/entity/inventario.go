package entity

// Inventario representa el stock de un producto en una sucursal.
// Existe a lo sumo una fila por par (producto, sucursal).
type Inventario struct {
	ID          int64
	ProductoID  int64
	SucursalID  int64
	StockActual int
	StockMinimo int
}

// BajoMinimo indica si el stock actual está en o por debajo del mínimo configurado.
func (i Inventario) BajoMinimo() bool {
	return i.StockActual <= i.StockMinimo
}
