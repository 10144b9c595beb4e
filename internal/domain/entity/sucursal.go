package entity

// Sucursal representa una sucursal o punto de venta. Es la unidad de alcance
// de inventarios, ventas y vendedores: toda consulta se filtra por su id.
type Sucursal struct {
	ID     int64
	Nombre string
}
