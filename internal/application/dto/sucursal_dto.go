package dto

// SucursalResponse salida de una sucursal.
type SucursalResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
