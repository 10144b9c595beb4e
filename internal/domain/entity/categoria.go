package entity

// Categoria agrupa productos del catálogo.
type Categoria struct {
	ID     int64
	Nombre string
}
