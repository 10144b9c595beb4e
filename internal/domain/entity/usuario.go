package entity

// Usuario representa una cuenta de acceso al panel.
// Clave guarda el hash bcrypt, nunca la contraseña en claro.
type Usuario struct {
	ID      int64
	Usuario string
	Clave   string
}
