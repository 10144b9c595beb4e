package dto

// LoginRequest credenciales de la pantalla de ingreso.
type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Clave   string `json:"clave" validate:"required"`
}

// LoginResponse token de sesión emitido tras un login válido.
type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}
