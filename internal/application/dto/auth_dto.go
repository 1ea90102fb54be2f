package dto

// LoginRequest entrada para login del operador configurado.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT emitido.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
