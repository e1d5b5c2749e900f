package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResumen is the minimal identity block returned alongside the token.
type UsuarioResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	RolID  uint   `json:"rolId"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Usuario UsuarioResumen `json:"usuario"`
}
