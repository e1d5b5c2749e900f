package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre          string  `json:"nombre" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Telefono        *string `json:"telefono"`
	RolID           uint    `json:"rolId" validate:"required"`
	AccedeAlSistema bool    `json:"accedeAlSistema"`
	// Password is mandatory only when AccedeAlSistema is requested; the
	// service enforces that rule.
	Password string `json:"password" validate:"omitempty,min=8"`
}

type ActualizarUsuarioRequest struct {
	ID       uint    `json:"id" validate:"required"`
	Nombre   string  `json:"nombre" validate:"omitempty,min=2,max=100"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	Password string  `json:"password" validate:"omitempty,min=8"`
}

type CambiarEstadoRequest struct {
	Activo bool `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID              uint    `json:"id"`
	Nombre          string  `json:"nombre"`
	Email           string  `json:"email"`
	Telefono        *string `json:"telefono"`
	Avatar          *string `json:"avatar"`
	RolID           uint    `json:"rolId"`
	Rol             string  `json:"rol"`
	AccedeAlSistema bool    `json:"accedeAlSistema"`
	Activo          bool    `json:"activo"`
}
