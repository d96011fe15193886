package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	Nombres  string `json:"nombres"  validate:"required,min=2,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	RoleID   string `json:"roleId"   validate:"required"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type ActualizarUsuarioRequest struct {
	Nombres  string `json:"nombres"  validate:"omitempty,min=2,max=120"`
	Email    string `json:"email"    validate:"omitempty,email"`
	RoleID   string `json:"roleId"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type ActualizarPermisosRequest struct {
	Permissions []string `json:"permissions" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID          string   `json:"id"`
	Nombres     string   `json:"nombres"`
	Email       string   `json:"email"`
	RoleID      string   `json:"roleId"`
	Permissions []string `json:"permissions,omitempty"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
	Roles []RolResponse   `json:"roles"`
}
