package dto

type CrearRolRequest struct {
	Name        string   `json:"name"        validate:"required,min=2,max=80"`
	Permissions []string `json:"permissions" validate:"required"`
}

type ActualizarRolRequest struct {
	Name        string   `json:"name"        validate:"omitempty,min=2,max=80"`
	Permissions []string `json:"permissions"`
}

type RolResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Predefined  bool     `json:"predefined"`
	Active      bool     `json:"active"`
}
