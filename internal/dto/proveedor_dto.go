package dto

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=120"`
	Direccion string  `json:"direccion" validate:"required"`
	Contacto  string  `json:"contacto"  validate:"required"`
	Telefono  *string `json:"telefono"`
}

type ProveedorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Contacto  string  `json:"contacto"`
	Telefono  *string `json:"telefono"`
}
