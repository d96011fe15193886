package dto

type CrearNombreRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=120"`
}

type NombreResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ReferenciasResponse bundles the two catalogs the SPA loads together.
type ReferenciasResponse struct {
	Areas       []NombreResponse `json:"areas"`
	Ubicaciones []NombreResponse `json:"ubicaciones"`
}

type CrearUnidadMedidaRequest struct {
	Nombre  string `json:"nombre"  validate:"required,min=1,max=80"`
	Simbolo string `json:"simbolo" validate:"required,min=1,max=16"`
}

type ActualizarUnidadMedidaRequest struct {
	Nombre  string `json:"nombre"  validate:"required,min=1,max=80"`
	Simbolo string `json:"simbolo" validate:"required,min=1,max=16"`
	Activo  *bool  `json:"activo"`
}

type UnidadMedidaResponse struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
	Activo  bool   `json:"activo"`
}
