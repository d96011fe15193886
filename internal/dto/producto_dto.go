package dto

type CrearProductoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=120"`
	Unidad      string  `json:"unidad"      validate:"required"`
	AreaID      string  `json:"areaId"      validate:"required"`
	UbicacionID string  `json:"ubicacionId" validate:"required"`
	Activo      *bool   `json:"activo"`
	Marca       *string `json:"marca"`
}

type ActualizarProductoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=120"`
	Unidad      *string `json:"unidad"`
	AreaID      *string `json:"areaId"`
	UbicacionID *string `json:"ubicacionId"`
	Activo      *bool   `json:"activo"`
	Marca       *string `json:"marca"`
}

type ProductoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Unidad      string  `json:"unidad"`
	AreaID      string  `json:"areaId"`
	UbicacionID string  `json:"ubicacionId"`
	Activo      bool    `json:"activo"`
	Marca       *string `json:"marca"`
}
