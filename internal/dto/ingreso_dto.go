package dto

import "github.com/shopspring/decimal"

type CrearIngresoRequest struct {
	ProductoID       string          `json:"productoId"  validate:"required"`
	ProveedorID      string          `json:"proveedorId" validate:"required"`
	Cantidad         decimal.Decimal `json:"cantidad"    validate:"required,gt=0"`
	Unidad           *string         `json:"unidad"`
	Precio           decimal.Decimal `json:"precio"      validate:"omitempty,gte=0"`
	FechaIngreso     *string         `json:"fechaIngreso"`
	AreaID           *string         `json:"areaId"`
	UbicacionID      *string         `json:"ubicacionId"`
	Marca            *string         `json:"marca"`
	FechaVencimiento *string         `json:"fechaVencimiento"`
	NumeroSerie      *string         `json:"numeroSerie"`
	SerieFactura     *string         `json:"serieFactura"`
	FechaFactura     *string         `json:"fechaFactura"`
}

type IngresoResponse struct {
	ID               string          `json:"id"`
	ProductoID       string          `json:"productoId"`
	ProductoNombre   string          `json:"productoNombre,omitempty"`
	ProveedorID      string          `json:"proveedorId"`
	ProveedorNombre  string          `json:"proveedorNombre,omitempty"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	Precio           decimal.Decimal `json:"precio"`
	FechaIngreso     string          `json:"fechaIngreso"`
	AreaID           string          `json:"areaId"`
	UbicacionID      string          `json:"ubicacionId"`
	Marca            *string         `json:"marca"`
	FechaVencimiento *string         `json:"fechaVencimiento"`
	NumeroSerie      *string         `json:"numeroSerie"`
	SerieFactura     *string         `json:"serieFactura"`
	FechaFactura     *string         `json:"fechaFactura"`
}
