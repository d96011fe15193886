package dto

import "github.com/shopspring/decimal"

type AsignacionRequest struct {
	UsuarioID   string          `json:"usuarioId"   validate:"required"`
	ProductoID  string          `json:"productoId"  validate:"required"`
	Cantidad    decimal.Decimal `json:"cantidad"    validate:"required,gt=0"`
	Unidad      *string         `json:"unidad"`
	AreaID      *string         `json:"areaId"`
	UbicacionID *string         `json:"ubicacionId"`
	Marca       *string         `json:"marca"`
}

type SalidaRequest struct {
	ProductoID  string          `json:"productoId" validate:"required"`
	Cantidad    decimal.Decimal `json:"cantidad"   validate:"required,gt=0"`
	Unidad      *string         `json:"unidad"`
	Observacion *string         `json:"observacion"`
}

// StockMioItem is one per-user balance line: assigned minus withdrawn,
// grouped by product and unit.
type StockMioItem struct {
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Unidad         string          `json:"unidad"`
	Cantidad       decimal.Decimal `json:"cantidad"`
}

// StockGeneralItem is the warehouse-wide availability for one product
// and brand combination, derived from ingresos and user_stock.
type StockGeneralItem struct {
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Unidad         string          `json:"unidad"`
	Marca          *string         `json:"marca"`
	Ingresado      decimal.Decimal `json:"ingresado"`
	Asignado       decimal.Decimal `json:"asignado"`
	Disponible     decimal.Decimal `json:"disponible"`
}

type AsignacionResponse struct {
	ID             string          `json:"id"`
	UsuarioID      string          `json:"usuarioId"`
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	AreaID         string          `json:"areaId"`
	UbicacionID    string          `json:"ubicacionId"`
	Marca          *string         `json:"marca"`
	Fecha          string          `json:"fecha"`
}

type SalidaResponse struct {
	ID          string          `json:"id"`
	UsuarioID   string          `json:"usuarioId"`
	ProductoID  string          `json:"productoId"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Unidad      string          `json:"unidad"`
	Fecha       string          `json:"fecha"`
	Observacion *string         `json:"observacion"`
}
