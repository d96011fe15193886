package dto

import "github.com/shopspring/decimal"

type CrearPedidoRequest struct {
	ProductoID    string          `json:"productoId" validate:"required"`
	Cantidad      decimal.Decimal `json:"cantidad"   validate:"required,gt=0"`
	Unidad        *string         `json:"unidad"`
	Marca         *string         `json:"marca"`
	Observaciones string          `json:"observaciones"`
}

type CrearLoteRequest struct {
	Items []CrearPedidoRequest `json:"items" validate:"required,min=1,dive"`
}

type CambiarEstadoRequest struct {
	Estado        string `json:"estado" validate:"required,oneof=pendiente aprobado rechazado entregado"`
	Observaciones string `json:"observaciones"`
}

type PedidoResponse struct {
	ID             string          `json:"id"`
	UsuarioID      string          `json:"usuarioId"`
	UsuarioNombre  string          `json:"usuarioNombre,omitempty"`
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	Estado         string          `json:"estado"`
	Fecha          string          `json:"fecha"`
	LoteID         string          `json:"loteId"`
	Marca          *string         `json:"marca"`
	FechaRespuesta *string         `json:"fechaRespuesta"`
	Observaciones  string          `json:"observaciones"`
}

// LoteResponse groups the rows of one request batch. Estado reflects
// the batch as a whole: the shared state when uniform, "mixto" otherwise.
type LoteResponse struct {
	LoteID        string           `json:"loteId"`
	UsuarioID     string           `json:"usuarioId"`
	UsuarioNombre string           `json:"usuarioNombre,omitempty"`
	Fecha         string           `json:"fecha"`
	Estado        string           `json:"estado"`
	Items         []PedidoResponse `json:"items"`
}

type CrearLoteResponse struct {
	LoteID      string           `json:"loteId"`
	Creados     []PedidoResponse `json:"creados"`
	Descartados int              `json:"descartados"`
}
