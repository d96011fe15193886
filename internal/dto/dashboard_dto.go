package dto

import "github.com/shopspring/decimal"

type DashboardMetrics struct {
	TotalProductos    int64           `json:"totalProductos"`
	TotalUsuarios     int64           `json:"totalUsuarios"`
	TotalProveedores  int64           `json:"totalProveedores"`
	IngresosMes       int64           `json:"ingresosMes"`
	MontoIngresosMes  decimal.Decimal `json:"montoIngresosMes"`
	PedidosPendientes int64           `json:"pedidosPendientes"`
	StockBajo         int64           `json:"stockBajo"`
	PorVencer         int64           `json:"porVencer"`
}

type SeriePunto struct {
	Etiqueta string          `json:"etiqueta"`
	Valor    decimal.Decimal `json:"valor"`
}

type DashboardCharts struct {
	IngresosPorMes     []SeriePunto `json:"ingresosPorMes"`
	PedidosPorEstado   []SeriePunto `json:"pedidosPorEstado"`
	TopProductos       []SeriePunto `json:"topProductos"`
	AsignacionesPorMes []SeriePunto `json:"asignacionesPorMes"`
}

type ActividadItem struct {
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Usuario     string `json:"usuario"`
	Fecha       string `json:"fecha"`
}

// AlertaVencimiento flags a batch approaching its expiry date. Urgencia
// buckets: "crítica" within 7 days, "alta" within 15, "media" beyond.
type AlertaVencimiento struct {
	IngresoID        string          `json:"ingresoId"`
	ProductoID       string          `json:"productoId"`
	ProductoNombre   string          `json:"producto"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Unidad           string          `json:"unidad"`
	Marca            *string         `json:"marca"`
	FechaVencimiento string          `json:"fechaVencimiento"`
	DiasRestantes    int             `json:"diasRestantes"`
	Urgencia         string          `json:"urgencia"`
}

type AuditoriaFiltro struct {
	UsuarioID string `form:"usuarioId"`
	Modulo    string `form:"modulo"`
	Desde     string `form:"desde"`
	Hasta     string `form:"hasta"`
	Limit     int    `form:"limit"`
}

type AuditoriaConteo struct {
	Etiqueta string `json:"etiqueta"`
	Cantidad int64  `json:"cantidad"`
}

type AuditoriaStats struct {
	TotalRegistros  int64             `json:"totalRegistros"`
	TopUsuarios     []AuditoriaConteo `json:"topUsuarios"`
	TopModulos      []AuditoriaConteo `json:"topModulos"`
	AccionesPorTipo []AuditoriaConteo `json:"accionesPorTipo"`
	UltimasAcciones []AuditoriaItem   `json:"ultimasAcciones"`
}

type AuditoriaItem struct {
	ID                 uint    `json:"id"`
	UsuarioID          string  `json:"usuarioId"`
	UsuarioNombre      string  `json:"usuarioNombre"`
	Accion             string  `json:"accion"`
	Modulo             string  `json:"modulo"`
	EntidadID          *string `json:"entidadId"`
	EntidadDescripcion *string `json:"entidadDescripcion"`
	Cambios            *string `json:"cambios"`
	Fecha              string  `json:"fecha"`
}
