package dto

import "github.com/shopspring/decimal"

type ReporteFiltro struct {
	Desde       string `form:"desde"`
	Hasta       string `form:"hasta"`
	ProductoID  string `form:"productoId"`
	ProveedorID string `form:"proveedorId"`
	UsuarioID   string `form:"usuarioId"`
	AreaID      string `form:"areaId"`
	Estado      string `form:"estado"`
	Tipo        string `form:"tipo"`
}

type ReporteIngresoRow struct {
	Fecha           string          `json:"fecha"`
	ProductoNombre  string          `json:"producto"`
	ProveedorNombre string          `json:"proveedor"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	Unidad          string          `json:"unidad"`
	Precio          decimal.Decimal `json:"precio"`
	Total           decimal.Decimal `json:"total"`
	Marca           *string         `json:"marca"`
}

type ReporteIngresosTotales struct {
	TotalRegistros int             `json:"totalRegistros"`
	TotalUnidades  decimal.Decimal `json:"totalUnidades"`
	TotalValor     decimal.Decimal `json:"totalValor"`
}

type ReporteIngresos struct {
	Ingresos []ReporteIngresoRow    `json:"ingresos"`
	Totales  ReporteIngresosTotales `json:"totales"`
}

type ReporteAsignacionRow struct {
	Fecha          string          `json:"fecha"`
	UsuarioNombre  string          `json:"usuario"`
	ProductoNombre string          `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	AreaID         string          `json:"areaId"`
	UbicacionID    string          `json:"ubicacionId"`
}

type ReporteSalidaRow struct {
	Fecha          string          `json:"fecha"`
	UsuarioNombre  string          `json:"usuario"`
	ProductoNombre string          `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	Observacion    *string         `json:"observacion"`
}

type ReportePedidoRow struct {
	Fecha          string          `json:"fecha"`
	UsuarioNombre  string          `json:"usuario"`
	ProductoNombre string          `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	Estado         string          `json:"estado"`
	FechaRespuesta *string         `json:"fechaRespuesta"`
}

type ReportePedidosStats struct {
	Total         int             `json:"total"`
	Pendientes    int             `json:"pendientes"`
	Aprobados     int             `json:"aprobados"`
	Rechazados    int             `json:"rechazados"`
	Entregados    int             `json:"entregados"`
	TotalUnidades decimal.Decimal `json:"totalUnidades"`
}

type ReportePedidos struct {
	Pedidos []ReportePedidoRow  `json:"pedidos"`
	Stats   ReportePedidosStats `json:"stats"`
}

// ReporteInventarioRow valoriza el inventario por producto: totales de los
// dos libros, disponible derivado y valorización a precio promedio.
type ReporteInventarioRow struct {
	ProductoID      string          `json:"productoId"`
	ProductoNombre  string          `json:"producto"`
	Marca           *string         `json:"marca"`
	Unidad          string          `json:"unidad"`
	AreaID          string          `json:"areaId"`
	UbicacionID     string          `json:"ubicacionId"`
	TotalIngresado  decimal.Decimal `json:"totalIngresado"`
	TotalAsignado   decimal.Decimal `json:"totalAsignado"`
	StockDisponible decimal.Decimal `json:"stockDisponible"`
	PrecioPromedio  decimal.Decimal `json:"precioPromedio"`
	Valorizacion    decimal.Decimal `json:"valorizacion"`
	Activo          bool            `json:"activo"`
}

type ReporteStockUsuarioItem struct {
	ProductoNombre string          `json:"producto"`
	Marca          *string         `json:"marca"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	AreaID         string          `json:"areaId"`
	UbicacionID    string          `json:"ubicacionId"`
}

type ReporteStockUsuarioGrupo struct {
	Usuario    string                    `json:"usuario"`
	Email      string                    `json:"email"`
	Productos  []ReporteStockUsuarioItem `json:"productos"`
	TotalItems decimal.Decimal           `json:"totalItems"`
}

// ReporteMovimientoRow es una línea del feed combinado de movimientos:
// ingresos, salidas y pedidos entregados en un solo listado.
type ReporteMovimientoRow struct {
	Tipo        string           `json:"tipo"` // INGRESO | SALIDA | PEDIDO
	Fecha       string           `json:"fecha"`
	Descripcion string           `json:"descripcion"`
	Marca       *string          `json:"marca"`
	Cantidad    decimal.Decimal  `json:"cantidad"`
	Unidad      string           `json:"unidad"`
	Precio      *decimal.Decimal `json:"precio"`
	Valor       *decimal.Decimal `json:"valor"`
	Origen      string           `json:"origen"`
}

type ReporteStockBajoRow struct {
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"producto"`
	Unidad         string          `json:"unidad"`
	Marca          *string         `json:"marca"`
	Disponible     decimal.Decimal `json:"disponible"`
}

// ResumenEjecutivo condenses the period into headline numbers for the
// management view.
type ResumenEjecutivo struct {
	TotalIngresos      int             `json:"totalIngresos"`
	MontoIngresos      decimal.Decimal `json:"montoIngresos"`
	TotalAsignaciones  int             `json:"totalAsignaciones"`
	TotalSalidas       int             `json:"totalSalidas"`
	PedidosPendientes  int             `json:"pedidosPendientes"`
	PedidosAprobados   int             `json:"pedidosAprobados"`
	PedidosEntregados  int             `json:"pedidosEntregados"`
	ProductosStockBajo int             `json:"productosStockBajo"`
}
