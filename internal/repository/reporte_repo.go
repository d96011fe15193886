package repository

import (
	"context"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeriePuntoRow es un par etiqueta/valor producido por las consultas de
// agregación (series mensuales, conteos por estado, rankings).
type SeriePuntoRow struct {
	Etiqueta string          `gorm:"column:etiqueta"`
	Valor    decimal.Decimal `gorm:"column:valor"`
}

// InventarioRow es el resultado de la valorización por producto: totales de
// ambos libros más el promedio de precio de compra.
type InventarioRow struct {
	ProductoID     string          `gorm:"column:productoId"`
	Nombre         string          `gorm:"column:nombre"`
	Marca          *string         `gorm:"column:marca"`
	Unidad         string          `gorm:"column:unidad"`
	AreaID         string          `gorm:"column:areaId"`
	UbicacionID    string          `gorm:"column:ubicacionId"`
	TotalIngresado decimal.Decimal `gorm:"column:totalIngresado"`
	TotalAsignado  decimal.Decimal `gorm:"column:totalAsignado"`
	PrecioPromedio decimal.Decimal `gorm:"column:precioPromedio"`
	Activo         bool            `gorm:"column:activo"`
}

// ReporteRepository agrupa las consultas de sólo lectura que alimentan los
// reportes y el dashboard. Ninguna escribe.
type ReporteRepository interface {
	IngresosPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Ingreso, error)
	AsignacionesPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Asignacion, error)
	SalidasPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Salida, error)
	PedidosPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Pedido, error)

	InventarioGeneral(ctx context.Context, productoID, areaID string) ([]InventarioRow, error)
	AsignacionesTodas(ctx context.Context, usuarioID string) ([]model.Asignacion, error)

	CountProductos(ctx context.Context) (int64, error)
	CountUsuarios(ctx context.Context) (int64, error)
	CountProveedores(ctx context.Context) (int64, error)
	CountPedidosEstado(ctx context.Context, estado string) (int64, error)
	IngresosDesde(ctx context.Context, desde time.Time) (int64, decimal.Decimal, error)

	IngresosPorMes(ctx context.Context, desde time.Time) ([]SeriePuntoRow, error)
	AsignacionesPorMes(ctx context.Context, desde time.Time) ([]SeriePuntoRow, error)
	PedidosPorEstado(ctx context.Context) ([]SeriePuntoRow, error)
	TopProductosAsignados(ctx context.Context, limit int) ([]SeriePuntoRow, error)

	UltimosIngresos(ctx context.Context, limit int) ([]model.Ingreso, error)
	UltimasAsignaciones(ctx context.Context, limit int) ([]model.Asignacion, error)
	UltimasSalidas(ctx context.Context, limit int) ([]model.Salida, error)
	UltimosPedidos(ctx context.Context, limit int) ([]model.Pedido, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) IngresosPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Ingreso, error) {
	var rows []model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Proveedor").
		Where("fechaIngreso >= ? AND fechaIngreso <= ?", desde, hasta).
		Order("fechaIngreso DESC").Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) AsignacionesPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Asignacion, error) {
	var rows []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("created_at >= ? AND created_at <= ?", desde, hasta).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) SalidasPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Order("fecha DESC").Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) PedidosPeriodo(ctx context.Context, desde, hasta time.Time) ([]model.Pedido, error) {
	var rows []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Order("fecha DESC").Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) InventarioGeneral(ctx context.Context, productoID, areaID string) ([]InventarioRow, error) {
	q := r.db.WithContext(ctx).
		Table("productos p").
		Select(`p.id AS productoId, p.nombre AS nombre, p.marca AS marca, p.unidad AS unidad,
			p.areaId AS areaId, p.ubicacionId AS ubicacionId,
			COALESCE(SUM(i.cantidad), 0) AS totalIngresado,
			(SELECT COALESCE(SUM(us.cantidad), 0) FROM user_stock us WHERE us.productoId = p.id) AS totalAsignado,
			COALESCE(AVG(i.precio), 0) AS precioPromedio,
			p.activo AS activo`).
		Joins("LEFT JOIN ingresos i ON i.productoId = p.id").
		Group("p.id").
		Order("p.nombre ASC")
	if productoID != "" {
		q = q.Where("p.id = ?", productoID)
	}
	if areaID != "" {
		q = q.Where("p.areaId = ?", areaID)
	}
	var rows []InventarioRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) AsignacionesTodas(ctx context.Context, usuarioID string) ([]model.Asignacion, error) {
	q := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("created_at DESC")
	if usuarioID != "" {
		q = q.Where("usuarioId = ?", usuarioID)
	}
	var rows []model.Asignacion
	err := q.Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) CountProductos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("activo = ?", true).Count(&n).Error
	return n, err
}

func (r *reporteRepo) CountUsuarios(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&n).Error
	return n, err
}

func (r *reporteRepo) CountProveedores(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Proveedor{}).Count(&n).Error
	return n, err
}

func (r *reporteRepo) CountPedidosEstado(ctx context.Context, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("estado = ?", estado).Count(&n).Error
	return n, err
}

func (r *reporteRepo) IngresosDesde(ctx context.Context, desde time.Time) (int64, decimal.Decimal, error) {
	var row struct {
		N     int64           `gorm:"column:n"`
		Monto decimal.Decimal `gorm:"column:monto"`
	}
	err := r.db.WithContext(ctx).Model(&model.Ingreso{}).
		Select("COUNT(*) AS n, COALESCE(SUM(cantidad * precio), 0) AS monto").
		Where("fechaIngreso >= ?", desde).
		Scan(&row).Error
	return row.N, row.Monto, err
}

func (r *reporteRepo) IngresosPorMes(ctx context.Context, desde time.Time) ([]SeriePuntoRow, error) {
	var rows []SeriePuntoRow
	err := r.db.WithContext(ctx).Model(&model.Ingreso{}).
		Select("strftime('%Y-%m', fechaIngreso) AS etiqueta, COALESCE(SUM(cantidad), 0) AS valor").
		Where("fechaIngreso >= ?", desde).
		Group("etiqueta").Order("etiqueta ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) AsignacionesPorMes(ctx context.Context, desde time.Time) ([]SeriePuntoRow, error) {
	var rows []SeriePuntoRow
	err := r.db.WithContext(ctx).Model(&model.Asignacion{}).
		Select("strftime('%Y-%m', created_at) AS etiqueta, COALESCE(SUM(cantidad), 0) AS valor").
		Where("created_at >= ?", desde).
		Group("etiqueta").Order("etiqueta ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) PedidosPorEstado(ctx context.Context) ([]SeriePuntoRow, error) {
	var rows []SeriePuntoRow
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Select("estado AS etiqueta, COUNT(*) AS valor").
		Group("estado").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) TopProductosAsignados(ctx context.Context, limit int) ([]SeriePuntoRow, error) {
	var rows []SeriePuntoRow
	err := r.db.WithContext(ctx).
		Table("user_stock").
		Select("productos.nombre AS etiqueta, COALESCE(SUM(user_stock.cantidad), 0) AS valor").
		Joins("JOIN productos ON productos.id = user_stock.productoId").
		Group("productos.nombre").
		Order("valor DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) UltimosIngresos(ctx context.Context, limit int) ([]model.Ingreso, error) {
	var rows []model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Order("fechaIngreso DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) UltimasAsignaciones(ctx context.Context, limit int) ([]model.Asignacion, error) {
	var rows []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) UltimasSalidas(ctx context.Context, limit int) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("fecha DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *reporteRepo) UltimosPedidos(ctx context.Context, limit int) ([]model.Pedido, error) {
	var rows []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("fecha DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
