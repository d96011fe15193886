package repository

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComboStock identifica una combinación producto+marca+unidad presente en el
// ledger de ingresos. La vista de stock general se arma a partir de estos.
type ComboStock struct {
	ProductoID string  `gorm:"column:productoId"`
	Marca      *string `gorm:"column:marca"`
	Unidad     string  `gorm:"column:unidad"`
}

// SaldoUsuarioRow es un agregado por (producto, unidad) de las filas de un
// usuario, ya sea de user_stock o de user_salidas.
type SaldoUsuarioRow struct {
	ProductoID string          `gorm:"column:productoId"`
	Unidad     string          `gorm:"column:unidad"`
	Total      decimal.Decimal `gorm:"column:total"`
}

// StockRepository reúne las consultas del ledger de asignaciones y salidas y
// las sumas con las que se deriva la disponibilidad. Nunca persiste saldos:
// todo se recalcula sobre los registros.
type StockRepository interface {
	SumIngresos(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error)
	SumAsignado(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error)

	// Variantes Tx para recalcular dentro de una transacción de entrega.
	SumIngresosTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error)
	SumAsignadoTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error)

	CreateAsignacionTx(tx *gorm.DB, a *model.Asignacion) error
	CreateSalida(ctx context.Context, s *model.Salida) error

	ListAsignaciones(ctx context.Context) ([]model.Asignacion, error)
	ListAsignacionesUsuario(ctx context.Context, usuarioID string) ([]model.Asignacion, error)
	ListSalidasUsuario(ctx context.Context, usuarioID string) ([]model.Salida, error)
	ListSalidas(ctx context.Context) ([]model.Salida, error)

	AsignadoPorUsuario(ctx context.Context, usuarioID string) ([]SaldoUsuarioRow, error)
	SalidasPorUsuario(ctx context.Context, usuarioID string) ([]SaldoUsuarioRow, error)

	CombosIngresados(ctx context.Context) ([]ComboStock, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

// conMarca aplica el matching de marca de tres estados: sin marca pedida,
// matchean las filas sin marca (NULL o cadena vacía); con marca, match exacto.
func conMarca(q *gorm.DB, marca *string) *gorm.DB {
	if marca == nil || *marca == "" {
		return q.Where("(marca IS NULL OR marca = '')")
	}
	return q.Where("marca = ?", *marca)
}

func sumCantidad(q *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := q.Select("COALESCE(SUM(cantidad), 0) AS total").Scan(&row).Error
	return row.Total, err
}

func (r *stockRepo) SumIngresos(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.Ingreso{}).Where("productoId = ?", productoID)
	return sumCantidad(conMarca(q, marca))
}

func (r *stockRepo) SumAsignado(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.Asignacion{}).Where("productoId = ?", productoID)
	return sumCantidad(conMarca(q, marca))
}

func (r *stockRepo) SumIngresosTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error) {
	q := tx.Model(&model.Ingreso{}).Where("productoId = ?", productoID)
	return sumCantidad(conMarca(q, marca))
}

func (r *stockRepo) SumAsignadoTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error) {
	q := tx.Model(&model.Asignacion{}).Where("productoId = ?", productoID)
	return sumCantidad(conMarca(q, marca))
}

func (r *stockRepo) CreateAsignacionTx(tx *gorm.DB, a *model.Asignacion) error {
	return tx.Create(a).Error
}

func (r *stockRepo) CreateSalida(ctx context.Context, s *model.Salida) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stockRepo) ListAsignaciones(ctx context.Context) ([]model.Asignacion, error) {
	var rows []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *stockRepo) ListAsignacionesUsuario(ctx context.Context, usuarioID string) ([]model.Asignacion, error) {
	var rows []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("usuarioId = ?", usuarioID).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *stockRepo) ListSalidasUsuario(ctx context.Context, usuarioID string) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("usuarioId = ?", usuarioID).
		Order("fecha DESC").Find(&rows).Error
	return rows, err
}

func (r *stockRepo) ListSalidas(ctx context.Context) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Order("fecha DESC").Find(&rows).Error
	return rows, err
}

func (r *stockRepo) AsignadoPorUsuario(ctx context.Context, usuarioID string) ([]SaldoUsuarioRow, error) {
	var rows []SaldoUsuarioRow
	err := r.db.WithContext(ctx).Model(&model.Asignacion{}).
		Select("productoId, unidad, COALESCE(SUM(cantidad), 0) AS total").
		Where("usuarioId = ?", usuarioID).
		Group("productoId, unidad").
		Scan(&rows).Error
	return rows, err
}

func (r *stockRepo) SalidasPorUsuario(ctx context.Context, usuarioID string) ([]SaldoUsuarioRow, error) {
	var rows []SaldoUsuarioRow
	err := r.db.WithContext(ctx).Model(&model.Salida{}).
		Select("productoId, unidad, COALESCE(SUM(cantidad), 0) AS total").
		Where("usuarioId = ?", usuarioID).
		Group("productoId, unidad").
		Scan(&rows).Error
	return rows, err
}

func (r *stockRepo) CombosIngresados(ctx context.Context) ([]ComboStock, error) {
	var rows []ComboStock
	err := r.db.WithContext(ctx).Model(&model.Ingreso{}).
		Select("DISTINCT productoId, marca, unidad").
		Scan(&rows).Error
	return rows, err
}

func (r *stockRepo) DB() *gorm.DB { return r.db }
