package repository

import (
	"context"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	CreateBatch(ctx context.Context, pedidos []model.Pedido) error
	FindByID(ctx context.Context, id string) (*model.Pedido, error)
	FindByLote(ctx context.Context, loteID string) ([]model.Pedido, error)
	List(ctx context.Context) ([]model.Pedido, error)
	ListByUsuario(ctx context.Context, usuarioID string) ([]model.Pedido, error)
	ListByEstado(ctx context.Context, estado string) ([]model.Pedido, error)

	UpdateEstado(ctx context.Context, id, estado string, respuesta time.Time, observaciones string) error
	UpdateEstadoLote(ctx context.Context, loteID, estado string, respuesta time.Time, observaciones string) error
	UpdateEstadoLoteTx(tx *gorm.DB, loteID, estado string, respuesta time.Time) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) CreateBatch(ctx context.Context, pedidos []model.Pedido) error {
	return r.db.WithContext(ctx).Create(&pedidos).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id string) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *pedidoRepo) FindByLote(ctx context.Context, loteID string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("loteId = ?", loteID).
		Order("fecha ASC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Order("fecha DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("usuarioId = ?", usuarioID).
		Order("fecha DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListByEstado(ctx context.Context, estado string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Producto").
		Where("estado = ?", estado).
		Order("fecha DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id, estado string, respuesta time.Time, observaciones string) error {
	updates := map[string]interface{}{
		"estado":         estado,
		"fechaRespuesta": respuesta,
	}
	if observaciones != "" {
		updates["observaciones"] = observaciones
	}
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).Updates(updates).Error
}

func (r *pedidoRepo) UpdateEstadoLote(ctx context.Context, loteID, estado string, respuesta time.Time, observaciones string) error {
	updates := map[string]interface{}{
		"estado":         estado,
		"fechaRespuesta": respuesta,
	}
	if observaciones != "" {
		updates["observaciones"] = observaciones
	}
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("loteId = ?", loteID).Updates(updates).Error
}

func (r *pedidoRepo) UpdateEstadoLoteTx(tx *gorm.DB, loteID, estado string, respuesta time.Time) error {
	return tx.Model(&model.Pedido{}).
		Where("loteId = ?", loteID).
		Updates(map[string]interface{}{
			"estado":         estado,
			"fechaRespuesta": respuesta,
		}).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
