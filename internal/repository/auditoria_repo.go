package repository

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

// ConteoRow es un par etiqueta/cantidad de las agregaciones del rastro.
type ConteoRow struct {
	Etiqueta string `gorm:"column:etiqueta"`
	Cantidad int64  `gorm:"column:cantidad"`
}

type AuditoriaRepository interface {
	Insert(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filtro dto.AuditoriaFiltro) ([]model.AuditLog, error)
	Count(ctx context.Context) (int64, error)
	TopUsuarios(ctx context.Context, limit int) ([]ConteoRow, error)
	TopModulos(ctx context.Context, limit int) ([]ConteoRow, error)
	AccionesPorTipo(ctx context.Context) ([]ConteoRow, error)
}

type auditoriaRepo struct{ db *gorm.DB }

func NewAuditoriaRepository(db *gorm.DB) AuditoriaRepository { return &auditoriaRepo{db: db} }

func (r *auditoriaRepo) Insert(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditoriaRepo) List(ctx context.Context, filtro dto.AuditoriaFiltro) ([]model.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if filtro.UsuarioID != "" {
		q = q.Where("usuarioId = ?", filtro.UsuarioID)
	}
	if filtro.Modulo != "" {
		q = q.Where("modulo = ?", filtro.Modulo)
	}
	if filtro.Desde != "" {
		q = q.Where("fecha >= ?", filtro.Desde)
	}
	if filtro.Hasta != "" {
		q = q.Where("fecha <= ?", filtro.Hasta)
	}
	limit := filtro.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []model.AuditLog
	err := q.Order("fecha DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *auditoriaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&n).Error
	return n, err
}

func (r *auditoriaRepo) TopUsuarios(ctx context.Context, limit int) ([]ConteoRow, error) {
	var rows []ConteoRow
	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Select("usuarioNombre AS etiqueta, COUNT(*) AS cantidad").
		Group("usuarioId").Order("cantidad DESC").Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *auditoriaRepo) TopModulos(ctx context.Context, limit int) ([]ConteoRow, error) {
	var rows []ConteoRow
	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Select("modulo AS etiqueta, COUNT(*) AS cantidad").
		Group("modulo").Order("cantidad DESC").Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *auditoriaRepo) AccionesPorTipo(ctx context.Context) ([]ConteoRow, error) {
	var rows []ConteoRow
	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Select("accion AS etiqueta, COUNT(*) AS cantidad").
		Group("accion").Order("cantidad DESC").
		Scan(&rows).Error
	return rows, err
}
