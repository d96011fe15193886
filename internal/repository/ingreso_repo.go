package repository

import (
	"context"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

type IngresoRepository interface {
	Create(ctx context.Context, i *model.Ingreso) error
	FindByID(ctx context.Context, id string) (*model.Ingreso, error)
	List(ctx context.Context) ([]model.Ingreso, error)
	// PorVencer returns rows whose expiry date falls within the window,
	// nearest first. Rows without fechaVencimiento are excluded.
	PorVencer(ctx context.Context, hasta time.Time) ([]model.Ingreso, error)
}

type ingresoRepo struct{ db *gorm.DB }

func NewIngresoRepository(db *gorm.DB) IngresoRepository { return &ingresoRepo{db: db} }

func (r *ingresoRepo) Create(ctx context.Context, i *model.Ingreso) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *ingresoRepo) FindByID(ctx context.Context, id string) (*model.Ingreso, error) {
	var i model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Proveedor").
		Where("id = ?", id).First(&i).Error
	return &i, err
}

func (r *ingresoRepo) List(ctx context.Context) ([]model.Ingreso, error) {
	var ingresos []model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Proveedor").
		Order("fechaIngreso DESC").Find(&ingresos).Error
	return ingresos, err
}

func (r *ingresoRepo) PorVencer(ctx context.Context, hasta time.Time) ([]model.Ingreso, error) {
	var ingresos []model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("fechaVencimiento IS NOT NULL AND fechaVencimiento <= ?", hasta).
		Order("fechaVencimiento ASC").Find(&ingresos).Error
	return ingresos, err
}
