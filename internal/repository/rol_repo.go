package repository

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	Create(ctx context.Context, rol *model.Rol) error
	FindByID(ctx context.Context, id string) (*model.Rol, error)
	FindByName(ctx context.Context, name string) (*model.Rol, error)
	List(ctx context.Context, includeInactive bool) ([]model.Rol, error)
	Update(ctx context.Context, rol *model.Rol) error
	Deactivate(ctx context.Context, id string) error
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) FindByID(ctx context.Context, id string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rol).Error
	return &rol, err
}

func (r *rolRepo) FindByName(ctx context.Context, name string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Where("name = ? AND active = ?", name, true).First(&rol).Error
	return &rol, err
}

func (r *rolRepo) List(ctx context.Context, includeInactive bool) ([]model.Rol, error) {
	var roles []model.Rol
	q := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&roles).Error
	return roles, err
}

func (r *rolRepo) Update(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

// Deactivate soft-deletes: the row stays so historic users keep a valid
// roleId reference.
func (r *rolRepo) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Rol{}).
		Where("id = ?", id).Update("active", false).Error
}
