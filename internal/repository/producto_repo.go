package repository

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id string) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id string) error
	CountMovimientos(ctx context.Context, id string) (int64, error)
	CountByArea(ctx context.Context, areaID string) (int64, error)
	CountByUbicacion(ctx context.Context, ubicacionID string) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Producto{}).Error
}

// CountMovimientos counts ledger rows that reference the product. A product
// with history cannot be removed without orphaning those rows.
func (r *productoRepo) CountMovimientos(ctx context.Context, id string) (int64, error) {
	var total int64
	for _, m := range []interface{}{&model.Ingreso{}, &model.Asignacion{}, &model.Salida{}, &model.Pedido{}} {
		var n int64
		if err := r.db.WithContext(ctx).Model(m).Where("productoId = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *productoRepo) CountByArea(ctx context.Context, areaID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("areaId = ?", areaID).Count(&n).Error
	return n, err
}

func (r *productoRepo) CountByUbicacion(ctx context.Context, ubicacionID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("ubicacionId = ?", ubicacionID).Count(&n).Error
	return n, err
}
