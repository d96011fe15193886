package repository

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository covers the three reference catalogs (areas, ubicaciones,
// unidades de medida). They share the same tiny CRUD shape so one repository
// keeps the wiring flat.
type CatalogoRepository interface {
	CreateArea(ctx context.Context, a *model.Area) error
	ListAreas(ctx context.Context) ([]model.Area, error)
	FindArea(ctx context.Context, id string) (*model.Area, error)
	UpdateArea(ctx context.Context, a *model.Area) error
	DeleteArea(ctx context.Context, id string) error
	CountIngresosByArea(ctx context.Context, areaID string) (int64, error)
	CountAsignacionesByArea(ctx context.Context, areaID string) (int64, error)

	CreateUbicacion(ctx context.Context, u *model.Ubicacion) error
	ListUbicaciones(ctx context.Context) ([]model.Ubicacion, error)
	FindUbicacion(ctx context.Context, id string) (*model.Ubicacion, error)
	UpdateUbicacion(ctx context.Context, u *model.Ubicacion) error
	DeleteUbicacion(ctx context.Context, id string) error
	CountIngresosByUbicacion(ctx context.Context, ubicacionID string) (int64, error)

	CreateUnidad(ctx context.Context, u *model.UnidadMedida) error
	ListUnidades(ctx context.Context) ([]model.UnidadMedida, error)
	FindUnidad(ctx context.Context, id string) (*model.UnidadMedida, error)
	UpdateUnidad(ctx context.Context, u *model.UnidadMedida) error
	DeleteUnidad(ctx context.Context, id string) error
	CountProductosByUnidad(ctx context.Context, nombre string) (int64, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CreateArea(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *catalogoRepo) ListAreas(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&areas).Error
	return areas, err
}

func (r *catalogoRepo) FindArea(ctx context.Context, id string) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return &a, err
}

func (r *catalogoRepo) UpdateArea(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *catalogoRepo) DeleteArea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Area{}).Error
}

func (r *catalogoRepo) CountIngresosByArea(ctx context.Context, areaID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Ingreso{}).
		Where("areaId = ?", areaID).Count(&n).Error
	return n, err
}

func (r *catalogoRepo) CountAsignacionesByArea(ctx context.Context, areaID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Asignacion{}).
		Where("areaId = ?", areaID).Count(&n).Error
	return n, err
}

func (r *catalogoRepo) CreateUbicacion(ctx context.Context, u *model.Ubicacion) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *catalogoRepo) ListUbicaciones(ctx context.Context) ([]model.Ubicacion, error) {
	var ubicaciones []model.Ubicacion
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&ubicaciones).Error
	return ubicaciones, err
}

func (r *catalogoRepo) FindUbicacion(ctx context.Context, id string) (*model.Ubicacion, error) {
	var u model.Ubicacion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return &u, err
}

func (r *catalogoRepo) UpdateUbicacion(ctx context.Context, u *model.Ubicacion) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *catalogoRepo) DeleteUbicacion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Ubicacion{}).Error
}

func (r *catalogoRepo) CountIngresosByUbicacion(ctx context.Context, ubicacionID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Ingreso{}).
		Where("ubicacionId = ?", ubicacionID).Count(&n).Error
	return n, err
}

func (r *catalogoRepo) CreateUnidad(ctx context.Context, u *model.UnidadMedida) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *catalogoRepo) ListUnidades(ctx context.Context) ([]model.UnidadMedida, error) {
	var unidades []model.UnidadMedida
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre ASC").Find(&unidades).Error
	return unidades, err
}

func (r *catalogoRepo) FindUnidad(ctx context.Context, id string) (*model.UnidadMedida, error) {
	var u model.UnidadMedida
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return &u, err
}

func (r *catalogoRepo) UpdateUnidad(ctx context.Context, u *model.UnidadMedida) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *catalogoRepo) DeleteUnidad(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UnidadMedida{}).Error
}

// CountProductosByUnidad matches on the unit name because productos store the
// unit as free text, not a foreign key.
func (r *catalogoRepo) CountProductosByUnidad(ctx context.Context, nombre string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("unidad = ?", nombre).Count(&n).Error
	return n, err
}
