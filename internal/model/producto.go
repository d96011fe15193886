package model

import "time"

// Producto is a catalog entry. Marca optionally partitions availability:
// stock of the same product under different brands is tracked separately.
type Producto struct {
	ID          string `gorm:"primaryKey"`
	Nombre      string `gorm:"index;not null"`
	Unidad      string `gorm:"not null"`
	AreaID      string `gorm:"column:areaId;not null"`
	UbicacionID string `gorm:"column:ubicacionId;not null"`
	Activo      bool   `gorm:"not null;default:true"`
	Marca       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }
