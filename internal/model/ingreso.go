package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso registra una recepción de stock desde un proveedor. Append-only:
// una vez creado nunca se actualiza ni se borra; la disponibilidad se deriva
// sumando este ledger.
type Ingreso struct {
	ID               string          `gorm:"primaryKey"`
	ProductoID       string          `gorm:"column:productoId;index;not null"`
	ProveedorID      string          `gorm:"column:proveedorId;not null"`
	Nombre           string          `gorm:"not null"`
	FechaIngreso     time.Time       `gorm:"column:fechaIngreso;not null"`
	Cantidad         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad           string          `gorm:"not null"`
	Precio           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AreaID           string          `gorm:"column:areaId;not null"`
	UbicacionID      string          `gorm:"column:ubicacionId;not null"`
	FechaVencimiento *time.Time      `gorm:"column:fechaVencimiento"`
	NumeroSerie      *string         `gorm:"column:numeroSerie"`
	SerieFactura     *string         `gorm:"column:serieFactura"`
	FechaFactura     *time.Time      `gorm:"column:fechaFactura"`
	Marca            *string

	Producto  *Producto  `gorm:"foreignKey:ProductoID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Ingreso) TableName() string { return "ingresos" }
