package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asignacion registra stock entregado del almacén general a un usuario,
// ya sea por asignación directa o por entrega de un pedido. Append-only.
type Asignacion struct {
	ID          string          `gorm:"primaryKey"`
	UsuarioID   string          `gorm:"column:usuarioId;index;not null"`
	ProductoID  string          `gorm:"column:productoId;index;not null"`
	Cantidad    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad      string          `gorm:"not null"`
	AreaID      string          `gorm:"column:areaId;not null"`
	UbicacionID string          `gorm:"column:ubicacionId;not null"`
	Marca       *string
	CreatedAt   time.Time

	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Asignacion) TableName() string { return "user_stock" }

// Salida registra un consumo del inventario personal de un usuario.
// Decrementa la cantidad en mano derivada; append-only.
type Salida struct {
	ID          string          `gorm:"primaryKey"`
	UsuarioID   string          `gorm:"column:usuarioId;index;not null"`
	ProductoID  string          `gorm:"column:productoId;not null"`
	Cantidad    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad      string          `gorm:"not null"`
	Fecha       time.Time       `gorm:"not null"`
	Observacion *string

	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Salida) TableName() string { return "user_salidas" }
