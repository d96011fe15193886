package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. Las transiciones son sólo hacia adelante:
// pendiente → aprobado | rechazado, aprobado → entregado.
// rechazado y entregado son terminales.
const (
	EstadoPendiente = "pendiente"
	EstadoAprobado  = "aprobado"
	EstadoRechazado = "rechazado"
	EstadoEntregado = "entregado"
)

// EstadoValido reports whether s is one of the four known states.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoAprobado, EstadoRechazado, EstadoEntregado:
		return true
	}
	return false
}

// TransicionValida reports whether desde → hacia is a legal forward
// transition of the pedido state machine.
func TransicionValida(desde, hacia string) bool {
	switch desde {
	case EstadoPendiente:
		return hacia == EstadoAprobado || hacia == EstadoRechazado
	case EstadoAprobado:
		return hacia == EstadoEntregado
	}
	return false
}

// Pedido is one requested line of an order. Lines submitted together share a
// LoteID and are approved/rejected/delivered collectively. Estado is the only
// mutable business field (plus FechaRespuesta/Observaciones stamped with it).
type Pedido struct {
	ID             string          `gorm:"primaryKey"`
	UsuarioID      string          `gorm:"column:usuarioId;index;not null"`
	ProductoID     string          `gorm:"column:productoId;not null"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unidad         string          `gorm:"not null"`
	Estado         string          `gorm:"not null;default:'pendiente'"`
	Fecha          time.Time       `gorm:"not null"`
	LoteID         string          `gorm:"column:loteId;index;not null"`
	Marca          *string
	FechaRespuesta *time.Time `gorm:"column:fechaRespuesta"`
	Observaciones  string     `gorm:"not null;default:''"`

	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Pedido) TableName() string { return "pedidos" }
