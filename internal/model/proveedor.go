package model

import "time"

// Proveedor is reference data for stock suppliers.
type Proveedor struct {
	ID        string `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	Direccion string `gorm:"not null"`
	Contacto  string `gorm:"not null"`
	Telefono  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
