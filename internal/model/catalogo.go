package model

// Area is a warehouse zone (reference data).
type Area struct {
	ID     string `gorm:"primaryKey"`
	Nombre string `gorm:"not null"`
}

func (Area) TableName() string { return "areas" }

// Ubicacion is a storage location inside the warehouse.
type Ubicacion struct {
	ID     string `gorm:"primaryKey"`
	Nombre string `gorm:"not null"`
}

func (Ubicacion) TableName() string { return "ubicaciones" }

// UnidadMedida is a unit of measure; Simbolo is what productos reference.
type UnidadMedida struct {
	ID      string `gorm:"primaryKey"`
	Nombre  string `gorm:"not null"`
	Simbolo string `gorm:"uniqueIndex;not null"`
	Activo  bool   `gorm:"not null;default:true"`
}

func (UnidadMedida) TableName() string { return "unidades_medida" }
