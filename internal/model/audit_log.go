package model

import "time"

// AuditLog rastrea acciones sensibles (login, mutaciones de usuarios/roles,
// asignaciones, cambios de estado de pedidos). Se escribe de forma asíncrona
// y best-effort: un fallo de auditoría nunca falla la request.
type AuditLog struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement"`
	UsuarioID          string    `gorm:"column:usuarioId;index;not null"`
	UsuarioNombre      string    `gorm:"column:usuarioNombre"`
	Accion             string    `gorm:"not null"` // crear | actualizar | eliminar | login | ...
	Modulo             string    `gorm:"not null"`
	EntidadID          *string   `gorm:"column:entidadId"`
	EntidadDescripcion *string   `gorm:"column:entidadDescripcion"`
	Cambios            *string   // JSON antes/después
	IP                 *string
	UserAgent          *string   `gorm:"column:userAgent"`
	Fecha              time.Time `gorm:"not null"`
}

func (AuditLog) TableName() string { return "audit_log" }
