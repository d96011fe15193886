package model

import (
	"encoding/json"
	"time"
)

// Well-known role ids seeded at startup. RolAdminID is the distinguished
// administrator role: it passes every permission gate.
const (
	RolAdminID      = "role-admin"
	RolEncargadoID  = "role-encargado"
	RolTrabajadorID = "role-trabajador"
)

// Rol owns a set of permission tokens, stored JSON-encoded. Predefined roles
// may have their permissions edited but their name is immutable and they can
// never be deleted.
type Rol struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Permissions string `gorm:"not null;default:'[]'"`
	Predefined  bool   `gorm:"not null;default:false"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Rol) TableName() string { return "roles" }

// Permisos decodes the role's permission token set.
func (r *Rol) Permisos() []string {
	var perms []string
	if err := json.Unmarshal([]byte(r.Permissions), &perms); err != nil {
		return []string{}
	}
	return perms
}

// EncodePermisos serializes a token list for storage.
func EncodePermisos(perms []string) string {
	if perms == nil {
		perms = []string{}
	}
	b, _ := json.Marshal(perms)
	return string(b)
}
