package model

import (
	"encoding/json"
	"time"
)

// Usuario stores system users. RoleID references roles.id; Permissions is a
// JSON-encoded array of extra permission tokens granted on top of the role
// (union semantics — overrides can only add, never revoke).
type Usuario struct {
	ID           string `gorm:"primaryKey"`
	Nombres      string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	RoleID       string `gorm:"column:roleId;not null"`
	PasswordHash string `gorm:"column:passwordHash;not null"`
	Permissions  string `gorm:"not null;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "users" }

// PermisosExtra decodes the per-user permission overrides. A malformed or
// empty column yields an empty slice, never an error.
func (u *Usuario) PermisosExtra() []string {
	var perms []string
	if err := json.Unmarshal([]byte(u.Permissions), &perms); err != nil {
		return []string{}
	}
	return perms
}
