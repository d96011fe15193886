// cmd/seedadmin/main.go — Crea/actualiza el usuario administrador de demo.
// Uso: go run cmd/seedadmin/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "almacen.db"
	}
	email := "admin@demo.com"
	password := "admin123"
	nombres := "Administrador"
	roleID := "role-admin"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (id, nombres, email, roleId, passwordHash, permissions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, '[]', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (email) DO UPDATE
		SET passwordHash = excluded.passwordHash,
		    nombres = excluded.nombres,
		    roleId = excluded.roleId
	`, uuid.NewString(), nombres, email, roleID, string(hash))

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Usuario '%s' creado/actualizado con password '%s'\n", email, password)
}
