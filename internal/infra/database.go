package infra

import (
	"fmt"

	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite file with GORM, applies the connection pragmas
// the embedded engine needs, runs AutoMigrate for every table and finally
// seeds the reference rows. Safe to call on every startup: migration and
// seeding are idempotent.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// WAL keeps readers unblocked during writes; busy_timeout covers the
	// short write lock contention a single-file DB sees under load.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if err := Seed(db); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates every table. Also used by tests against an
// in-memory database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Area{},
		&model.Ubicacion{},
		&model.UnidadMedida{},
		&model.Ingreso{},
		&model.Asignacion{},
		&model.Salida{},
		&model.Pedido{},
		&model.AuditLog{},
	)
}

// Seed inserts the predefined roles, the bootstrap admin account and the
// initial reference catalogs. Every insert is guarded by a lookup so existing
// installations are never touched.
func Seed(db *gorm.DB) error {
	roles := []model.Rol{
		{ID: model.RolAdminID, Name: "Administrador", Permissions: model.EncodePermisos(model.PermisosTodos), Predefined: true, Active: true},
		{ID: model.RolEncargadoID, Name: "Encargado", Permissions: model.EncodePermisos(model.PermisosEncargado), Predefined: true, Active: true},
		{ID: model.RolTrabajadorID, Name: "Trabajador", Permissions: model.EncodePermisos(model.PermisosTrabajador), Predefined: true, Active: true},
	}
	for _, rol := range roles {
		if err := db.Where("id = ?", rol.ID).FirstOrCreate(&model.Rol{}, rol).Error; err != nil {
			return err
		}
	}

	var admins int64
	if err := db.Model(&model.Usuario{}).Where("roleId = ?", model.RolAdminID).Count(&admins).Error; err != nil {
		return err
	}
	if admins == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.Usuario{
			ID:           "user-admin",
			Nombres:      "Administrador",
			Email:        "admin@demo.com",
			RoleID:       model.RolAdminID,
			PasswordHash: string(hash),
			Permissions:  "[]",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	areas := []model.Area{
		{ID: "a1", Nombre: "Almacén Central"},
		{ID: "a2", Nombre: "Almacén Secundario"},
	}
	for _, a := range areas {
		if err := db.Where("id = ?", a.ID).FirstOrCreate(&model.Area{}, a).Error; err != nil {
			return err
		}
	}

	ubicaciones := []model.Ubicacion{
		{ID: "u1", Nombre: "Estante 1"},
		{ID: "u2", Nombre: "Estante 2"},
	}
	for _, u := range ubicaciones {
		if err := db.Where("id = ?", u.ID).FirstOrCreate(&model.Ubicacion{}, u).Error; err != nil {
			return err
		}
	}

	unidades := []model.UnidadMedida{
		{ID: "um-unidad", Nombre: "Unidad", Simbolo: "und", Activo: true},
		{ID: "um-kg", Nombre: "Kilogramo", Simbolo: "kg", Activo: true},
		{ID: "um-litro", Nombre: "Litro", Simbolo: "l", Activo: true},
	}
	for _, u := range unidades {
		if err := db.Where("id = ?", u.ID).FirstOrCreate(&model.UnidadMedida{}, u).Error; err != nil {
			return err
		}
	}

	return nil
}
