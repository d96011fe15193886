package service

import (
	"context"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildUsuarioSvc() (UsuarioService, *stubUsuarioRepo, *stubRolRepo) {
	usuarioRepo := newStubUsuarioRepo()
	rolRepo := newStubRolRepo()
	seedRol(rolRepo, model.RolAdminID, "Administrador", model.PermisosTodos, true)
	seedRol(rolRepo, "role-trabajador", "Trabajador", model.PermisosTrabajador, true)
	return NewUsuarioService(usuarioRepo, rolRepo), usuarioRepo, rolRepo
}

func TestCrearUsuario_PasswordPorDefecto(t *testing.T) {
	svc, usuarioRepo, _ := buildUsuarioSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "Nuevo Usuario",
		Email:   "nuevo@demo.com",
		RoleID:  "role-trabajador",
	})
	require.NoError(t, err)

	stored := usuarioRepo.usuarios[resp.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("cambiar123")))
	assert.Equal(t, "[]", stored.Permissions)
}

func TestCrearUsuario_RolInexistenteYEmailDuplicado(t *testing.T) {
	svc, _, _ := buildUsuarioSvc()

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "X", Email: "x@demo.com", RoleID: "no-existe",
	})
	assert.ErrorContains(t, err, "rol no encontrado")

	_, err = svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "X", Email: "x@demo.com", RoleID: "role-trabajador",
	})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "Otro", Email: "x@demo.com", RoleID: "role-trabajador",
	})
	assert.ErrorContains(t, err, "ya está registrado")
}

func TestActualizarPermisos_DescartaTokensDesconocidos(t *testing.T) {
	svc, usuarioRepo, _ := buildUsuarioSvc()
	u := seedUsuario(usuarioRepo, "Clara", "clara@demo.com", "role-trabajador")

	resp, err := svc.ActualizarPermisos(context.Background(), u.ID, []string{
		model.PermIngresosView,
		"superpoderes.total", // fuera del catálogo
		model.PermReportsView,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{model.PermIngresosView, model.PermReportsView}, resp.Permissions)
}

func TestEliminarUsuario_ProtegeUltimoAdmin(t *testing.T) {
	svc, usuarioRepo, _ := buildUsuarioSvc()
	admin := seedUsuario(usuarioRepo, "Admin", "admin@demo.com", model.RolAdminID)

	err := svc.Eliminar(context.Background(), admin.ID)
	assert.ErrorContains(t, err, "último administrador")

	// con un segundo admin la baja procede
	otro := seedUsuario(usuarioRepo, "Admin 2", "admin2@demo.com", model.RolAdminID)
	err = svc.Eliminar(context.Background(), otro.ID)
	require.NoError(t, err)
	_, ok := usuarioRepo.usuarios[otro.ID]
	assert.False(t, ok)
}
