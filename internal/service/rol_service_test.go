package service

import (
	"context"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRolSvc() (RolService, *stubRolRepo, *stubUsuarioRepo) {
	rolRepo := newStubRolRepo()
	usuarioRepo := newStubUsuarioRepo()
	seedRol(rolRepo, model.RolAdminID, "Administrador", model.PermisosTodos, true)
	seedRol(rolRepo, "role-trabajador", "Trabajador", model.PermisosTrabajador, true)
	return NewRolService(rolRepo, usuarioRepo), rolRepo, usuarioRepo
}

func TestCrearRol_FiltraPermisosYRechazaNombreDuplicado(t *testing.T) {
	svc, _, _ := buildRolSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearRolRequest{
		Name:        "Auditor",
		Permissions: []string{model.PermReportsView, "token.inventado"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{model.PermReportsView}, resp.Permissions)
	assert.False(t, resp.Predefined)

	_, err = svc.Crear(context.Background(), dto.CrearRolRequest{Name: "Auditor"})
	assert.ErrorContains(t, err, "ya existe un rol con ese nombre")
}

func TestActualizarRol_NombrePredefinidoInmutable(t *testing.T) {
	svc, rolRepo, _ := buildRolSvc()

	_, err := svc.Actualizar(context.Background(), "role-trabajador", dto.ActualizarRolRequest{
		Name: "Operario",
	})
	assert.ErrorContains(t, err, "no puede cambiarse")

	// los permisos de un rol predefinido sí son editables
	resp, err := svc.Actualizar(context.Background(), "role-trabajador", dto.ActualizarRolRequest{
		Permissions: []string{model.PermProductsView},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{model.PermProductsView}, resp.Permissions)
	assert.Equal(t, "Trabajador", rolRepo.roles["role-trabajador"].Name)
}

func TestEliminarRol_Protecciones(t *testing.T) {
	svc, rolRepo, usuarioRepo := buildRolSvc()

	err := svc.Eliminar(context.Background(), model.RolAdminID)
	assert.ErrorContains(t, err, "predefinidos")

	custom := seedRol(rolRepo, "role-custom", "Custom", []string{model.PermReportsView}, false)
	seedUsuario(usuarioRepo, "Uso", "uso@demo.com", custom.ID)
	err = svc.Eliminar(context.Background(), custom.ID)
	assert.ErrorContains(t, err, "usuarios asignados")

	vacio := seedRol(rolRepo, "role-vacio", "Vacío", nil, false)
	err = svc.Eliminar(context.Background(), vacio.ID)
	require.NoError(t, err)
	// baja lógica: la fila queda inactiva, no desaparece
	assert.False(t, rolRepo.roles[vacio.ID].Active)
}
