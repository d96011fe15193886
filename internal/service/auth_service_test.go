package service

import (
	"context"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (AuthService, *stubUsuarioRepo, *stubRolRepo) {
	usuarioRepo := newStubUsuarioRepo()
	rolRepo := newStubRolRepo()
	seedRol(rolRepo, model.RolAdminID, "Administrador", model.PermisosTodos, true)
	return NewAuthService(usuarioRepo, rolRepo, testConfig()), usuarioRepo, rolRepo
}

func seedConPassword(repo *stubUsuarioRepo, email, password string) *model.Usuario {
	u := seedUsuario(repo, "Demo", email, model.RolAdminID)
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u.PasswordHash = string(hash)
	return u
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	u := seedConPassword(usuarioRepo, "admin@demo.com", "admin123")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@demo.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, resp.User.ID)
	require.Len(t, resp.Roles, 1)

	parsed, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID, claims["user_id"])
	assert.Equal(t, u.Email, claims["email"])
	assert.Equal(t, model.RolAdminID, claims["role_id"])
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedConPassword(usuarioRepo, "admin@demo.com", "admin123")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@demo.com", Password: "equivocada",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")

	// mismo mensaje para email inexistente: no se filtra cuál falló
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@demo.com", Password: "admin123",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")
}
