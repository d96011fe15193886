package service

import (
	"context"
	"errors"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
	cfg      *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, roles repository.RolRepository, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, roles: roles, cfg: cfg}
}

// Login validates credentials and issues a signed bearer token. The response
// also carries the active role catalog so the client can resolve permission
// sets without a second round trip.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales inválidas")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.List(ctx, false)
	if err != nil {
		return nil, err
	}
	rolesResp := make([]dto.RolResponse, len(roles))
	for i, rol := range roles {
		rolesResp[i] = RolAResponse(&rol)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  UsuarioAResponse(user),
		Roles: rolesResp,
	}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role_id": user.RoleID,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// RolAResponse maps a role row to its API shape.
func RolAResponse(rol *model.Rol) dto.RolResponse {
	return dto.RolResponse{
		ID:          rol.ID,
		Name:        rol.Name,
		Permissions: rol.Permisos(),
		Predefined:  rol.Predefined,
		Active:      rol.Active,
	}
}

// UsuarioAResponse maps a user row to its API shape.
func UsuarioAResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:          u.ID,
		Nombres:     u.Nombres,
		Email:       u.Email,
		RoleID:      u.RoleID,
		Permissions: u.PermisosExtra(),
	}
}
