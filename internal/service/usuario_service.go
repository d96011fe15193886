package service

import (
	"context"
	"errors"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	ActualizarPermisos(ctx context.Context, id string, permisos []string) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type usuarioService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
}

func NewUsuarioService(usuarios repository.UsuarioRepository, roles repository.RolRepository) UsuarioService {
	return &usuarioService{usuarios: usuarios, roles: roles}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.roles.FindByID(ctx, req.RoleID); err != nil {
		return nil, errors.New("rol no encontrado")
	}
	if _, err := s.usuarios.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("el email ya está registrado")
	}

	password := req.Password
	if password == "" {
		password = "cambiar123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		ID:           uuid.NewString(),
		Nombres:      req.Nombres,
		Email:        req.Email,
		RoleID:       req.RoleID,
		PasswordHash: string(hash),
		Permissions:  "[]",
	}
	if err := s.usuarios.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := UsuarioAResponse(user)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = UsuarioAResponse(&users[i])
	}
	return resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("usuario no encontrado")
	}
	if req.Nombres != "" {
		user.Nombres = req.Nombres
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.RoleID != "" {
		if _, err := s.roles.FindByID(ctx, req.RoleID); err != nil {
			return nil, errors.New("rol no encontrado")
		}
		user.RoleID = req.RoleID
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.usuarios.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := UsuarioAResponse(user)
	return &resp, nil
}

// ActualizarPermisos replaces the per-user extra tokens. Unknown tokens are
// discarded so the stored set always stays within the catalog.
func (s *usuarioService) ActualizarPermisos(ctx context.Context, id string, permisos []string) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("usuario no encontrado")
	}
	validos := make([]string, 0, len(permisos))
	for _, token := range permisos {
		if contiene(model.PermisosTodos, token) {
			validos = append(validos, token)
		}
	}
	encoded := model.EncodePermisos(validos)
	if err := s.usuarios.UpdatePermissions(ctx, id, encoded); err != nil {
		return nil, err
	}
	user.Permissions = encoded
	resp := UsuarioAResponse(user)
	return &resp, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id string) error {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return errors.New("usuario no encontrado")
	}
	if user.RoleID == model.RolAdminID {
		n, err := s.usuarios.CountByRole(ctx, model.RolAdminID)
		if err != nil {
			return err
		}
		if n <= 1 {
			return errors.New("no se puede eliminar el último administrador")
		}
	}
	return s.usuarios.Delete(ctx, id)
}
