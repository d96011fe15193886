package service

import (
	"context"
	"errors"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
)

type RolService interface {
	Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error)
	Listar(ctx context.Context) ([]dto.RolResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarRolRequest) (*dto.RolResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type rolService struct {
	roles    repository.RolRepository
	usuarios repository.UsuarioRepository
}

func NewRolService(roles repository.RolRepository, usuarios repository.UsuarioRepository) RolService {
	return &rolService{roles: roles, usuarios: usuarios}
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error) {
	if _, err := s.roles.FindByName(ctx, req.Name); err == nil {
		return nil, errors.New("ya existe un rol con ese nombre")
	}
	validos := filtrarPermisos(req.Permissions)
	rol := &model.Rol{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Permissions: model.EncodePermisos(validos),
		Predefined:  false,
		Active:      true,
	}
	if err := s.roles.Create(ctx, rol); err != nil {
		return nil, err
	}
	resp := RolAResponse(rol)
	return &resp, nil
}

func (s *rolService) Listar(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.roles.List(ctx, false)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RolResponse, len(roles))
	for i := range roles {
		resp[i] = RolAResponse(&roles[i])
	}
	return resp, nil
}

// Actualizar edits a role. Predefined roles accept permission changes but
// their name is immutable.
func (s *rolService) Actualizar(ctx context.Context, id string, req dto.ActualizarRolRequest) (*dto.RolResponse, error) {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("rol no encontrado")
	}
	if req.Name != "" && req.Name != rol.Name {
		if rol.Predefined {
			return nil, errors.New("el nombre de un rol predefinido no puede cambiarse")
		}
		rol.Name = req.Name
	}
	if req.Permissions != nil {
		rol.Permissions = model.EncodePermisos(filtrarPermisos(req.Permissions))
	}
	if err := s.roles.Update(ctx, rol); err != nil {
		return nil, err
	}
	resp := RolAResponse(rol)
	return &resp, nil
}

// Eliminar deactivates a role. Predefined roles and roles still assigned to
// users are protected.
func (s *rolService) Eliminar(ctx context.Context, id string) error {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return errors.New("rol no encontrado")
	}
	if rol.Predefined {
		return errors.New("los roles predefinidos no pueden eliminarse")
	}
	n, err := s.usuarios.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("el rol tiene usuarios asignados y no puede eliminarse")
	}
	return s.roles.Deactivate(ctx, id)
}

func filtrarPermisos(tokens []string) []string {
	validos := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if contiene(model.PermisosTodos, token) {
			validos = append(validos, token)
		}
	}
	return validos
}
