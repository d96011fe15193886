package service

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"
)

// PermisoService resuelve el conjunto efectivo de permisos de un usuario:
// los tokens de su rol unidos a sus extras individuales. Los extras sólo
// agregan, nunca quitan. El rol administrador pasa cualquier chequeo.
type PermisoService interface {
	Efectivos(ctx context.Context, usuarioID string) ([]string, error)
	Autorizado(ctx context.Context, usuarioID, roleID string, requeridos ...string) (bool, error)
	// EsGestorPedidos reports whether the user sees every order, not only
	// their own: admins and anyone holding an approval/assignment token.
	EsGestorPedidos(ctx context.Context, usuarioID, roleID string) (bool, error)
}

type permisoService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
}

func NewPermisoService(usuarios repository.UsuarioRepository, roles repository.RolRepository) PermisoService {
	return &permisoService{usuarios: usuarios, roles: roles}
}

func (s *permisoService) Efectivos(ctx context.Context, usuarioID string) ([]string, error) {
	user, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	var base []string
	if rol, err := s.roles.FindByID(ctx, user.RoleID); err == nil {
		base = rol.Permisos()
	}
	return Union(base, user.PermisosExtra()), nil
}

func (s *permisoService) Autorizado(ctx context.Context, usuarioID, roleID string, requeridos ...string) (bool, error) {
	if roleID == model.RolAdminID {
		return true, nil
	}
	efectivos, err := s.Efectivos(ctx, usuarioID)
	if err != nil {
		return false, err
	}
	return ContieneTodos(efectivos, requeridos), nil
}

func (s *permisoService) EsGestorPedidos(ctx context.Context, usuarioID, roleID string) (bool, error) {
	if roleID == model.RolAdminID {
		return true, nil
	}
	efectivos, err := s.Efectivos(ctx, usuarioID)
	if err != nil {
		return false, err
	}
	gestion := []string{model.PermPedidosApprove, model.PermPedidosReject, model.PermInventoryAssign}
	for _, token := range gestion {
		if contiene(efectivos, token) {
			return true, nil
		}
	}
	return false, nil
}

// Union merges two token lists preserving order of first appearance.
func Union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lista := range [][]string{a, b} {
		for _, token := range lista {
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}

// ContieneTodos reports whether every required token is present.
func ContieneTodos(efectivos, requeridos []string) bool {
	for _, token := range requeridos {
		if !contiene(efectivos, token) {
			return false
		}
	}
	return true
}

func contiene(lista []string, token string) bool {
	for _, t := range lista {
		if t == token {
			return true
		}
	}
	return false
}
