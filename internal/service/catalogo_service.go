package service

import (
	"context"
	"errors"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService administra los catálogos de referencia: áreas, ubicaciones
// y unidades de medida. Ninguno puede borrarse mientras esté referenciado.
type CatalogoService interface {
	Referencias(ctx context.Context) (*dto.ReferenciasResponse, error)

	CrearArea(ctx context.Context, req dto.CrearNombreRequest) (*dto.NombreResponse, error)
	ListarAreas(ctx context.Context) ([]dto.NombreResponse, error)
	ActualizarArea(ctx context.Context, id string, req dto.CrearNombreRequest) (*dto.NombreResponse, error)
	EliminarArea(ctx context.Context, id string) error

	CrearUbicacion(ctx context.Context, req dto.CrearNombreRequest) (*dto.NombreResponse, error)
	ListarUbicaciones(ctx context.Context) ([]dto.NombreResponse, error)
	ActualizarUbicacion(ctx context.Context, id string, req dto.CrearNombreRequest) (*dto.NombreResponse, error)
	EliminarUbicacion(ctx context.Context, id string) error

	CrearUnidad(ctx context.Context, req dto.CrearUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error)
	ListarUnidades(ctx context.Context) ([]dto.UnidadMedidaResponse, error)
	ActualizarUnidad(ctx context.Context, id string, req dto.ActualizarUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error)
	EliminarUnidad(ctx context.Context, id string) error
}

type catalogoService struct {
	repo      repository.CatalogoRepository
	productos repository.ProductoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository, productos repository.ProductoRepository) CatalogoService {
	return &catalogoService{repo: repo, productos: productos}
}

func (s *catalogoService) Referencias(ctx context.Context) (*dto.ReferenciasResponse, error) {
	areas, err := s.ListarAreas(ctx)
	if err != nil {
		return nil, err
	}
	ubicaciones, err := s.ListarUbicaciones(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReferenciasResponse{Areas: areas, Ubicaciones: ubicaciones}, nil
}

// ── Areas ─────────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearArea(ctx context.Context, req dto.CrearNombreRequest) (*dto.NombreResponse, error) {
	a := &model.Area{ID: uuid.NewString(), Nombre: req.Nombre}
	if err := s.repo.CreateArea(ctx, a); err != nil {
		return nil, err
	}
	return &dto.NombreResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

func (s *catalogoService) ListarAreas(ctx context.Context) ([]dto.NombreResponse, error) {
	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NombreResponse, len(areas))
	for i, a := range areas {
		resp[i] = dto.NombreResponse{ID: a.ID, Nombre: a.Nombre}
	}
	return resp, nil
}

func (s *catalogoService) ActualizarArea(ctx context.Context, id string, req dto.CrearNombreRequest) (*dto.NombreResponse, error) {
	a, err := s.repo.FindArea(ctx, id)
	if err != nil {
		return nil, errors.New("área no encontrada")
	}
	a.Nombre = req.Nombre
	if err := s.repo.UpdateArea(ctx, a); err != nil {
		return nil, err
	}
	return &dto.NombreResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

func (s *catalogoService) EliminarArea(ctx context.Context, id string) error {
	if _, err := s.repo.FindArea(ctx, id); err != nil {
		return errors.New("área no encontrada")
	}
	enProductos, err := s.productos.CountByArea(ctx, id)
	if err != nil {
		return err
	}
	enIngresos, err := s.repo.CountIngresosByArea(ctx, id)
	if err != nil {
		return err
	}
	enAsignaciones, err := s.repo.CountAsignacionesByArea(ctx, id)
	if err != nil {
		return err
	}
	if enProductos > 0 || enIngresos > 0 || enAsignaciones > 0 {
		return errors.New("el área está en uso y no puede eliminarse")
	}
	return s.repo.DeleteArea(ctx, id)
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

func (s *catalogoService) CrearUbicacion(ctx context.Context, req dto.CrearNombreRequest) (*dto.NombreResponse, error) {
	u := &model.Ubicacion{ID: uuid.NewString(), Nombre: req.Nombre}
	if err := s.repo.CreateUbicacion(ctx, u); err != nil {
		return nil, err
	}
	return &dto.NombreResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (s *catalogoService) ListarUbicaciones(ctx context.Context) ([]dto.NombreResponse, error) {
	ubicaciones, err := s.repo.ListUbicaciones(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NombreResponse, len(ubicaciones))
	for i, u := range ubicaciones {
		resp[i] = dto.NombreResponse{ID: u.ID, Nombre: u.Nombre}
	}
	return resp, nil
}

func (s *catalogoService) ActualizarUbicacion(ctx context.Context, id string, req dto.CrearNombreRequest) (*dto.NombreResponse, error) {
	u, err := s.repo.FindUbicacion(ctx, id)
	if err != nil {
		return nil, errors.New("ubicación no encontrada")
	}
	u.Nombre = req.Nombre
	if err := s.repo.UpdateUbicacion(ctx, u); err != nil {
		return nil, err
	}
	return &dto.NombreResponse{ID: u.ID, Nombre: u.Nombre}, nil
}

func (s *catalogoService) EliminarUbicacion(ctx context.Context, id string) error {
	if _, err := s.repo.FindUbicacion(ctx, id); err != nil {
		return errors.New("ubicación no encontrada")
	}
	enProductos, err := s.productos.CountByUbicacion(ctx, id)
	if err != nil {
		return err
	}
	enIngresos, err := s.repo.CountIngresosByUbicacion(ctx, id)
	if err != nil {
		return err
	}
	if enProductos > 0 || enIngresos > 0 {
		return errors.New("la ubicación está en uso y no puede eliminarse")
	}
	return s.repo.DeleteUbicacion(ctx, id)
}

// ── Unidades de medida ────────────────────────────────────────────────────────

func (s *catalogoService) CrearUnidad(ctx context.Context, req dto.CrearUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error) {
	u := &model.UnidadMedida{
		ID:      uuid.NewString(),
		Nombre:  req.Nombre,
		Simbolo: req.Simbolo,
		Activo:  true,
	}
	if err := s.repo.CreateUnidad(ctx, u); err != nil {
		return nil, err
	}
	return unidadAResponse(u), nil
}

func (s *catalogoService) ListarUnidades(ctx context.Context) ([]dto.UnidadMedidaResponse, error) {
	unidades, err := s.repo.ListUnidades(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UnidadMedidaResponse, len(unidades))
	for i := range unidades {
		resp[i] = *unidadAResponse(&unidades[i])
	}
	return resp, nil
}

func (s *catalogoService) ActualizarUnidad(ctx context.Context, id string, req dto.ActualizarUnidadMedidaRequest) (*dto.UnidadMedidaResponse, error) {
	u, err := s.repo.FindUnidad(ctx, id)
	if err != nil {
		return nil, errors.New("unidad de medida no encontrada")
	}
	u.Nombre = req.Nombre
	u.Simbolo = req.Simbolo
	if req.Activo != nil {
		u.Activo = *req.Activo
	}
	if err := s.repo.UpdateUnidad(ctx, u); err != nil {
		return nil, err
	}
	return unidadAResponse(u), nil
}

func (s *catalogoService) EliminarUnidad(ctx context.Context, id string) error {
	u, err := s.repo.FindUnidad(ctx, id)
	if err != nil {
		return errors.New("unidad de medida no encontrada")
	}
	n, err := s.repo.CountProductosByUnidad(ctx, u.Simbolo)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("la unidad está en uso y no puede eliminarse")
	}
	return s.repo.DeleteUnidad(ctx, id)
}

func unidadAResponse(u *model.UnidadMedida) *dto.UnidadMedidaResponse {
	return &dto.UnidadMedidaResponse{
		ID:      u.ID,
		Nombre:  u.Nombre,
		Simbolo: u.Simbolo,
		Activo:  u.Activo,
	}
}
