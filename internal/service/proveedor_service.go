package service

import (
	"context"
	"errors"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id string, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		ID:        uuid.NewString(),
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Contacto:  req.Contacto,
		Telefono:  req.Telefono,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorAResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProveedorResponse, len(proveedores))
	for i := range proveedores {
		resp[i] = proveedorAResponse(&proveedores[i])
	}
	return resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id string, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proveedor no encontrado")
	}
	p.Nombre = req.Nombre
	p.Direccion = req.Direccion
	p.Contacto = req.Contacto
	p.Telefono = req.Telefono
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorAResponse(p)
	return &resp, nil
}

// Eliminar rejects deletion while the supplier is referenced by ingress rows:
// the ledger is append-only and must keep its references intact.
func (s *proveedorService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("proveedor no encontrado")
	}
	n, err := s.repo.CountIngresos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("el proveedor tiene ingresos registrados y no puede eliminarse")
	}
	return s.repo.Delete(ctx, id)
}

func proveedorAResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Direccion: p.Direccion,
		Contacto:  p.Contacto,
		Telefono:  p.Telefono,
	}
}
