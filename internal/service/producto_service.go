package service

import (
	"context"
	"errors"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, id string) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	p := &model.Producto{
		ID:          uuid.NewString(),
		Nombre:      req.Nombre,
		Unidad:      req.Unidad,
		AreaID:      req.AreaID,
		UbicacionID: req.UbicacionID,
		Activo:      activo,
		Marca:       req.Marca,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productoAResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoAResponse(&productos[i])
	}
	return resp, nil
}

func (s *productoService) Obtener(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	resp := productoAResponse(p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Unidad != nil {
		p.Unidad = *req.Unidad
	}
	if req.AreaID != nil {
		p.AreaID = *req.AreaID
	}
	if req.UbicacionID != nil {
		p.UbicacionID = *req.UbicacionID
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if req.Marca != nil {
		p.Marca = req.Marca
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productoAResponse(p)
	return &resp, nil
}

// Eliminar rejects deletion while any ledger row (ingresos, asignaciones,
// salidas o pedidos) references the product.
func (s *productoService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	n, err := s.repo.CountMovimientos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("el producto tiene movimientos registrados y no puede eliminarse")
	}
	return s.repo.Delete(ctx, id)
}

func productoAResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Unidad:      p.Unidad,
		AreaID:      p.AreaID,
		UbicacionID: p.UbicacionID,
		Activo:      p.Activo,
		Marca:       p.Marca,
	}
}
