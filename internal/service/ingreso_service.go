package service

import (
	"context"
	"errors"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
)

type IngresoService interface {
	Crear(ctx context.Context, req dto.CrearIngresoRequest) (*dto.IngresoResponse, error)
	Listar(ctx context.Context) ([]dto.IngresoResponse, error)
	// AlertasVencimiento lists batches expiring within the window, bucketed
	// by urgency: crítica within 7 days, alta within 15, media beyond.
	AlertasVencimiento(ctx context.Context, dias int) ([]dto.AlertaVencimiento, error)
}

type ingresoService struct {
	repo       repository.IngresoRepository
	productos  repository.ProductoRepository
	proveedores repository.ProveedorRepository
}

func NewIngresoService(repo repository.IngresoRepository, productos repository.ProductoRepository, proveedores repository.ProveedorRepository) IngresoService {
	return &ingresoService{repo: repo, productos: productos, proveedores: proveedores}
}

// Crear appends one row to the ingress ledger. Unidad, área, ubicación and
// marca default to the product's values when the request omits them.
func (s *ingresoService) Crear(ctx context.Context, req dto.CrearIngresoRequest) (*dto.IngresoResponse, error) {
	producto, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if _, err := s.proveedores.FindByID(ctx, req.ProveedorID); err != nil {
		return nil, errors.New("proveedor no encontrado")
	}
	if !req.Cantidad.IsPositive() {
		return nil, errors.New("la cantidad debe ser mayor a cero")
	}

	ingreso := &model.Ingreso{
		ID:           uuid.NewString(),
		ProductoID:   producto.ID,
		ProveedorID:  req.ProveedorID,
		Nombre:       producto.Nombre,
		FechaIngreso: time.Now(),
		Cantidad:     req.Cantidad,
		Unidad:       producto.Unidad,
		Precio:       req.Precio,
		AreaID:       producto.AreaID,
		UbicacionID:  producto.UbicacionID,
		Marca:        producto.Marca,
		NumeroSerie:  req.NumeroSerie,
		SerieFactura: req.SerieFactura,
	}
	if req.Unidad != nil && *req.Unidad != "" {
		ingreso.Unidad = *req.Unidad
	}
	if req.AreaID != nil && *req.AreaID != "" {
		ingreso.AreaID = *req.AreaID
	}
	if req.UbicacionID != nil && *req.UbicacionID != "" {
		ingreso.UbicacionID = *req.UbicacionID
	}
	if req.Marca != nil {
		ingreso.Marca = req.Marca
	}
	if req.FechaIngreso != nil && *req.FechaIngreso != "" {
		t, err := parseFecha(*req.FechaIngreso)
		if err != nil {
			return nil, err
		}
		ingreso.FechaIngreso = t
	}
	if req.FechaVencimiento != nil && *req.FechaVencimiento != "" {
		t, err := parseFecha(*req.FechaVencimiento)
		if err != nil {
			return nil, err
		}
		ingreso.FechaVencimiento = &t
	}
	if req.FechaFactura != nil && *req.FechaFactura != "" {
		t, err := parseFecha(*req.FechaFactura)
		if err != nil {
			return nil, err
		}
		ingreso.FechaFactura = &t
	}

	if err := s.repo.Create(ctx, ingreso); err != nil {
		return nil, err
	}
	resp := ingresoAResponse(ingreso)
	return &resp, nil
}

func (s *ingresoService) Listar(ctx context.Context) ([]dto.IngresoResponse, error) {
	ingresos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IngresoResponse, len(ingresos))
	for i := range ingresos {
		resp[i] = ingresoAResponse(&ingresos[i])
	}
	return resp, nil
}

func (s *ingresoService) AlertasVencimiento(ctx context.Context, dias int) ([]dto.AlertaVencimiento, error) {
	if dias <= 0 {
		dias = 30
	}
	hasta := time.Now().AddDate(0, 0, dias)
	ingresos, err := s.repo.PorVencer(ctx, hasta)
	if err != nil {
		return nil, err
	}
	hoy := time.Now()
	alertas := make([]dto.AlertaVencimiento, 0, len(ingresos))
	for i := range ingresos {
		ing := &ingresos[i]
		if ing.FechaVencimiento == nil {
			continue
		}
		restantes := int(ing.FechaVencimiento.Sub(hoy).Hours() / 24)
		urgencia := "media"
		switch {
		case restantes <= 7:
			urgencia = "crítica"
		case restantes <= 15:
			urgencia = "alta"
		}
		nombre := ing.Nombre
		if ing.Producto != nil {
			nombre = ing.Producto.Nombre
		}
		alertas = append(alertas, dto.AlertaVencimiento{
			IngresoID:        ing.ID,
			ProductoID:       ing.ProductoID,
			ProductoNombre:   nombre,
			Cantidad:         ing.Cantidad,
			Unidad:           ing.Unidad,
			Marca:            ing.Marca,
			FechaVencimiento: ing.FechaVencimiento.Format(fechaCorta),
			DiasRestantes:    restantes,
			Urgencia:         urgencia,
		})
	}
	return alertas, nil
}

func ingresoAResponse(i *model.Ingreso) dto.IngresoResponse {
	resp := dto.IngresoResponse{
		ID:           i.ID,
		ProductoID:   i.ProductoID,
		ProveedorID:  i.ProveedorID,
		Cantidad:     i.Cantidad,
		Unidad:       i.Unidad,
		Precio:       i.Precio,
		FechaIngreso: formatFecha(i.FechaIngreso),
		AreaID:       i.AreaID,
		UbicacionID:  i.UbicacionID,
		Marca:        i.Marca,
		NumeroSerie:  i.NumeroSerie,
		SerieFactura: i.SerieFactura,
		ProductoNombre: i.Nombre,
	}
	if i.Producto != nil {
		resp.ProductoNombre = i.Producto.Nombre
	}
	if i.Proveedor != nil {
		resp.ProveedorNombre = i.Proveedor.Nombre
	}
	if i.FechaVencimiento != nil {
		s := i.FechaVencimiento.Format(fechaCorta)
		resp.FechaVencimiento = &s
	}
	if i.FechaFactura != nil {
		s := i.FechaFactura.Format(fechaCorta)
		resp.FechaFactura = &s
	}
	return resp
}
