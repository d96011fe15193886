package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Crear(ctx context.Context, usuarioID string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	CrearLote(ctx context.Context, usuarioID string, req dto.CrearLoteRequest) (*dto.CrearLoteResponse, error)

	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ListarMios(ctx context.Context, usuarioID string) ([]dto.PedidoResponse, error)
	ListarAgrupados(ctx context.Context, usuarioID string, todos bool) ([]dto.LoteResponse, error)

	CambiarEstado(ctx context.Context, id, estado, observaciones string) (*dto.PedidoResponse, error)
	CambiarEstadoLote(ctx context.Context, loteID, estado, observaciones string) ([]dto.PedidoResponse, error)

	EntregarLote(ctx context.Context, loteID string) ([]dto.PedidoResponse, error)
	AsignarPedido(ctx context.Context, id string) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	pedidos   repository.PedidoRepository
	stocks    repository.StockRepository
	productos repository.ProductoRepository
	stock     StockService
	cfg       *config.Config
}

func NewPedidoService(pedidos repository.PedidoRepository, stocks repository.StockRepository, productos repository.ProductoRepository, stock StockService, cfg *config.Config) PedidoService {
	return &pedidoService{pedidos: pedidos, stocks: stocks, productos: productos, stock: stock, cfg: cfg}
}

// Crear registra un pedido individual. Recibe su propio loteId para que el
// flujo de lotes cubra también los pedidos sueltos.
func (s *pedidoService) Crear(ctx context.Context, usuarioID string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.armarPedido(ctx, usuarioID, uuid.NewString(), req)
	if err != nil {
		return nil, err
	}
	if err := s.pedidos.Create(ctx, pedido); err != nil {
		return nil, err
	}
	resp := pedidoAResponse(pedido)
	return &resp, nil
}

// CrearLote registra varios pedidos bajo un loteId compartido. Las líneas
// inválidas se descartan; si ninguna sobrevive el lote completo se rechaza.
func (s *pedidoService) CrearLote(ctx context.Context, usuarioID string, req dto.CrearLoteRequest) (*dto.CrearLoteResponse, error) {
	loteID := uuid.NewString()
	validos := make([]model.Pedido, 0, len(req.Items))
	descartados := 0

	for _, item := range req.Items {
		pedido, err := s.armarPedido(ctx, usuarioID, loteID, item)
		if err != nil {
			descartados++
			continue
		}
		validos = append(validos, *pedido)
	}
	if len(validos) == 0 {
		return nil, errors.New("ninguna línea del pedido es válida")
	}
	if err := s.pedidos.CreateBatch(ctx, validos); err != nil {
		return nil, err
	}

	creados := make([]dto.PedidoResponse, len(validos))
	for i := range validos {
		creados[i] = pedidoAResponse(&validos[i])
	}
	return &dto.CrearLoteResponse{LoteID: loteID, Creados: creados, Descartados: descartados}, nil
}

func (s *pedidoService) armarPedido(ctx context.Context, usuarioID, loteID string, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	if !req.Cantidad.IsPositive() {
		return nil, errors.New("la cantidad debe ser mayor a cero")
	}
	producto, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	pedido := &model.Pedido{
		ID:            uuid.NewString(),
		UsuarioID:     usuarioID,
		ProductoID:    producto.ID,
		Cantidad:      req.Cantidad,
		Unidad:        producto.Unidad,
		Estado:        model.EstadoPendiente,
		Fecha:         time.Now(),
		LoteID:        loteID,
		Marca:         producto.Marca,
		Observaciones: req.Observaciones,
	}
	if req.Unidad != nil && *req.Unidad != "" {
		pedido.Unidad = *req.Unidad
	}
	if req.Marca != nil {
		pedido.Marca = req.Marca
	}
	return pedido, nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.List(ctx)
	if err != nil {
		return nil, err
	}
	return pedidosAResponse(pedidos), nil
}

func (s *pedidoService) ListarMios(ctx context.Context, usuarioID string) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return pedidosAResponse(pedidos), nil
}

// ListarAgrupados arma la vista por lote. El estado del lote es el de sus
// líneas cuando es uniforme, "mixto" si difieren.
func (s *pedidoService) ListarAgrupados(ctx context.Context, usuarioID string, todos bool) ([]dto.LoteResponse, error) {
	var pedidos []model.Pedido
	var err error
	if todos {
		pedidos, err = s.pedidos.List(ctx)
	} else {
		pedidos, err = s.pedidos.ListByUsuario(ctx, usuarioID)
	}
	if err != nil {
		return nil, err
	}

	indice := make(map[string]int)
	lotes := make([]dto.LoteResponse, 0)
	for i := range pedidos {
		p := &pedidos[i]
		pos, ok := indice[p.LoteID]
		if !ok {
			nombre := ""
			if p.Usuario != nil {
				nombre = p.Usuario.Nombres
			}
			lotes = append(lotes, dto.LoteResponse{
				LoteID:        p.LoteID,
				UsuarioID:     p.UsuarioID,
				UsuarioNombre: nombre,
				Fecha:         formatFecha(p.Fecha),
				Estado:        p.Estado,
			})
			pos = len(lotes) - 1
			indice[p.LoteID] = pos
		}
		if lotes[pos].Estado != p.Estado {
			lotes[pos].Estado = "mixto"
		}
		lotes[pos].Items = append(lotes[pos].Items, pedidoAResponse(p))
	}
	return lotes, nil
}

// CambiarEstado aprueba o rechaza un pedido individual. La entrega tiene sus
// propios endpoints porque mueve stock.
func (s *pedidoService) CambiarEstado(ctx context.Context, id, estado, observaciones string) (*dto.PedidoResponse, error) {
	if estado != model.EstadoAprobado && estado != model.EstadoRechazado {
		return nil, errors.New("estado inválido: sólo se permite aprobar o rechazar")
	}
	pedido, err := s.pedidos.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido no encontrado")
	}
	if !model.TransicionValida(pedido.Estado, estado) {
		return nil, fmt.Errorf("transición inválida: %s → %s", pedido.Estado, estado)
	}

	ahora := time.Now()
	if err := s.pedidos.UpdateEstado(ctx, id, estado, ahora, observaciones); err != nil {
		return nil, err
	}
	pedido.Estado = estado
	pedido.FechaRespuesta = &ahora
	if observaciones != "" {
		pedido.Observaciones = observaciones
	}
	resp := pedidoAResponse(pedido)
	return &resp, nil
}

// CambiarEstadoLote aprueba o rechaza todas las líneas de un lote de una vez.
// Exige que cada línea admita la transición.
func (s *pedidoService) CambiarEstadoLote(ctx context.Context, loteID, estado, observaciones string) ([]dto.PedidoResponse, error) {
	if estado != model.EstadoAprobado && estado != model.EstadoRechazado {
		return nil, errors.New("estado inválido: sólo se permite aprobar o rechazar")
	}
	pedidos, err := s.pedidos.FindByLote(ctx, loteID)
	if err != nil || len(pedidos) == 0 {
		return nil, errors.New("lote no encontrado")
	}
	for i := range pedidos {
		if !model.TransicionValida(pedidos[i].Estado, estado) {
			return nil, fmt.Errorf("transición inválida: %s → %s", pedidos[i].Estado, estado)
		}
	}

	ahora := time.Now()
	if err := s.pedidos.UpdateEstadoLote(ctx, loteID, estado, ahora, observaciones); err != nil {
		return nil, err
	}
	for i := range pedidos {
		pedidos[i].Estado = estado
		pedidos[i].FechaRespuesta = &ahora
		if observaciones != "" {
			pedidos[i].Observaciones = observaciones
		}
	}
	return pedidosAResponse(pedidos), nil
}

// EntregarLote materializa un lote aprobado: dentro de una única transacción
// revalida la disponibilidad de cada línea, crea las asignaciones y marca el
// lote entregado. Si una sola línea no alcanza, nada se entrega.
func (s *pedidoService) EntregarLote(ctx context.Context, loteID string) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.FindByLote(ctx, loteID)
	if err != nil || len(pedidos) == 0 {
		return nil, errors.New("lote no encontrado")
	}
	for i := range pedidos {
		if pedidos[i].Estado != model.EstadoAprobado {
			return nil, errors.New("sólo un lote aprobado puede entregarse")
		}
	}

	ahora := time.Now()
	txErr := runTx(ctx, s.pedidos.DB(), func(tx *gorm.DB) error {
		// Toda la validación antes de la primera escritura: si una línea no
		// alcanza, ninguna asignación llega a crearse. Las líneas que repiten
		// producto+marca descuentan lo ya comprometido por el propio lote.
		comprometido := make(map[string]decimal.Decimal)
		for i := range pedidos {
			p := &pedidos[i]
			k := p.ProductoID
			if p.Marca != nil && *p.Marca != "" {
				k += "|" + *p.Marca
			}
			disponible, err := s.stock.DisponibleTx(tx, p.ProductoID, p.Marca)
			if err != nil {
				return err
			}
			disponible = disponible.Sub(comprometido[k])
			if disponible.LessThan(p.Cantidad) {
				return fmt.Errorf("stock insuficiente para %s: disponible %s, solicitado %s", nombreDe(p), disponible.String(), p.Cantidad.String())
			}
			comprometido[k] = comprometido[k].Add(p.Cantidad)
		}
		for i := range pedidos {
			asignacion, err := s.asignacionDeEntrega(ctx, &pedidos[i], ahora)
			if err != nil {
				return err
			}
			if err := s.stocks.CreateAsignacionTx(tx, asignacion); err != nil {
				return err
			}
		}
		return s.pedidos.UpdateEstadoLoteTx(tx, loteID, model.EstadoEntregado, ahora)
	})
	if txErr != nil {
		return nil, txErr
	}

	for i := range pedidos {
		pedidos[i].Estado = model.EstadoEntregado
		pedidos[i].FechaRespuesta = &ahora
	}
	return pedidosAResponse(pedidos), nil
}

// AsignarPedido entrega una línea individual: valida disponibilidad, crea la
// asignación y marca el pedido entregado en una transacción.
func (s *pedidoService) AsignarPedido(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	pedido, err := s.pedidos.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido no encontrado")
	}
	if pedido.Estado != model.EstadoPendiente && pedido.Estado != model.EstadoAprobado {
		return nil, errors.New("el pedido ya fue resuelto")
	}

	ahora := time.Now()
	txErr := runTx(ctx, s.pedidos.DB(), func(tx *gorm.DB) error {
		disponible, err := s.stock.DisponibleTx(tx, pedido.ProductoID, pedido.Marca)
		if err != nil {
			return err
		}
		if disponible.LessThan(pedido.Cantidad) {
			return fmt.Errorf("stock insuficiente: disponible %s, solicitado %s", disponible.String(), pedido.Cantidad.String())
		}
		asignacion, err := s.asignacionDeEntrega(ctx, pedido, ahora)
		if err != nil {
			return err
		}
		if err := s.stocks.CreateAsignacionTx(tx, asignacion); err != nil {
			return err
		}
		return s.pedidos.UpdateEstadoLoteTx(tx, pedido.LoteID, model.EstadoEntregado, ahora)
	})
	if txErr != nil {
		return nil, txErr
	}

	pedido.Estado = model.EstadoEntregado
	pedido.FechaRespuesta = &ahora
	resp := pedidoAResponse(pedido)
	return &resp, nil
}

// asignacionDeEntrega construye la fila de user_stock de una línea entregada.
// El área y la ubicación salen del producto, con los valores configurados
// como último recurso.
func (s *pedidoService) asignacionDeEntrega(ctx context.Context, p *model.Pedido, fecha time.Time) (*model.Asignacion, error) {
	areaID := s.cfg.AreaDefault
	ubicacionID := s.cfg.UbicacionDefault
	if producto, err := s.productos.FindByID(ctx, p.ProductoID); err == nil {
		if producto.AreaID != "" {
			areaID = producto.AreaID
		}
		if producto.UbicacionID != "" {
			ubicacionID = producto.UbicacionID
		}
	}
	return &model.Asignacion{
		ID:          uuid.NewString(),
		UsuarioID:   p.UsuarioID,
		ProductoID:  p.ProductoID,
		Cantidad:    p.Cantidad,
		Unidad:      p.Unidad,
		AreaID:      areaID,
		UbicacionID: ubicacionID,
		Marca:       p.Marca,
		CreatedAt:   fecha,
	}, nil
}

func nombreDe(p *model.Pedido) string {
	if p.Producto != nil {
		return p.Producto.Nombre
	}
	return p.ProductoID
}

func pedidosAResponse(pedidos []model.Pedido) []dto.PedidoResponse {
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = pedidoAResponse(&pedidos[i])
	}
	return resp
}

func pedidoAResponse(p *model.Pedido) dto.PedidoResponse {
	resp := dto.PedidoResponse{
		ID:             p.ID,
		UsuarioID:      p.UsuarioID,
		ProductoID:     p.ProductoID,
		Cantidad:       p.Cantidad,
		Unidad:         p.Unidad,
		Estado:         p.Estado,
		Fecha:          formatFecha(p.Fecha),
		LoteID:         p.LoteID,
		Marca:          p.Marca,
		FechaRespuesta: formatFechaPtr(p.FechaRespuesta),
		Observaciones:  p.Observaciones,
	}
	if p.Usuario != nil {
		resp.UsuarioNombre = p.Usuario.Nombres
	}
	if p.Producto != nil {
		resp.ProductoNombre = p.Producto.Nombre
	}
	return resp
}
