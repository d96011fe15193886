package service

import (
	"context"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPedidoSvc() (PedidoService, *stubPedidoRepo, *stubStockRepo, *stubProductoRepo) {
	pedidoRepo := newStubPedidoRepo()
	stockRepo := newStubStockRepo()
	productoRepo := newStubProductoRepo()
	usuarioRepo := newStubUsuarioRepo()
	stockSvc := NewStockService(stockRepo, productoRepo, usuarioRepo, testConfig())
	svc := NewPedidoService(pedidoRepo, stockRepo, productoRepo, stockSvc, testConfig())
	return svc, pedidoRepo, stockRepo, productoRepo
}

func TestCrearPedido_NacePendienteConLotePropio(t *testing.T) {
	svc, repo, _, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Cemento", nil)

	resp, err := svc.Crear(context.Background(), "user-1", dto.CrearPedidoRequest{
		ProductoID: p.ID,
		Cantidad:   dec(5),
	})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoPendiente, resp.Estado)
	assert.NotEmpty(t, resp.LoteID)
	assert.Equal(t, "und", resp.Unidad) // heredada del producto
	assert.Len(t, repo.pedidos, 1)
}

func TestCrearLote_ComparteLoteYDescartaInvalidas(t *testing.T) {
	svc, repo, _, productoRepo := buildPedidoSvc()
	p1 := seedProducto(productoRepo, "Arena", nil)
	p2 := seedProducto(productoRepo, "Piedra", nil)

	resp, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: p1.ID, Cantidad: dec(3)},
			{ProductoID: "no-existe", Cantidad: dec(1)},
			{ProductoID: p2.ID, Cantidad: dec(0)}, // cantidad inválida
			{ProductoID: p2.ID, Cantidad: dec(2)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Descartados)
	require.Len(t, resp.Creados, 2)
	for _, pedido := range resp.Creados {
		assert.Equal(t, resp.LoteID, pedido.LoteID)
		assert.Equal(t, model.EstadoPendiente, pedido.Estado)
	}
	assert.Len(t, repo.pedidos, 2)
}

func TestCrearLote_TodasInvalidas(t *testing.T) {
	svc, _, _, _ := buildPedidoSvc()
	_, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: "no-existe", Cantidad: dec(1)},
		},
	})
	assert.ErrorContains(t, err, "ninguna línea del pedido es válida")
}

func TestCambiarEstado_Transiciones(t *testing.T) {
	svc, _, _, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Yeso", nil)

	creado, err := svc.Crear(context.Background(), "user-1", dto.CrearPedidoRequest{
		ProductoID: p.ID, Cantidad: dec(2),
	})
	require.NoError(t, err)

	// sólo aprobar/rechazar pasa por este endpoint
	_, err = svc.CambiarEstado(context.Background(), creado.ID, model.EstadoEntregado, "")
	assert.ErrorContains(t, err, "sólo se permite aprobar o rechazar")

	aprobado, err := svc.CambiarEstado(context.Background(), creado.ID, model.EstadoAprobado, "ok")
	require.NoError(t, err)
	assert.Equal(t, model.EstadoAprobado, aprobado.Estado)
	assert.NotNil(t, aprobado.FechaRespuesta)
	assert.Equal(t, "ok", aprobado.Observaciones)

	// aprobado no puede volver a pendiente ni rechazarse
	_, err = svc.CambiarEstado(context.Background(), creado.ID, model.EstadoRechazado, "")
	assert.ErrorContains(t, err, "transición inválida")
}

func TestCambiarEstadoLote_EstampaTodasLasLineas(t *testing.T) {
	svc, repo, _, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Ladrillo", nil)

	lote, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: p.ID, Cantidad: dec(1)},
			{ProductoID: p.ID, Cantidad: dec(2)},
			{ProductoID: p.ID, Cantidad: dec(3)},
		},
	})
	require.NoError(t, err)

	resp, err := svc.CambiarEstadoLote(context.Background(), lote.LoteID, model.EstadoRechazado, "sin presupuesto")
	require.NoError(t, err)
	require.Len(t, resp, 3)
	for _, pedido := range resp {
		assert.Equal(t, model.EstadoRechazado, pedido.Estado)
		assert.Equal(t, "sin presupuesto", pedido.Observaciones)
	}
	for _, pedido := range repo.pedidos {
		assert.Equal(t, model.EstadoRechazado, pedido.Estado)
		assert.NotNil(t, pedido.FechaRespuesta)
	}
}

func TestEntregarLote_CreaAsignacionesYMarcaEntregado(t *testing.T) {
	svc, repo, stockRepo, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Tubo PVC", nil)
	seedIngreso(stockRepo, p.ID, 50, nil)

	lote, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: p.ID, Cantidad: dec(10)},
			{ProductoID: p.ID, Cantidad: dec(15)},
		},
	})
	require.NoError(t, err)

	// un lote pendiente no puede entregarse
	_, err = svc.EntregarLote(context.Background(), lote.LoteID)
	assert.ErrorContains(t, err, "sólo un lote aprobado puede entregarse")

	_, err = svc.CambiarEstadoLote(context.Background(), lote.LoteID, model.EstadoAprobado, "")
	require.NoError(t, err)

	resp, err := svc.EntregarLote(context.Background(), lote.LoteID)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	for _, pedido := range resp {
		assert.Equal(t, model.EstadoEntregado, pedido.Estado)
	}

	// las entregas son asignaciones: la disponibilidad baja 25
	assert.Len(t, stockRepo.asignaciones, 2)
	disponible, _ := stockRepo.SumIngresos(context.Background(), p.ID, nil)
	asignado, _ := stockRepo.SumAsignado(context.Background(), p.ID, nil)
	assert.Equal(t, "25", disponible.Sub(asignado).String())

	for _, pedido := range repo.pedidos {
		assert.Equal(t, model.EstadoEntregado, pedido.Estado)
	}
}

func TestEntregarLote_TodoONada(t *testing.T) {
	svc, repo, stockRepo, productoRepo := buildPedidoSvc()
	p1 := seedProducto(productoRepo, "Cable 12AWG", nil)
	p2 := seedProducto(productoRepo, "Interruptor", nil)
	seedIngreso(stockRepo, p1.ID, 100, nil)
	seedIngreso(stockRepo, p2.ID, 1, nil) // not enough for the second line

	lote, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: p1.ID, Cantidad: dec(10)},
			{ProductoID: p2.ID, Cantidad: dec(5)},
		},
	})
	require.NoError(t, err)
	_, err = svc.CambiarEstadoLote(context.Background(), lote.LoteID, model.EstadoAprobado, "")
	require.NoError(t, err)

	_, err = svc.EntregarLote(context.Background(), lote.LoteID)
	assert.ErrorContains(t, err, "stock insuficiente")
	// el mensaje cita lo disponible y lo pedido
	assert.ErrorContains(t, err, "disponible 1, solicitado 5")

	// nada quedó entregado y no se creó ninguna asignación
	for _, pedido := range repo.pedidos {
		assert.Equal(t, model.EstadoAprobado, pedido.Estado)
	}
	assert.Empty(t, stockRepo.asignaciones)
}

func TestAsignarPedido_EntregaLineaIndividual(t *testing.T) {
	svc, _, stockRepo, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Llave stilson", nil)
	seedIngreso(stockRepo, p.ID, 5, nil)

	creado, err := svc.Crear(context.Background(), "user-1", dto.CrearPedidoRequest{
		ProductoID: p.ID, Cantidad: dec(2),
	})
	require.NoError(t, err)

	// pendiente puede asignarse directo, sin aprobación previa
	resp, err := svc.AsignarPedido(context.Background(), creado.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoEntregado, resp.Estado)
	require.Len(t, stockRepo.asignaciones, 1)
	assert.Equal(t, "a1", stockRepo.asignaciones[0].AreaID)

	// ya resuelto: una segunda entrega se rechaza
	_, err = svc.AsignarPedido(context.Background(), creado.ID)
	assert.ErrorContains(t, err, "ya fue resuelto")
}

func TestListarAgrupados_EstadoMixto(t *testing.T) {
	svc, _, _, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Brocha", nil)

	lote, err := svc.CrearLote(context.Background(), "user-1", dto.CrearLoteRequest{
		Items: []dto.CrearPedidoRequest{
			{ProductoID: p.ID, Cantidad: dec(1)},
			{ProductoID: p.ID, Cantidad: dec(2)},
		},
	})
	require.NoError(t, err)

	// aprobar sólo una línea deja el lote en estado mixto
	_, err = svc.CambiarEstado(context.Background(), lote.Creados[0].ID, model.EstadoAprobado, "")
	require.NoError(t, err)

	lotes, err := svc.ListarAgrupados(context.Background(), "user-1", false)
	require.NoError(t, err)
	require.Len(t, lotes, 1)
	assert.Equal(t, "mixto", lotes[0].Estado)
	assert.Len(t, lotes[0].Items, 2)
}

func TestListarAgrupados_VisibilidadPorUsuario(t *testing.T) {
	svc, _, _, productoRepo := buildPedidoSvc()
	p := seedProducto(productoRepo, "Cinta métrica", nil)

	_, err := svc.Crear(context.Background(), "user-1", dto.CrearPedidoRequest{ProductoID: p.ID, Cantidad: dec(1)})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), "user-2", dto.CrearPedidoRequest{ProductoID: p.ID, Cantidad: dec(1)})
	require.NoError(t, err)

	propios, err := svc.ListarAgrupados(context.Background(), "user-1", false)
	require.NoError(t, err)
	assert.Len(t, propios, 1)

	todos, err := svc.ListarAgrupados(context.Background(), "user-1", true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
