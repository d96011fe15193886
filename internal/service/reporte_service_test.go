package service

import (
	"context"
	"testing"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReporteRepo devuelve los datos con los que se carga; las consultas por
// período no filtran porque los tests controlan las fechas.
type stubReporteRepo struct {
	ingresos     []model.Ingreso
	asignaciones []model.Asignacion
	salidas      []model.Salida
	pedidos      []model.Pedido
	inventario   []repository.InventarioRow
}

func (r *stubReporteRepo) IngresosPeriodo(_ context.Context, _, _ time.Time) ([]model.Ingreso, error) {
	return r.ingresos, nil
}

func (r *stubReporteRepo) AsignacionesPeriodo(_ context.Context, _, _ time.Time) ([]model.Asignacion, error) {
	return r.asignaciones, nil
}

func (r *stubReporteRepo) SalidasPeriodo(_ context.Context, _, _ time.Time) ([]model.Salida, error) {
	return r.salidas, nil
}

func (r *stubReporteRepo) PedidosPeriodo(_ context.Context, _, _ time.Time) ([]model.Pedido, error) {
	return r.pedidos, nil
}

func (r *stubReporteRepo) InventarioGeneral(_ context.Context, productoID, _ string) ([]repository.InventarioRow, error) {
	if productoID == "" {
		return r.inventario, nil
	}
	var out []repository.InventarioRow
	for _, row := range r.inventario {
		if row.ProductoID == productoID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubReporteRepo) AsignacionesTodas(_ context.Context, usuarioID string) ([]model.Asignacion, error) {
	if usuarioID == "" {
		return r.asignaciones, nil
	}
	var out []model.Asignacion
	for _, a := range r.asignaciones {
		if a.UsuarioID == usuarioID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubReporteRepo) CountProductos(_ context.Context) (int64, error) { return 0, nil }

func (r *stubReporteRepo) CountUsuarios(_ context.Context) (int64, error) { return 0, nil }

func (r *stubReporteRepo) CountProveedores(_ context.Context) (int64, error) { return 0, nil }

func (r *stubReporteRepo) CountPedidosEstado(_ context.Context, estado string) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.Estado == estado {
			n++
		}
	}
	return n, nil
}

func (r *stubReporteRepo) IngresosDesde(_ context.Context, _ time.Time) (int64, decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range r.ingresos {
		total = total.Add(i.Cantidad.Mul(i.Precio))
	}
	return int64(len(r.ingresos)), total, nil
}

func (r *stubReporteRepo) IngresosPorMes(_ context.Context, _ time.Time) ([]repository.SeriePuntoRow, error) {
	return nil, nil
}

func (r *stubReporteRepo) AsignacionesPorMes(_ context.Context, _ time.Time) ([]repository.SeriePuntoRow, error) {
	return nil, nil
}

func (r *stubReporteRepo) PedidosPorEstado(_ context.Context) ([]repository.SeriePuntoRow, error) {
	return nil, nil
}

func (r *stubReporteRepo) TopProductosAsignados(_ context.Context, _ int) ([]repository.SeriePuntoRow, error) {
	return nil, nil
}

func (r *stubReporteRepo) UltimosIngresos(_ context.Context, limit int) ([]model.Ingreso, error) {
	if len(r.ingresos) > limit {
		return r.ingresos[:limit], nil
	}
	return r.ingresos, nil
}

func (r *stubReporteRepo) UltimasAsignaciones(_ context.Context, _ int) ([]model.Asignacion, error) {
	return r.asignaciones, nil
}

func (r *stubReporteRepo) UltimasSalidas(_ context.Context, _ int) ([]model.Salida, error) {
	return r.salidas, nil
}

func (r *stubReporteRepo) UltimosPedidos(_ context.Context, _ int) ([]model.Pedido, error) {
	return r.pedidos, nil
}

var _ repository.ReporteRepository = (*stubReporteRepo)(nil)

func buildReporteSvc(repo *stubReporteRepo) ReporteService {
	stockRepo := newStubStockRepo()
	productoRepo := newStubProductoRepo()
	usuarioRepo := newStubUsuarioRepo()
	stockSvc := NewStockService(stockRepo, productoRepo, usuarioRepo, testConfig())
	return NewReporteService(repo, stockSvc)
}

func TestInventario_ValorizaConDisponibleDerivado(t *testing.T) {
	repo := &stubReporteRepo{inventario: []repository.InventarioRow{
		{
			ProductoID:     "p1",
			Nombre:         "Cemento",
			Unidad:         "bolsa",
			TotalIngresado: dec(100),
			TotalAsignado:  dec(30),
			PrecioPromedio: dec(10),
			Activo:         true,
		},
	}}
	svc := buildReporteSvc(repo)

	rows, err := svc.Inventario(context.Background(), dto.ReporteFiltro{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].StockDisponible.Equal(dec(70)), "disponible = ingresado - asignado")
	assert.True(t, rows[0].Valorizacion.Equal(dec(700)), "valorización a precio promedio")
}

func TestIngresos_AcumulaTotales(t *testing.T) {
	ahora := time.Now()
	repo := &stubReporteRepo{ingresos: []model.Ingreso{
		{Nombre: "Cemento", Cantidad: dec(40), Precio: dec(10), Unidad: "bolsa", FechaIngreso: ahora},
		{Nombre: "Arena", Cantidad: dec(60), Precio: dec(5), Unidad: "m3", FechaIngreso: ahora},
	}}
	svc := buildReporteSvc(repo)

	resp, err := svc.Ingresos(context.Background(), dto.ReporteFiltro{})
	require.NoError(t, err)
	require.Len(t, resp.Ingresos, 2)
	assert.Equal(t, 2, resp.Totales.TotalRegistros)
	assert.True(t, resp.Totales.TotalUnidades.Equal(dec(100)))
	assert.True(t, resp.Totales.TotalValor.Equal(dec(700)))
}

func TestPedidos_ConteoPorEstado(t *testing.T) {
	ahora := time.Now()
	repo := &stubReporteRepo{pedidos: []model.Pedido{
		{Estado: model.EstadoPendiente, Cantidad: dec(1), Fecha: ahora},
		{Estado: model.EstadoAprobado, Cantidad: dec(2), Fecha: ahora},
		{Estado: model.EstadoAprobado, Cantidad: dec(3), Fecha: ahora},
		{Estado: model.EstadoEntregado, Cantidad: dec(4), Fecha: ahora},
	}}
	svc := buildReporteSvc(repo)

	resp, err := svc.Pedidos(context.Background(), dto.ReporteFiltro{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Pendientes)
	assert.Equal(t, 2, resp.Stats.Aprobados)
	assert.Equal(t, 1, resp.Stats.Entregados)
	assert.True(t, resp.Stats.TotalUnidades.Equal(dec(10)))

	soloAprobados, err := svc.Pedidos(context.Background(), dto.ReporteFiltro{Estado: model.EstadoAprobado})
	require.NoError(t, err)
	assert.Equal(t, 2, soloAprobados.Stats.Total)
}

func TestStockPorUsuario_AgrupaYSumaTotales(t *testing.T) {
	ana := &model.Usuario{ID: "u1", Nombres: "Ana", Email: "ana@demo.com"}
	beto := &model.Usuario{ID: "u2", Nombres: "Beto", Email: "beto@demo.com"}
	cemento := &model.Producto{ID: "p1", Nombre: "Cemento"}
	repo := &stubReporteRepo{asignaciones: []model.Asignacion{
		{UsuarioID: "u1", Usuario: ana, Producto: cemento, Cantidad: dec(5), Unidad: "bolsa"},
		{UsuarioID: "u1", Usuario: ana, Producto: cemento, Cantidad: dec(3), Unidad: "bolsa"},
		{UsuarioID: "u2", Usuario: beto, Producto: cemento, Cantidad: dec(2), Unidad: "bolsa"},
	}}
	svc := buildReporteSvc(repo)

	grupos, err := svc.StockPorUsuario(context.Background(), dto.ReporteFiltro{})
	require.NoError(t, err)
	require.Len(t, grupos, 2)
	assert.Equal(t, "Ana", grupos[0].Usuario)
	assert.Len(t, grupos[0].Productos, 2)
	assert.True(t, grupos[0].TotalItems.Equal(dec(8)))
	assert.True(t, grupos[1].TotalItems.Equal(dec(2)))

	// filtrado por usuario
	grupos, err = svc.StockPorUsuario(context.Background(), dto.ReporteFiltro{UsuarioID: "u2"})
	require.NoError(t, err)
	require.Len(t, grupos, 1)
	assert.Equal(t, "Beto", grupos[0].Usuario)
}

func TestMovimientos_CombinaLibrosYOrdena(t *testing.T) {
	ahora := time.Now()
	ana := &model.Usuario{ID: "u1", Nombres: "Ana"}
	cemento := &model.Producto{ID: "p1", Nombre: "Cemento"}
	repo := &stubReporteRepo{
		ingresos: []model.Ingreso{{
			Nombre: "Cemento", Cantidad: dec(100), Unidad: "bolsa", Precio: dec(10),
			FechaIngreso: ahora.Add(-48 * time.Hour),
		}},
		salidas: []model.Salida{{
			UsuarioID: "u1", Usuario: ana, Producto: cemento,
			Cantidad: dec(4), Unidad: "bolsa", Fecha: ahora,
		}},
		pedidos: []model.Pedido{
			{Estado: model.EstadoEntregado, Usuario: ana, Producto: cemento,
				Cantidad: dec(10), Unidad: "bolsa", Fecha: ahora.Add(-24 * time.Hour)},
			{Estado: model.EstadoPendiente, Usuario: ana, Producto: cemento,
				Cantidad: dec(1), Unidad: "bolsa", Fecha: ahora},
		},
	}
	svc := buildReporteSvc(repo)

	movs, err := svc.Movimientos(context.Background(), dto.ReporteFiltro{})
	require.NoError(t, err)
	// el pedido pendiente no cuenta como movimiento
	require.Len(t, movs, 3)
	assert.Equal(t, "SALIDA", movs[0].Tipo)
	assert.Equal(t, "PEDIDO", movs[1].Tipo)
	assert.Equal(t, "INGRESO", movs[2].Tipo)
	require.NotNil(t, movs[2].Valor)
	assert.True(t, movs[2].Valor.Equal(dec(1000)))

	soloSalidas, err := svc.Movimientos(context.Background(), dto.ReporteFiltro{Tipo: "salida"})
	require.NoError(t, err)
	require.Len(t, soloSalidas, 1)
	assert.Equal(t, "Ana", soloSalidas[0].Origen)
}
