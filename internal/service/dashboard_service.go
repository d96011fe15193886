package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheKeyMetrics = "dashboard:metrics"
	cacheKeyCharts  = "dashboard:charts"
	cacheTTL        = time.Minute
)

// DashboardService produce las métricas de cabecera, las series de los
// gráficos y la actividad reciente. Todo es derivado de los ledgers; Redis
// sólo acorta lecturas repetidas y su ausencia no cambia resultados.
type DashboardService interface {
	Metrics(ctx context.Context) (*dto.DashboardMetrics, error)
	Charts(ctx context.Context) (*dto.DashboardCharts, error)
	Actividad(ctx context.Context, limit int) ([]dto.ActividadItem, error)
}

type dashboardService struct {
	repo     repository.ReporteRepository
	ingresos IngresoService
	stock    StockService
	rdb      *redis.Client
}

func NewDashboardService(repo repository.ReporteRepository, ingresos IngresoService, stock StockService, rdb *redis.Client) DashboardService {
	return &dashboardService{repo: repo, ingresos: ingresos, stock: stock, rdb: rdb}
}

func (s *dashboardService) Metrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	if cached := s.fromCache(ctx, cacheKeyMetrics, &dto.DashboardMetrics{}); cached != nil {
		return cached.(*dto.DashboardMetrics), nil
	}

	m := &dto.DashboardMetrics{MontoIngresosMes: decimal.Zero}
	var err error
	if m.TotalProductos, err = s.repo.CountProductos(ctx); err != nil {
		return nil, err
	}
	if m.TotalUsuarios, err = s.repo.CountUsuarios(ctx); err != nil {
		return nil, err
	}
	if m.TotalProveedores, err = s.repo.CountProveedores(ctx); err != nil {
		return nil, err
	}
	if m.PedidosPendientes, err = s.repo.CountPedidosEstado(ctx, model.EstadoPendiente); err != nil {
		return nil, err
	}

	inicioMes := time.Now().AddDate(0, 0, -30)
	n, monto, err := s.repo.IngresosDesde(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	m.IngresosMes = n
	m.MontoIngresosMes = monto

	bajo, err := s.stock.StockGeneral(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range bajo {
		if item.Disponible.LessThan(umbralStockBajo) {
			m.StockBajo++
		}
	}

	alertas, err := s.ingresos.AlertasVencimiento(ctx, 30)
	if err != nil {
		return nil, err
	}
	m.PorVencer = int64(len(alertas))

	s.toCache(ctx, cacheKeyMetrics, m)
	return m, nil
}

func (s *dashboardService) Charts(ctx context.Context) (*dto.DashboardCharts, error) {
	if cached := s.fromCache(ctx, cacheKeyCharts, &dto.DashboardCharts{}); cached != nil {
		return cached.(*dto.DashboardCharts), nil
	}

	desde := time.Now().AddDate(0, -6, 0)
	ingresos, err := s.repo.IngresosPorMes(ctx, desde)
	if err != nil {
		return nil, err
	}
	asignaciones, err := s.repo.AsignacionesPorMes(ctx, desde)
	if err != nil {
		return nil, err
	}
	estados, err := s.repo.PedidosPorEstado(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopProductosAsignados(ctx, 5)
	if err != nil {
		return nil, err
	}

	charts := &dto.DashboardCharts{
		IngresosPorMes:     seriesDe(ingresos),
		AsignacionesPorMes: seriesDe(asignaciones),
		PedidosPorEstado:   seriesDe(estados),
		TopProductos:       seriesDe(top),
	}
	s.toCache(ctx, cacheKeyCharts, charts)
	return charts, nil
}

// Actividad intercala los últimos movimientos de cada ledger, más recientes
// primero.
func (s *dashboardService) Actividad(ctx context.Context, limit int) ([]dto.ActividadItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 15
	}

	type evento struct {
		item  dto.ActividadItem
		fecha time.Time
	}
	eventos := make([]evento, 0, limit*4)

	ingresos, err := s.repo.UltimosIngresos(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range ingresos {
		ing := &ingresos[i]
		nombre := ing.Nombre
		if ing.Producto != nil {
			nombre = ing.Producto.Nombre
		}
		eventos = append(eventos, evento{
			fecha: ing.FechaIngreso,
			item: dto.ActividadItem{
				Tipo:        "ingreso",
				Descripcion: "Ingreso de " + ing.Cantidad.String() + " " + ing.Unidad + " de " + nombre,
				Fecha:       formatFecha(ing.FechaIngreso),
			},
		})
	}

	asignaciones, err := s.repo.UltimasAsignaciones(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range asignaciones {
		a := &asignaciones[i]
		usuario := ""
		if a.Usuario != nil {
			usuario = a.Usuario.Nombres
		}
		producto := ""
		if a.Producto != nil {
			producto = a.Producto.Nombre
		}
		eventos = append(eventos, evento{
			fecha: a.CreatedAt,
			item: dto.ActividadItem{
				Tipo:        "asignacion",
				Descripcion: "Asignación de " + a.Cantidad.String() + " " + a.Unidad + " de " + producto,
				Usuario:     usuario,
				Fecha:       formatFecha(a.CreatedAt),
			},
		})
	}

	salidas, err := s.repo.UltimasSalidas(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range salidas {
		sal := &salidas[i]
		usuario := ""
		if sal.Usuario != nil {
			usuario = sal.Usuario.Nombres
		}
		producto := ""
		if sal.Producto != nil {
			producto = sal.Producto.Nombre
		}
		eventos = append(eventos, evento{
			fecha: sal.Fecha,
			item: dto.ActividadItem{
				Tipo:        "salida",
				Descripcion: "Salida de " + sal.Cantidad.String() + " " + sal.Unidad + " de " + producto,
				Usuario:     usuario,
				Fecha:       formatFecha(sal.Fecha),
			},
		})
	}

	pedidos, err := s.repo.UltimosPedidos(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range pedidos {
		p := &pedidos[i]
		usuario := ""
		if p.Usuario != nil {
			usuario = p.Usuario.Nombres
		}
		producto := ""
		if p.Producto != nil {
			producto = p.Producto.Nombre
		}
		eventos = append(eventos, evento{
			fecha: p.Fecha,
			item: dto.ActividadItem{
				Tipo:        "pedido",
				Descripcion: "Pedido (" + p.Estado + ") de " + p.Cantidad.String() + " " + p.Unidad + " de " + producto,
				Usuario:     usuario,
				Fecha:       formatFecha(p.Fecha),
			},
		})
	}

	// newest first, cap at limit
	for i := 1; i < len(eventos); i++ {
		for j := i; j > 0 && eventos[j].fecha.After(eventos[j-1].fecha); j-- {
			eventos[j], eventos[j-1] = eventos[j-1], eventos[j]
		}
	}
	if len(eventos) > limit {
		eventos = eventos[:limit]
	}
	items := make([]dto.ActividadItem, len(eventos))
	for i, e := range eventos {
		items[i] = e.item
	}
	return items, nil
}

func seriesDe(rows []repository.SeriePuntoRow) []dto.SeriePunto {
	out := make([]dto.SeriePunto, len(rows))
	for i, row := range rows {
		out[i] = dto.SeriePunto{Etiqueta: row.Etiqueta, Valor: row.Valor}
	}
	return out
}

// fromCache returns the decoded value or nil. Cache failures only log.
func (s *dashboardService) fromCache(ctx context.Context, key string, dest interface{}) interface{} {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return nil
	}
	return dest
}

func (s *dashboardService) toCache(ctx context.Context, key string, v interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("dashboard cache write failed")
	}
}
