package service

import (
	"context"
	"sort"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/shopspring/decimal"
)

// umbralStockBajo marca el punto bajo el cual un producto aparece en el
// reporte de stock bajo.
var umbralStockBajo = decimal.NewFromInt(10)

type ReporteService interface {
	Inventario(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteInventarioRow, error)
	Ingresos(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ReporteIngresos, error)
	Asignaciones(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteAsignacionRow, error)
	Salidas(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteSalidaRow, error)
	Pedidos(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ReportePedidos, error)
	StockPorUsuario(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteStockUsuarioGrupo, error)
	Movimientos(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteMovimientoRow, error)
	StockBajo(ctx context.Context) ([]dto.ReporteStockBajoRow, error)
	Resumen(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ResumenEjecutivo, error)
}

type reporteService struct {
	repo  repository.ReporteRepository
	stock StockService
}

func NewReporteService(repo repository.ReporteRepository, stock StockService) ReporteService {
	return &reporteService{repo: repo, stock: stock}
}

// rangoDe resolves the requested period; without filters it covers the last
// 30 days up to now.
func rangoDe(filtro dto.ReporteFiltro) (time.Time, time.Time, error) {
	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -30)
	if filtro.Desde != "" {
		t, err := parseFecha(filtro.Desde)
		if err != nil {
			return desde, hasta, err
		}
		desde = t
	}
	if filtro.Hasta != "" {
		t, err := parseFecha(filtro.Hasta)
		if err != nil {
			return desde, hasta, err
		}
		// inclusive end of day for plain dates
		hasta = t.Add(24*time.Hour - time.Nanosecond)
	}
	return desde, hasta, nil
}

// Inventario valoriza el inventario por producto: ingresado − asignado a
// precio promedio de compra. El disponible se deriva aquí, nunca se persiste.
func (s *reporteService) Inventario(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteInventarioRow, error) {
	inventario, err := s.repo.InventarioGeneral(ctx, filtro.ProductoID, filtro.AreaID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReporteInventarioRow, 0, len(inventario))
	for _, item := range inventario {
		disponible := item.TotalIngresado.Sub(item.TotalAsignado)
		rows = append(rows, dto.ReporteInventarioRow{
			ProductoID:      item.ProductoID,
			ProductoNombre:  item.Nombre,
			Marca:           item.Marca,
			Unidad:          item.Unidad,
			AreaID:          item.AreaID,
			UbicacionID:     item.UbicacionID,
			TotalIngresado:  item.TotalIngresado,
			TotalAsignado:   item.TotalAsignado,
			StockDisponible: disponible,
			PrecioPromedio:  item.PrecioPromedio,
			Valorizacion:    disponible.Mul(item.PrecioPromedio),
			Activo:          item.Activo,
		})
	}
	return rows, nil
}

func (s *reporteService) Ingresos(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ReporteIngresos, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}
	ingresos, err := s.repo.IngresosPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReporteIngresoRow, 0, len(ingresos))
	for i := range ingresos {
		ing := &ingresos[i]
		if filtro.ProductoID != "" && ing.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.ProveedorID != "" && ing.ProveedorID != filtro.ProveedorID {
			continue
		}
		if filtro.AreaID != "" && ing.AreaID != filtro.AreaID {
			continue
		}
		proveedor := ""
		if ing.Proveedor != nil {
			proveedor = ing.Proveedor.Nombre
		}
		nombre := ing.Nombre
		if ing.Producto != nil {
			nombre = ing.Producto.Nombre
		}
		rows = append(rows, dto.ReporteIngresoRow{
			Fecha:           formatFecha(ing.FechaIngreso),
			ProductoNombre:  nombre,
			ProveedorNombre: proveedor,
			Cantidad:        ing.Cantidad,
			Unidad:          ing.Unidad,
			Precio:          ing.Precio,
			Total:           ing.Cantidad.Mul(ing.Precio),
			Marca:           ing.Marca,
		})
	}
	totales := dto.ReporteIngresosTotales{
		TotalRegistros: len(rows),
		TotalUnidades:  decimal.Zero,
		TotalValor:     decimal.Zero,
	}
	for _, row := range rows {
		totales.TotalUnidades = totales.TotalUnidades.Add(row.Cantidad)
		totales.TotalValor = totales.TotalValor.Add(row.Total)
	}
	return &dto.ReporteIngresos{Ingresos: rows, Totales: totales}, nil
}

func (s *reporteService) Asignaciones(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteAsignacionRow, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}
	asignaciones, err := s.repo.AsignacionesPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReporteAsignacionRow, 0, len(asignaciones))
	for i := range asignaciones {
		a := &asignaciones[i]
		if filtro.ProductoID != "" && a.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.UsuarioID != "" && a.UsuarioID != filtro.UsuarioID {
			continue
		}
		if filtro.AreaID != "" && a.AreaID != filtro.AreaID {
			continue
		}
		usuario := ""
		if a.Usuario != nil {
			usuario = a.Usuario.Nombres
		}
		producto := ""
		if a.Producto != nil {
			producto = a.Producto.Nombre
		}
		rows = append(rows, dto.ReporteAsignacionRow{
			Fecha:          formatFecha(a.CreatedAt),
			UsuarioNombre:  usuario,
			ProductoNombre: producto,
			Cantidad:       a.Cantidad,
			Unidad:         a.Unidad,
			AreaID:         a.AreaID,
			UbicacionID:    a.UbicacionID,
		})
	}
	return rows, nil
}

func (s *reporteService) Salidas(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteSalidaRow, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}
	salidas, err := s.repo.SalidasPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReporteSalidaRow, 0, len(salidas))
	for i := range salidas {
		sal := &salidas[i]
		if filtro.ProductoID != "" && sal.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.UsuarioID != "" && sal.UsuarioID != filtro.UsuarioID {
			continue
		}
		usuario := ""
		if sal.Usuario != nil {
			usuario = sal.Usuario.Nombres
		}
		producto := ""
		if sal.Producto != nil {
			producto = sal.Producto.Nombre
		}
		rows = append(rows, dto.ReporteSalidaRow{
			Fecha:          formatFecha(sal.Fecha),
			UsuarioNombre:  usuario,
			ProductoNombre: producto,
			Cantidad:       sal.Cantidad,
			Unidad:         sal.Unidad,
			Observacion:    sal.Observacion,
		})
	}
	return rows, nil
}

func (s *reporteService) Pedidos(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ReportePedidos, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.PedidosPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReportePedidoRow, 0, len(pedidos))
	for i := range pedidos {
		p := &pedidos[i]
		if filtro.ProductoID != "" && p.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.UsuarioID != "" && p.UsuarioID != filtro.UsuarioID {
			continue
		}
		if filtro.Estado != "" && p.Estado != filtro.Estado {
			continue
		}
		usuario := ""
		if p.Usuario != nil {
			usuario = p.Usuario.Nombres
		}
		producto := ""
		if p.Producto != nil {
			producto = p.Producto.Nombre
		}
		rows = append(rows, dto.ReportePedidoRow{
			Fecha:          formatFecha(p.Fecha),
			UsuarioNombre:  usuario,
			ProductoNombre: producto,
			Cantidad:       p.Cantidad,
			Unidad:         p.Unidad,
			Estado:         p.Estado,
			FechaRespuesta: formatFechaPtr(p.FechaRespuesta),
		})
	}
	stats := dto.ReportePedidosStats{Total: len(rows), TotalUnidades: decimal.Zero}
	for _, row := range rows {
		stats.TotalUnidades = stats.TotalUnidades.Add(row.Cantidad)
		switch row.Estado {
		case model.EstadoPendiente:
			stats.Pendientes++
		case model.EstadoAprobado:
			stats.Aprobados++
		case model.EstadoRechazado:
			stats.Rechazados++
		case model.EstadoEntregado:
			stats.Entregados++
		}
	}
	return &dto.ReportePedidos{Pedidos: rows, Stats: stats}, nil
}

// StockPorUsuario agrupa todo el stock asignado por usuario, con el total de
// ítems en mano de cada uno.
func (s *reporteService) StockPorUsuario(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteStockUsuarioGrupo, error) {
	asignaciones, err := s.repo.AsignacionesTodas(ctx, filtro.UsuarioID)
	if err != nil {
		return nil, err
	}
	grupos := make(map[string]*dto.ReporteStockUsuarioGrupo)
	orden := make([]string, 0)
	for i := range asignaciones {
		a := &asignaciones[i]
		usuario, email := a.UsuarioID, ""
		if a.Usuario != nil {
			usuario = a.Usuario.Nombres
			email = a.Usuario.Email
		}
		g, ok := grupos[usuario]
		if !ok {
			g = &dto.ReporteStockUsuarioGrupo{Usuario: usuario, Email: email, TotalItems: decimal.Zero}
			grupos[usuario] = g
			orden = append(orden, usuario)
		}
		var marca *string
		producto := ""
		if a.Producto != nil {
			producto = a.Producto.Nombre
			marca = a.Producto.Marca
		}
		g.Productos = append(g.Productos, dto.ReporteStockUsuarioItem{
			ProductoNombre: producto,
			Marca:          marca,
			Cantidad:       a.Cantidad,
			Unidad:         a.Unidad,
			AreaID:         a.AreaID,
			UbicacionID:    a.UbicacionID,
		})
		g.TotalItems = g.TotalItems.Add(a.Cantidad)
	}
	sort.Strings(orden)
	rows := make([]dto.ReporteStockUsuarioGrupo, 0, len(orden))
	for _, u := range orden {
		rows = append(rows, *grupos[u])
	}
	return rows, nil
}

// Movimientos combina los tres libros en un solo feed ordenado por fecha
// descendente. El filtro tipo (ingreso|salida|pedido) limita las fuentes.
func (s *reporteService) Movimientos(ctx context.Context, filtro dto.ReporteFiltro) ([]dto.ReporteMovimientoRow, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}

	type movimiento struct {
		fecha time.Time
		row   dto.ReporteMovimientoRow
	}
	movs := make([]movimiento, 0)

	if filtro.Tipo == "" || filtro.Tipo == "ingreso" {
		ingresos, err := s.repo.IngresosPeriodo(ctx, desde, hasta)
		if err != nil {
			return nil, err
		}
		for i := range ingresos {
			ing := &ingresos[i]
			origen := ""
			if ing.Proveedor != nil {
				origen = ing.Proveedor.Nombre
			}
			valor := ing.Cantidad.Mul(ing.Precio)
			movs = append(movs, movimiento{fecha: ing.FechaIngreso, row: dto.ReporteMovimientoRow{
				Tipo:        "INGRESO",
				Fecha:       formatFecha(ing.FechaIngreso),
				Descripcion: ing.Nombre,
				Marca:       ing.Marca,
				Cantidad:    ing.Cantidad,
				Unidad:      ing.Unidad,
				Precio:      &ing.Precio,
				Valor:       &valor,
				Origen:      origen,
			}})
		}
	}

	if filtro.Tipo == "" || filtro.Tipo == "salida" {
		salidas, err := s.repo.SalidasPeriodo(ctx, desde, hasta)
		if err != nil {
			return nil, err
		}
		for i := range salidas {
			sal := &salidas[i]
			origen := sal.UsuarioID
			if sal.Usuario != nil {
				origen = sal.Usuario.Nombres
			}
			var marca *string
			descripcion := ""
			if sal.Producto != nil {
				descripcion = sal.Producto.Nombre
				marca = sal.Producto.Marca
			}
			movs = append(movs, movimiento{fecha: sal.Fecha, row: dto.ReporteMovimientoRow{
				Tipo:        "SALIDA",
				Fecha:       formatFecha(sal.Fecha),
				Descripcion: descripcion,
				Marca:       marca,
				Cantidad:    sal.Cantidad,
				Unidad:      sal.Unidad,
				Origen:      origen,
			}})
		}
	}

	if filtro.Tipo == "" || filtro.Tipo == "pedido" {
		pedidos, err := s.repo.PedidosPeriodo(ctx, desde, hasta)
		if err != nil {
			return nil, err
		}
		for i := range pedidos {
			p := &pedidos[i]
			if p.Estado != model.EstadoEntregado {
				continue
			}
			origen := p.UsuarioID
			if p.Usuario != nil {
				origen = p.Usuario.Nombres
			}
			var marca *string
			descripcion := ""
			if p.Producto != nil {
				descripcion = p.Producto.Nombre
				marca = p.Producto.Marca
			}
			movs = append(movs, movimiento{fecha: p.Fecha, row: dto.ReporteMovimientoRow{
				Tipo:        "PEDIDO",
				Fecha:       formatFecha(p.Fecha),
				Descripcion: descripcion,
				Marca:       marca,
				Cantidad:    p.Cantidad,
				Unidad:      p.Unidad,
				Origen:      origen,
			}})
		}
	}

	sort.Slice(movs, func(i, j int) bool { return movs[i].fecha.After(movs[j].fecha) })
	rows := make([]dto.ReporteMovimientoRow, len(movs))
	for i, m := range movs {
		rows[i] = m.row
	}
	return rows, nil
}

func (s *reporteService) StockBajo(ctx context.Context) ([]dto.ReporteStockBajoRow, error) {
	general, err := s.stock.StockGeneral(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ReporteStockBajoRow, 0)
	for _, item := range general {
		if item.Disponible.GreaterThanOrEqual(umbralStockBajo) {
			continue
		}
		rows = append(rows, dto.ReporteStockBajoRow{
			ProductoID:     item.ProductoID,
			ProductoNombre: item.ProductoNombre,
			Unidad:         item.Unidad,
			Marca:          item.Marca,
			Disponible:     item.Disponible,
		})
	}
	return rows, nil
}

func (s *reporteService) Resumen(ctx context.Context, filtro dto.ReporteFiltro) (*dto.ResumenEjecutivo, error) {
	desde, hasta, err := rangoDe(filtro)
	if err != nil {
		return nil, err
	}
	ingresos, err := s.repo.IngresosPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	asignaciones, err := s.repo.AsignacionesPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	salidas, err := s.repo.SalidasPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.PedidosPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	stockBajo, err := s.StockBajo(ctx)
	if err != nil {
		return nil, err
	}

	monto := decimal.Zero
	for i := range ingresos {
		monto = monto.Add(ingresos[i].Cantidad.Mul(ingresos[i].Precio))
	}
	resumen := &dto.ResumenEjecutivo{
		TotalIngresos:      len(ingresos),
		MontoIngresos:      monto,
		TotalAsignaciones:  len(asignaciones),
		TotalSalidas:       len(salidas),
		ProductosStockBajo: len(stockBajo),
	}
	for i := range pedidos {
		switch pedidos[i].Estado {
		case model.EstadoPendiente:
			resumen.PedidosPendientes++
		case model.EstadoAprobado:
			resumen.PedidosAprobados++
		case model.EstadoEntregado:
			resumen.PedidosEntregados++
		}
	}
	return resumen, nil
}
