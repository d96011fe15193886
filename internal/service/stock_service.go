package service

import (
	"context"
	"errors"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockService deriva la disponibilidad del almacén y el inventario personal
// de cada usuario. Nada se cachea ni se persiste: cada lectura vuelve a sumar
// los ledgers de ingresos, asignaciones y salidas.
type StockService interface {
	// Disponible es la cantidad libre de un producto+marca:
	// Σ ingresos − Σ asignaciones, con matching de marca de tres estados.
	Disponible(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error)
	DisponibleTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error)

	// EnMano es el saldo personal de un usuario para producto+unidad:
	// Σ asignado − Σ salidas.
	EnMano(ctx context.Context, usuarioID, productoID, unidad string) (decimal.Decimal, error)

	StockGeneral(ctx context.Context) ([]dto.StockGeneralItem, error)
	StockMio(ctx context.Context, usuarioID string) ([]dto.StockMioItem, error)

	Asignar(ctx context.Context, req dto.AsignacionRequest) (*dto.AsignacionResponse, error)
	RegistrarSalida(ctx context.Context, usuarioID string, req dto.SalidaRequest) (*dto.SalidaResponse, error)

	ListarAsignaciones(ctx context.Context) ([]dto.AsignacionResponse, error)
	ListarAsignacionesUsuario(ctx context.Context, usuarioID string) ([]dto.AsignacionResponse, error)
	ListarSalidas(ctx context.Context) ([]dto.SalidaResponse, error)
	ListarSalidasUsuario(ctx context.Context, usuarioID string) ([]dto.SalidaResponse, error)
}

type stockService struct {
	stocks    repository.StockRepository
	productos repository.ProductoRepository
	usuarios  repository.UsuarioRepository
	cfg       *config.Config
}

func NewStockService(stocks repository.StockRepository, productos repository.ProductoRepository, usuarios repository.UsuarioRepository, cfg *config.Config) StockService {
	return &stockService{stocks: stocks, productos: productos, usuarios: usuarios, cfg: cfg}
}

func (s *stockService) Disponible(ctx context.Context, productoID string, marca *string) (decimal.Decimal, error) {
	ingresado, err := s.stocks.SumIngresos(ctx, productoID, marca)
	if err != nil {
		return decimal.Zero, err
	}
	asignado, err := s.stocks.SumAsignado(ctx, productoID, marca)
	if err != nil {
		return decimal.Zero, err
	}
	return ingresado.Sub(asignado), nil
}

func (s *stockService) DisponibleTx(tx *gorm.DB, productoID string, marca *string) (decimal.Decimal, error) {
	ingresado, err := s.stocks.SumIngresosTx(tx, productoID, marca)
	if err != nil {
		return decimal.Zero, err
	}
	asignado, err := s.stocks.SumAsignadoTx(tx, productoID, marca)
	if err != nil {
		return decimal.Zero, err
	}
	return ingresado.Sub(asignado), nil
}

func (s *stockService) EnMano(ctx context.Context, usuarioID, productoID, unidad string) (decimal.Decimal, error) {
	asignado, err := s.stocks.AsignadoPorUsuario(ctx, usuarioID)
	if err != nil {
		return decimal.Zero, err
	}
	salidas, err := s.stocks.SalidasPorUsuario(ctx, usuarioID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range asignado {
		if row.ProductoID == productoID && row.Unidad == unidad {
			total = total.Add(row.Total)
		}
	}
	for _, row := range salidas {
		if row.ProductoID == productoID && row.Unidad == unidad {
			total = total.Sub(row.Total)
		}
	}
	return total, nil
}

// StockGeneral recorre cada combinación producto+marca vista en los ingresos
// y deriva su disponibilidad. Las marcas NULL y vacía colapsan en el mismo
// bucket "sin marca".
func (s *stockService) StockGeneral(ctx context.Context) ([]dto.StockGeneralItem, error) {
	combos, err := s.stocks.CombosIngresados(ctx)
	if err != nil {
		return nil, err
	}
	nombres, err := s.nombresProductos(ctx)
	if err != nil {
		return nil, err
	}

	type clave struct{ producto, marca string }
	vistos := make(map[clave]bool, len(combos))
	items := make([]dto.StockGeneralItem, 0, len(combos))

	for _, combo := range combos {
		marcaNorm := ""
		if combo.Marca != nil {
			marcaNorm = *combo.Marca
		}
		k := clave{combo.ProductoID, marcaNorm}
		if vistos[k] {
			continue
		}
		vistos[k] = true

		ingresado, err := s.stocks.SumIngresos(ctx, combo.ProductoID, combo.Marca)
		if err != nil {
			return nil, err
		}
		asignado, err := s.stocks.SumAsignado(ctx, combo.ProductoID, combo.Marca)
		if err != nil {
			return nil, err
		}

		var marca *string
		if marcaNorm != "" {
			marca = &marcaNorm
		}
		items = append(items, dto.StockGeneralItem{
			ProductoID:     combo.ProductoID,
			ProductoNombre: nombres[combo.ProductoID],
			Unidad:         combo.Unidad,
			Marca:          marca,
			Ingresado:      ingresado,
			Asignado:       asignado,
			Disponible:     ingresado.Sub(asignado),
		})
	}
	return items, nil
}

func (s *stockService) StockMio(ctx context.Context, usuarioID string) ([]dto.StockMioItem, error) {
	asignado, err := s.stocks.AsignadoPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	salidas, err := s.stocks.SalidasPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	nombres, err := s.nombresProductos(ctx)
	if err != nil {
		return nil, err
	}

	type clave struct{ producto, unidad string }
	saldos := make(map[clave]decimal.Decimal)
	orden := make([]clave, 0, len(asignado))
	for _, row := range asignado {
		k := clave{row.ProductoID, row.Unidad}
		if _, ok := saldos[k]; !ok {
			orden = append(orden, k)
		}
		saldos[k] = saldos[k].Add(row.Total)
	}
	for _, row := range salidas {
		k := clave{row.ProductoID, row.Unidad}
		if _, ok := saldos[k]; !ok {
			orden = append(orden, k)
		}
		saldos[k] = saldos[k].Sub(row.Total)
	}

	items := make([]dto.StockMioItem, 0, len(orden))
	for _, k := range orden {
		items = append(items, dto.StockMioItem{
			ProductoID:     k.producto,
			ProductoNombre: nombres[k.producto],
			Unidad:         k.unidad,
			Cantidad:       saldos[k],
		})
	}
	return items, nil
}

// Asignar moves stock from the warehouse into a user's personal inventory.
// La disponibilidad se revalida dentro de la misma transacción que inserta la
// asignación, igual que en las entregas de pedidos.
func (s *stockService) Asignar(ctx context.Context, req dto.AsignacionRequest) (*dto.AsignacionResponse, error) {
	if !req.Cantidad.IsPositive() {
		return nil, errors.New("la cantidad debe ser mayor a cero")
	}
	if _, err := s.usuarios.FindByID(ctx, req.UsuarioID); err != nil {
		return nil, errors.New("usuario no encontrado")
	}
	producto, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	marca := req.Marca
	if marca == nil {
		marca = producto.Marca
	}
	a := s.nuevaAsignacion(req.UsuarioID, producto, req.Cantidad, req.Unidad, req.AreaID, req.UbicacionID, marca)
	txErr := runTx(ctx, s.stocks.DB(), func(tx *gorm.DB) error {
		disponible, err := s.DisponibleTx(tx, req.ProductoID, marca)
		if err != nil {
			return err
		}
		if disponible.LessThan(req.Cantidad) {
			return errors.New("stock insuficiente: disponible " + disponible.String() + ", solicitado " + req.Cantidad.String())
		}
		return s.stocks.CreateAsignacionTx(tx, a)
	})
	if txErr != nil {
		return nil, txErr
	}
	resp := asignacionAResponse(a, "")
	return &resp, nil
}

// nuevaAsignacion resolves defaults: unidad/área/ubicación come from the
// product, and the configured fallbacks cover products without one.
func (s *stockService) nuevaAsignacion(usuarioID string, producto *model.Producto, cantidad decimal.Decimal, unidad, areaID, ubicacionID, marca *string) *model.Asignacion {
	a := &model.Asignacion{
		ID:          uuid.NewString(),
		UsuarioID:   usuarioID,
		ProductoID:  producto.ID,
		Cantidad:    cantidad,
		Unidad:      producto.Unidad,
		AreaID:      producto.AreaID,
		UbicacionID: producto.UbicacionID,
		Marca:       marca,
		CreatedAt:   time.Now(),
	}
	if unidad != nil && *unidad != "" {
		a.Unidad = *unidad
	}
	if areaID != nil && *areaID != "" {
		a.AreaID = *areaID
	}
	if ubicacionID != nil && *ubicacionID != "" {
		a.UbicacionID = *ubicacionID
	}
	if a.AreaID == "" {
		a.AreaID = s.cfg.AreaDefault
	}
	if a.UbicacionID == "" {
		a.UbicacionID = s.cfg.UbicacionDefault
	}
	return a
}

// RegistrarSalida consumes from the user's personal inventory after checking
// the derived on-hand balance.
func (s *stockService) RegistrarSalida(ctx context.Context, usuarioID string, req dto.SalidaRequest) (*dto.SalidaResponse, error) {
	if !req.Cantidad.IsPositive() {
		return nil, errors.New("la cantidad debe ser mayor a cero")
	}
	producto, err := s.productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	unidad := producto.Unidad
	if req.Unidad != nil && *req.Unidad != "" {
		unidad = *req.Unidad
	}

	enMano, err := s.EnMano(ctx, usuarioID, req.ProductoID, unidad)
	if err != nil {
		return nil, err
	}
	if enMano.LessThan(req.Cantidad) {
		return nil, errors.New("inventario personal insuficiente: en mano " + enMano.String())
	}

	salida := &model.Salida{
		ID:          uuid.NewString(),
		UsuarioID:   usuarioID,
		ProductoID:  req.ProductoID,
		Cantidad:    req.Cantidad,
		Unidad:      unidad,
		Fecha:       time.Now(),
		Observacion: req.Observacion,
	}
	if err := s.stocks.CreateSalida(ctx, salida); err != nil {
		return nil, err
	}
	resp := salidaAResponse(salida)
	return &resp, nil
}

func (s *stockService) ListarAsignaciones(ctx context.Context) ([]dto.AsignacionResponse, error) {
	rows, err := s.stocks.ListAsignaciones(ctx)
	if err != nil {
		return nil, err
	}
	return asignacionesAResponse(rows), nil
}

func (s *stockService) ListarAsignacionesUsuario(ctx context.Context, usuarioID string) ([]dto.AsignacionResponse, error) {
	rows, err := s.stocks.ListAsignacionesUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return asignacionesAResponse(rows), nil
}

func (s *stockService) ListarSalidas(ctx context.Context) ([]dto.SalidaResponse, error) {
	rows, err := s.stocks.ListSalidas(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SalidaResponse, len(rows))
	for i := range rows {
		resp[i] = salidaAResponse(&rows[i])
	}
	return resp, nil
}

func (s *stockService) ListarSalidasUsuario(ctx context.Context, usuarioID string) ([]dto.SalidaResponse, error) {
	rows, err := s.stocks.ListSalidasUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SalidaResponse, len(rows))
	for i := range rows {
		resp[i] = salidaAResponse(&rows[i])
	}
	return resp, nil
}

func (s *stockService) nombresProductos(ctx context.Context) (map[string]string, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string, len(productos))
	for _, p := range productos {
		nombres[p.ID] = p.Nombre
	}
	return nombres, nil
}

func asignacionesAResponse(rows []model.Asignacion) []dto.AsignacionResponse {
	resp := make([]dto.AsignacionResponse, len(rows))
	for i := range rows {
		nombre := ""
		if rows[i].Producto != nil {
			nombre = rows[i].Producto.Nombre
		}
		resp[i] = asignacionAResponse(&rows[i], nombre)
	}
	return resp
}

func asignacionAResponse(a *model.Asignacion, productoNombre string) dto.AsignacionResponse {
	return dto.AsignacionResponse{
		ID:             a.ID,
		UsuarioID:      a.UsuarioID,
		ProductoID:     a.ProductoID,
		ProductoNombre: productoNombre,
		Cantidad:       a.Cantidad,
		Unidad:         a.Unidad,
		AreaID:         a.AreaID,
		UbicacionID:    a.UbicacionID,
		Marca:          a.Marca,
		Fecha:          formatFecha(a.CreatedAt),
	}
}

func salidaAResponse(s *model.Salida) dto.SalidaResponse {
	return dto.SalidaResponse{
		ID:          s.ID,
		UsuarioID:   s.UsuarioID,
		ProductoID:  s.ProductoID,
		Cantidad:    s.Cantidad,
		Unidad:      s.Unidad,
		Fecha:       formatFecha(s.Fecha),
		Observacion: s.Observacion,
	}
}
