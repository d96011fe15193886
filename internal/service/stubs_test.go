package service

import (
	"context"
	"errors"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id string) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) UpdatePermissions(_ context.Context, id string, encoded string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.Permissions = encoded
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) CountByRole(_ context.Context, roleID string) (int64, error) {
	var n int64
	for _, u := range r.usuarios {
		if u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubRolRepo is an in-memory RolRepository.
type stubRolRepo struct {
	roles map[string]*model.Rol
}

func newStubRolRepo() *stubRolRepo {
	return &stubRolRepo{roles: make(map[string]*model.Rol)}
}

func (r *stubRolRepo) Create(_ context.Context, rol *model.Rol) error {
	r.roles[rol.ID] = rol
	return nil
}

func (r *stubRolRepo) FindByID(_ context.Context, id string) (*model.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return rol, nil
}

func (r *stubRolRepo) FindByName(_ context.Context, name string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if rol.Name == name && rol.Active {
			return rol, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubRolRepo) List(_ context.Context, includeInactive bool) ([]model.Rol, error) {
	out := make([]model.Rol, 0, len(r.roles))
	for _, rol := range r.roles {
		if !includeInactive && !rol.Active {
			continue
		}
		out = append(out, *rol)
	}
	return out, nil
}

func (r *stubRolRepo) Update(_ context.Context, rol *model.Rol) error {
	r.roles[rol.ID] = rol
	return nil
}

func (r *stubRolRepo) Deactivate(_ context.Context, id string) error {
	rol, ok := r.roles[id]
	if !ok {
		return errors.New("not found")
	}
	rol.Active = false
	return nil
}

var _ repository.RolRepository = (*stubRolRepo)(nil)

// stubProductoRepo is an in-memory ProductoRepository.
type stubProductoRepo struct {
	productos   map[string]*model.Producto
	movimientos map[string]int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:   make(map[string]*model.Producto),
		movimientos: make(map[string]int64),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id string) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id string) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) CountMovimientos(_ context.Context, id string) (int64, error) {
	return r.movimientos[id], nil
}

func (r *stubProductoRepo) CountByArea(_ context.Context, areaID string) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.AreaID == areaID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) CountByUbicacion(_ context.Context, ubicacionID string) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.UbicacionID == ubicacionID {
			n++
		}
	}
	return n, nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubStockRepo keeps the three ledgers in memory and derives the same sums
// the SQL implementation computes.
type stubStockRepo struct {
	ingresos     []model.Ingreso
	asignaciones []model.Asignacion
	salidas      []model.Salida
}

func newStubStockRepo() *stubStockRepo { return &stubStockRepo{} }

// marcaMatch mirrors the three-state brand filter: no brand requested matches
// rows with NULL or empty brand; a concrete brand matches exactly.
func marcaMatch(rowMarca, query *string) bool {
	if query == nil || *query == "" {
		return rowMarca == nil || *rowMarca == ""
	}
	return rowMarca != nil && *rowMarca == *query
}

func (r *stubStockRepo) SumIngresos(_ context.Context, productoID string, marca *string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range r.ingresos {
		if i.ProductoID == productoID && marcaMatch(i.Marca, marca) {
			total = total.Add(i.Cantidad)
		}
	}
	return total, nil
}

func (r *stubStockRepo) SumAsignado(_ context.Context, productoID string, marca *string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range r.asignaciones {
		if a.ProductoID == productoID && marcaMatch(a.Marca, marca) {
			total = total.Add(a.Cantidad)
		}
	}
	return total, nil
}

func (r *stubStockRepo) SumIngresosTx(_ *gorm.DB, productoID string, marca *string) (decimal.Decimal, error) {
	return r.SumIngresos(context.Background(), productoID, marca)
}

func (r *stubStockRepo) SumAsignadoTx(_ *gorm.DB, productoID string, marca *string) (decimal.Decimal, error) {
	return r.SumAsignado(context.Background(), productoID, marca)
}

func (r *stubStockRepo) CreateAsignacionTx(_ *gorm.DB, a *model.Asignacion) error {
	r.asignaciones = append(r.asignaciones, *a)
	return nil
}

func (r *stubStockRepo) CreateSalida(_ context.Context, s *model.Salida) error {
	r.salidas = append(r.salidas, *s)
	return nil
}

func (r *stubStockRepo) ListAsignaciones(_ context.Context) ([]model.Asignacion, error) {
	return r.asignaciones, nil
}

func (r *stubStockRepo) ListAsignacionesUsuario(_ context.Context, usuarioID string) ([]model.Asignacion, error) {
	var out []model.Asignacion
	for _, a := range r.asignaciones {
		if a.UsuarioID == usuarioID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListSalidasUsuario(_ context.Context, usuarioID string) ([]model.Salida, error) {
	var out []model.Salida
	for _, s := range r.salidas {
		if s.UsuarioID == usuarioID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListSalidas(_ context.Context) ([]model.Salida, error) {
	return r.salidas, nil
}

func (r *stubStockRepo) AsignadoPorUsuario(_ context.Context, usuarioID string) ([]repository.SaldoUsuarioRow, error) {
	return agrupar(usuarioID, r.asignaciones, func(a model.Asignacion) (string, string, string, decimal.Decimal) {
		return a.UsuarioID, a.ProductoID, a.Unidad, a.Cantidad
	}), nil
}

func (r *stubStockRepo) SalidasPorUsuario(_ context.Context, usuarioID string) ([]repository.SaldoUsuarioRow, error) {
	return agrupar(usuarioID, r.salidas, func(s model.Salida) (string, string, string, decimal.Decimal) {
		return s.UsuarioID, s.ProductoID, s.Unidad, s.Cantidad
	}), nil
}

func agrupar[T any](usuarioID string, rows []T, campos func(T) (string, string, string, decimal.Decimal)) []repository.SaldoUsuarioRow {
	type clave struct{ producto, unidad string }
	totales := make(map[clave]decimal.Decimal)
	orden := []clave{}
	for _, row := range rows {
		uid, pid, unidad, cantidad := campos(row)
		if uid != usuarioID {
			continue
		}
		k := clave{pid, unidad}
		if _, ok := totales[k]; !ok {
			orden = append(orden, k)
		}
		totales[k] = totales[k].Add(cantidad)
	}
	out := make([]repository.SaldoUsuarioRow, 0, len(orden))
	for _, k := range orden {
		out = append(out, repository.SaldoUsuarioRow{ProductoID: k.producto, Unidad: k.unidad, Total: totales[k]})
	}
	return out
}

func (r *stubStockRepo) CombosIngresados(_ context.Context) ([]repository.ComboStock, error) {
	type clave struct{ producto, marca, unidad string }
	vistos := make(map[clave]bool)
	var out []repository.ComboStock
	for _, i := range r.ingresos {
		marca := ""
		if i.Marca != nil {
			marca = *i.Marca
		}
		k := clave{i.ProductoID, marca, i.Unidad}
		if vistos[k] {
			continue
		}
		vistos[k] = true
		out = append(out, repository.ComboStock{ProductoID: i.ProductoID, Marca: i.Marca, Unidad: i.Unidad})
	}
	return out, nil
}

func (r *stubStockRepo) DB() *gorm.DB { return nil }

var _ repository.StockRepository = (*stubStockRepo)(nil)

// stubPedidoRepo is an in-memory PedidoRepository.
type stubPedidoRepo struct {
	pedidos []*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo { return &stubPedidoRepo{} }

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	r.pedidos = append(r.pedidos, p)
	return nil
}

func (r *stubPedidoRepo) CreateBatch(_ context.Context, pedidos []model.Pedido) error {
	for i := range pedidos {
		p := pedidos[i]
		r.pedidos = append(r.pedidos, &p)
	}
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id string) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubPedidoRepo) FindByLote(_ context.Context, loteID string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.LoteID == loteID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListByUsuario(_ context.Context, usuarioID string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.UsuarioID == usuarioID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListByEstado(_ context.Context, estado string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.Estado == estado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) UpdateEstado(_ context.Context, id, estado string, respuesta time.Time, observaciones string) error {
	for _, p := range r.pedidos {
		if p.ID == id {
			p.Estado = estado
			p.FechaRespuesta = &respuesta
			if observaciones != "" {
				p.Observaciones = observaciones
			}
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubPedidoRepo) UpdateEstadoLote(_ context.Context, loteID, estado string, respuesta time.Time, observaciones string) error {
	for _, p := range r.pedidos {
		if p.LoteID == loteID {
			p.Estado = estado
			p.FechaRespuesta = &respuesta
			if observaciones != "" {
				p.Observaciones = observaciones
			}
		}
	}
	return nil
}

func (r *stubPedidoRepo) UpdateEstadoLoteTx(_ *gorm.DB, loteID, estado string, respuesta time.Time) error {
	for _, p := range r.pedidos {
		if p.LoteID == loteID {
			p.Estado = estado
			p.FechaRespuesta = &respuesta
		}
	}
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func ptr(s string) *string { return &s }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		AreaDefault:        "a1",
		UbicacionDefault:   "u1",
	}
}

func seedProducto(repo *stubProductoRepo, nombre string, marca *string) *model.Producto {
	p := &model.Producto{
		ID:          uuid.NewString(),
		Nombre:      nombre,
		Unidad:      "und",
		AreaID:      "a1",
		UbicacionID: "u1",
		Activo:      true,
		Marca:       marca,
	}
	repo.productos[p.ID] = p
	return p
}

func seedUsuario(repo *stubUsuarioRepo, nombres, email, roleID string) *model.Usuario {
	u := &model.Usuario{
		ID:          uuid.NewString(),
		Nombres:     nombres,
		Email:       email,
		RoleID:      roleID,
		Permissions: "[]",
	}
	repo.usuarios[u.ID] = u
	return u
}

func seedRol(repo *stubRolRepo, id, name string, permisos []string, predefined bool) *model.Rol {
	rol := &model.Rol{
		ID:          id,
		Name:        name,
		Permissions: model.EncodePermisos(permisos),
		Predefined:  predefined,
		Active:      true,
	}
	repo.roles[rol.ID] = rol
	return rol
}

func seedIngreso(repo *stubStockRepo, productoID string, cantidad int64, marca *string) {
	repo.ingresos = append(repo.ingresos, model.Ingreso{
		ID:           uuid.NewString(),
		ProductoID:   productoID,
		ProveedorID:  "prov-1",
		Nombre:       "ingreso",
		FechaIngreso: time.Now(),
		Cantidad:     dec(cantidad),
		Unidad:       "und",
		AreaID:       "a1",
		UbicacionID:  "u1",
		Marca:        marca,
	})
}
