package service

import (
	"context"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStockSvc() (StockService, *stubStockRepo, *stubProductoRepo, *stubUsuarioRepo) {
	stockRepo := newStubStockRepo()
	productoRepo := newStubProductoRepo()
	usuarioRepo := newStubUsuarioRepo()
	svc := NewStockService(stockRepo, productoRepo, usuarioRepo, testConfig())
	return svc, stockRepo, productoRepo, usuarioRepo
}

func TestDisponible_IngresosMenosAsignado(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Cemento 42.5kg", nil)
	u := seedUsuario(usuarioRepo, "Juan Pérez", "juan@demo.com", "role-trabajador")

	seedIngreso(stockRepo, p.ID, 100, nil)

	_, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID:  u.ID,
		ProductoID: p.ID,
		Cantidad:   dec(30),
	})
	require.NoError(t, err)

	disponible, err := svc.Disponible(context.Background(), p.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "70", disponible.String())
}

func TestAsignar_StockInsuficiente(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Fierro 1/2", nil)
	u := seedUsuario(usuarioRepo, "Ana Torres", "ana@demo.com", "role-trabajador")

	seedIngreso(stockRepo, p.ID, 100, nil)

	// 30 already assigned → 70 available
	_, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(30),
	})
	require.NoError(t, err)

	// 80 > 70 → rejected
	_, err = svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(80),
	})
	assert.ErrorContains(t, err, "stock insuficiente: disponible 70, solicitado 80")

	// exactly 70 drains it to zero
	_, err = svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(70),
	})
	require.NoError(t, err)

	disponible, err := svc.Disponible(context.Background(), p.ID, nil)
	require.NoError(t, err)
	assert.True(t, disponible.IsZero())
}

func TestDisponible_MarcaSeparaStock(t *testing.T) {
	svc, stockRepo, productoRepo, _ := buildStockSvc()
	p := seedProducto(productoRepo, "Pintura látex", nil)

	seedIngreso(stockRepo, p.ID, 50, ptr("CPP"))
	seedIngreso(stockRepo, p.ID, 20, nil)
	seedIngreso(stockRepo, p.ID, 5, ptr("")) // empty collapses with NULL

	conMarca, err := svc.Disponible(context.Background(), p.ID, ptr("CPP"))
	require.NoError(t, err)
	assert.Equal(t, "50", conMarca.String())

	sinMarca, err := svc.Disponible(context.Background(), p.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "25", sinMarca.String())

	otra, err := svc.Disponible(context.Background(), p.ID, ptr("Vencedor"))
	require.NoError(t, err)
	assert.True(t, otra.IsZero())
}

func TestAsignar_MarcaHeredadaDelProducto(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Taladro", ptr("Bosch"))
	u := seedUsuario(usuarioRepo, "Luis Mora", "luis@demo.com", "role-trabajador")

	seedIngreso(stockRepo, p.ID, 10, ptr("Bosch"))

	resp, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(4),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Marca)
	assert.Equal(t, "Bosch", *resp.Marca)

	disponible, _ := svc.Disponible(context.Background(), p.ID, ptr("Bosch"))
	assert.Equal(t, "6", disponible.String())
}

func TestStockGeneral_AgrupaPorProductoYMarca(t *testing.T) {
	svc, stockRepo, productoRepo, _ := buildStockSvc()
	p := seedProducto(productoRepo, "Clavos 2\"", nil)

	seedIngreso(stockRepo, p.ID, 40, nil)
	seedIngreso(stockRepo, p.ID, 10, ptr("")) // same bucket as NULL
	seedIngreso(stockRepo, p.ID, 25, ptr("Truper"))

	items, err := svc.StockGeneral(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	porMarca := make(map[string]dto.StockGeneralItem)
	for _, item := range items {
		marca := ""
		if item.Marca != nil {
			marca = *item.Marca
		}
		porMarca[marca] = item
	}
	assert.Equal(t, "50", porMarca[""].Disponible.String())
	assert.Equal(t, "25", porMarca["Truper"].Disponible.String())
	assert.Equal(t, "Clavos 2\"", porMarca[""].ProductoNombre)
}

func TestStockMio_AsignadoMenosSalidas(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Guantes", nil)
	u := seedUsuario(usuarioRepo, "Rosa Díaz", "rosa@demo.com", "role-trabajador")

	seedIngreso(stockRepo, p.ID, 100, nil)

	_, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(12),
	})
	require.NoError(t, err)

	_, err = svc.RegistrarSalida(context.Background(), u.ID, dto.SalidaRequest{
		ProductoID: p.ID, Cantidad: dec(5),
	})
	require.NoError(t, err)

	items, err := svc.StockMio(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].Cantidad.String())
	assert.Equal(t, "und", items[0].Unidad)
}

func TestRegistrarSalida_InventarioInsuficiente(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Cascos", nil)
	u := seedUsuario(usuarioRepo, "Iván Ruiz", "ivan@demo.com", "role-trabajador")

	seedIngreso(stockRepo, p.ID, 10, nil)
	_, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: p.ID, Cantidad: dec(3),
	})
	require.NoError(t, err)

	_, err = svc.RegistrarSalida(context.Background(), u.ID, dto.SalidaRequest{
		ProductoID: p.ID, Cantidad: dec(4),
	})
	assert.ErrorContains(t, err, "inventario personal insuficiente")
}

func TestRegistrarSalida_SinAsignacionesPrevias(t *testing.T) {
	svc, _, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Lentes", nil)
	u := seedUsuario(usuarioRepo, "Elsa Vega", "elsa@demo.com", "role-trabajador")

	_, err := svc.RegistrarSalida(context.Background(), u.ID, dto.SalidaRequest{
		ProductoID: p.ID, Cantidad: dec(1),
	})
	assert.ErrorContains(t, err, "insuficiente")
}

func TestAsignar_UsuarioOProductoInexistente(t *testing.T) {
	svc, stockRepo, productoRepo, usuarioRepo := buildStockSvc()
	p := seedProducto(productoRepo, "Sierra", nil)
	u := seedUsuario(usuarioRepo, "Mario León", "mario@demo.com", "role-trabajador")
	seedIngreso(stockRepo, p.ID, 10, nil)

	_, err := svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: "no-existe", ProductoID: p.ID, Cantidad: dec(1),
	})
	assert.ErrorContains(t, err, "usuario no encontrado")

	_, err = svc.Asignar(context.Background(), dto.AsignacionRequest{
		UsuarioID: u.ID, ProductoID: "no-existe", Cantidad: dec(1),
	})
	assert.ErrorContains(t, err, "producto no encontrado")
}
