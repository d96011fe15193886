package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogoRepo is an in-memory CatalogoRepository. The ingreso counters
// are set directly by the tests.
type stubCatalogoRepo struct {
	areas       map[string]*model.Area
	ubicaciones map[string]*model.Ubicacion
	unidades    map[string]*model.UnidadMedida

	ingresosPorArea      map[string]int64
	asignacionesPorArea  map[string]int64
	ingresosPorUbicacion map[string]int64
	productosPorUnidad   map[string]int64
}

func newStubCatalogoRepo() *stubCatalogoRepo {
	return &stubCatalogoRepo{
		areas:                make(map[string]*model.Area),
		ubicaciones:          make(map[string]*model.Ubicacion),
		unidades:             make(map[string]*model.UnidadMedida),
		ingresosPorArea:      make(map[string]int64),
		asignacionesPorArea:  make(map[string]int64),
		ingresosPorUbicacion: make(map[string]int64),
		productosPorUnidad:   make(map[string]int64),
	}
}

func (r *stubCatalogoRepo) CreateArea(_ context.Context, a *model.Area) error {
	r.areas[a.ID] = a
	return nil
}

func (r *stubCatalogoRepo) ListAreas(_ context.Context) ([]model.Area, error) {
	out := make([]model.Area, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubCatalogoRepo) FindArea(_ context.Context, id string) (*model.Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubCatalogoRepo) UpdateArea(_ context.Context, a *model.Area) error {
	r.areas[a.ID] = a
	return nil
}

func (r *stubCatalogoRepo) DeleteArea(_ context.Context, id string) error {
	delete(r.areas, id)
	return nil
}

func (r *stubCatalogoRepo) CountIngresosByArea(_ context.Context, areaID string) (int64, error) {
	return r.ingresosPorArea[areaID], nil
}

func (r *stubCatalogoRepo) CountAsignacionesByArea(_ context.Context, areaID string) (int64, error) {
	return r.asignacionesPorArea[areaID], nil
}

func (r *stubCatalogoRepo) CreateUbicacion(_ context.Context, u *model.Ubicacion) error {
	r.ubicaciones[u.ID] = u
	return nil
}

func (r *stubCatalogoRepo) ListUbicaciones(_ context.Context) ([]model.Ubicacion, error) {
	out := make([]model.Ubicacion, 0, len(r.ubicaciones))
	for _, u := range r.ubicaciones {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubCatalogoRepo) FindUbicacion(_ context.Context, id string) (*model.Ubicacion, error) {
	u, ok := r.ubicaciones[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubCatalogoRepo) UpdateUbicacion(_ context.Context, u *model.Ubicacion) error {
	r.ubicaciones[u.ID] = u
	return nil
}

func (r *stubCatalogoRepo) DeleteUbicacion(_ context.Context, id string) error {
	delete(r.ubicaciones, id)
	return nil
}

func (r *stubCatalogoRepo) CountIngresosByUbicacion(_ context.Context, ubicacionID string) (int64, error) {
	return r.ingresosPorUbicacion[ubicacionID], nil
}

func (r *stubCatalogoRepo) CreateUnidad(_ context.Context, u *model.UnidadMedida) error {
	r.unidades[u.ID] = u
	return nil
}

func (r *stubCatalogoRepo) ListUnidades(_ context.Context) ([]model.UnidadMedida, error) {
	out := make([]model.UnidadMedida, 0, len(r.unidades))
	for _, u := range r.unidades {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubCatalogoRepo) FindUnidad(_ context.Context, id string) (*model.UnidadMedida, error) {
	u, ok := r.unidades[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubCatalogoRepo) UpdateUnidad(_ context.Context, u *model.UnidadMedida) error {
	r.unidades[u.ID] = u
	return nil
}

func (r *stubCatalogoRepo) DeleteUnidad(_ context.Context, id string) error {
	delete(r.unidades, id)
	return nil
}

func (r *stubCatalogoRepo) CountProductosByUnidad(_ context.Context, nombre string) (int64, error) {
	return r.productosPorUnidad[nombre], nil
}

var _ repository.CatalogoRepository = (*stubCatalogoRepo)(nil)

func buildCatalogoSvc() (CatalogoService, *stubCatalogoRepo, *stubProductoRepo) {
	catalogoRepo := newStubCatalogoRepo()
	productoRepo := newStubProductoRepo()
	return NewCatalogoService(catalogoRepo, productoRepo), catalogoRepo, productoRepo
}

func TestEliminarArea_EnUso(t *testing.T) {
	svc, catalogoRepo, productoRepo := buildCatalogoSvc()

	area, err := svc.CrearArea(context.Background(), dto.CrearNombreRequest{Nombre: "Patio"})
	require.NoError(t, err)

	// un producto apunta al área
	p := seedProducto(productoRepo, "Varilla", nil)
	p.AreaID = area.ID

	err = svc.EliminarArea(context.Background(), area.ID)
	assert.ErrorContains(t, err, "en uso")

	// liberada la referencia, la baja procede
	p.AreaID = "a1"
	err = svc.EliminarArea(context.Background(), area.ID)
	require.NoError(t, err)
	_, ok := catalogoRepo.areas[area.ID]
	assert.False(t, ok)
}

func TestEliminarArea_ConAsignacionesVigentes(t *testing.T) {
	svc, catalogoRepo, _ := buildCatalogoSvc()

	area, err := svc.CrearArea(context.Background(), dto.CrearNombreRequest{Nombre: "Taller"})
	require.NoError(t, err)

	// sin productos ni ingresos, pero con stock asignado en el área
	catalogoRepo.asignacionesPorArea[area.ID] = 1

	err = svc.EliminarArea(context.Background(), area.ID)
	assert.ErrorContains(t, err, "en uso")
	_, ok := catalogoRepo.areas[area.ID]
	assert.True(t, ok)

	catalogoRepo.asignacionesPorArea[area.ID] = 0
	err = svc.EliminarArea(context.Background(), area.ID)
	require.NoError(t, err)
}

func TestEliminarUbicacion_ConIngresosHistoricos(t *testing.T) {
	svc, catalogoRepo, _ := buildCatalogoSvc()

	ub, err := svc.CrearUbicacion(context.Background(), dto.CrearNombreRequest{Nombre: "Estante 9"})
	require.NoError(t, err)
	catalogoRepo.ingresosPorUbicacion[ub.ID] = 2

	err = svc.EliminarUbicacion(context.Background(), ub.ID)
	assert.ErrorContains(t, err, "en uso")
}

func TestEliminarUnidad_ReferenciadaPorProductos(t *testing.T) {
	svc, catalogoRepo, _ := buildCatalogoSvc()

	unidad, err := svc.CrearUnidad(context.Background(), dto.CrearUnidadMedidaRequest{
		Nombre: "Kilogramo", Simbolo: "kg",
	})
	require.NoError(t, err)
	catalogoRepo.productosPorUnidad["kg"] = 3

	err = svc.EliminarUnidad(context.Background(), unidad.ID)
	assert.ErrorContains(t, err, "en uso")

	catalogoRepo.productosPorUnidad["kg"] = 0
	err = svc.EliminarUnidad(context.Background(), unidad.ID)
	require.NoError(t, err)
}

func TestReferencias_DevuelveAmbosCatalogos(t *testing.T) {
	svc, _, _ := buildCatalogoSvc()

	_, err := svc.CrearArea(context.Background(), dto.CrearNombreRequest{Nombre: "Almacén Central"})
	require.NoError(t, err)
	_, err = svc.CrearUbicacion(context.Background(), dto.CrearNombreRequest{Nombre: "Estante 1"})
	require.NoError(t, err)

	resp, err := svc.Referencias(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Areas, 1)
	assert.Len(t, resp.Ubicaciones, 1)
}
