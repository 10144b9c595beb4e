package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crodval/multicentro-api/internal/application/analytics"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

// fakeResumenRepo devuelve datos fijos; los campos err fuerzan fallos por
// consulta para probar la propagación.
type fakeResumenRepo struct {
	totales  repository.TotalesVentas
	top      []repository.ProductoVendido
	porCat   []repository.ProductoVendido
	errTop   error
	llamadas struct {
		desde, hasta time.Time
	}
}

func (r *fakeResumenRepo) GetTotales(_ context.Context, _ int64, desde, hasta time.Time) (repository.TotalesVentas, error) {
	r.llamadas.desde = desde
	r.llamadas.hasta = hasta
	return r.totales, nil
}

func (r *fakeResumenRepo) GetTopProductos(context.Context, int64, time.Time, time.Time, int) ([]repository.ProductoVendido, error) {
	return r.top, r.errTop
}

func (r *fakeResumenRepo) GetTopPorCategoria(context.Context, int64, time.Time, time.Time, int) ([]repository.ProductoVendido, error) {
	return r.porCat, nil
}

func TestResumenDia_ArmaTotalesYRankings(t *testing.T) {
	repo := &fakeResumenRepo{
		totales: repository.TotalesVentas{
			Importe:  decimal.RequireFromString("154.505"),
			Unidades: 12,
			Filas:    12,
		},
		top: []repository.ProductoVendido{
			{ProductoID: 1, Codigo: "AB-01", Nombre: "Arroz", Unidades: 7, Importe: decimal.NewFromInt(140)},
			{ProductoID: 2, Codigo: "AB-02", Nombre: "Azúcar", Unidades: 5, Importe: decimal.NewFromInt(35)},
		},
		porCat: []repository.ProductoVendido{
			{ProductoID: 1, Codigo: "AB-01", Nombre: "Arroz", Categoria: "Abarrotes", Unidades: 7},
			{ProductoID: 2, Codigo: "AB-02", Nombre: "Azúcar", Categoria: "Abarrotes", Unidades: 5},
			{ProductoID: 3, Codigo: "LM-01", Nombre: "Lavandina", Categoria: "Limpieza", Unidades: 3},
		},
	}
	uc := analytics.NewResumenUseCase(repo, time.UTC)

	out, err := uc.ResumenDia(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.SucursalID)
	assert.Equal(t, "154.51", out.Importe.String(), "el importe se redondea a 2 decimales")
	assert.Equal(t, 12, out.Unidades)
	assert.Equal(t, 12, out.Filas)

	require.Len(t, out.TopProductos, 2)
	assert.Equal(t, "Arroz", out.TopProductos[0].Nombre)
	assert.Equal(t, 7, out.TopProductos[0].Unidades)

	// Una entrada por categoría, respetando el orden del repositorio.
	require.Len(t, out.PorCategoria, 2)
	assert.Equal(t, "Abarrotes", out.PorCategoria[0].Categoria)
	require.Len(t, out.PorCategoria[0].Productos, 2)
	assert.Equal(t, "Limpieza", out.PorCategoria[1].Categoria)
	require.Len(t, out.PorCategoria[1].Productos, 1)
	assert.Equal(t, "Lavandina", out.PorCategoria[1].Productos[0].Nombre)
}

func TestResumenDia_ConsultaElRangoDeHoy(t *testing.T) {
	repo := &fakeResumenRepo{}
	uc := analytics.NewResumenUseCase(repo, time.UTC)

	_, err := uc.ResumenDia(context.Background(), 1)
	require.NoError(t, err)

	hoy := time.Now().UTC()
	assert.Equal(t, hoy.Day(), repo.llamadas.desde.Day())
	assert.Equal(t, 0, repo.llamadas.desde.Hour())
	assert.Equal(t, 23, repo.llamadas.hasta.Hour())
}

func TestResumenDia_SucursalCero(t *testing.T) {
	uc := analytics.NewResumenUseCase(&fakeResumenRepo{}, time.UTC)

	_, err := uc.ResumenDia(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResumenDia_PropagaElErrorDeUnaConsulta(t *testing.T) {
	repo := &fakeResumenRepo{errTop: errors.New("timeout")}
	uc := analytics.NewResumenUseCase(repo, time.UTC)

	_, err := uc.ResumenDia(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top productos")
}
