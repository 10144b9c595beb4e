package ventas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crodval/multicentro-api/internal/application/ventas"
)

func TestRangoDia_CubreElDiaCompletoSinTocarElSiguiente(t *testing.T) {
	loc, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	ref := time.Date(2025, time.March, 15, 18, 42, 7, 0, loc)
	desde, hasta := ventas.RangoDia(ref, loc)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, loc), desde)
	assert.True(t, hasta.Before(time.Date(2025, time.March, 16, 0, 0, 0, 0, loc)),
		"el límite superior no alcanza la medianoche siguiente")
	assert.Equal(t, 15, hasta.Day())
	assert.Equal(t, 23, hasta.Hour())
}

func TestRangoDia_UsaLaZonaHorariaDelArgumento(t *testing.T) {
	loc, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	// 02:30 UTC del día 16 todavía es la noche del 15 en La Paz (UTC-4).
	ref := time.Date(2025, time.March, 16, 2, 30, 0, 0, time.UTC)
	desde, _ := ventas.RangoDia(ref, loc)

	assert.Equal(t, 15, desde.Day())
	assert.Equal(t, loc, desde.Location())
}

func TestRangoMes_DesdeElPrimeroHastaHoy(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	desde, hasta := ventas.RangoMes(ref, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, 15, hasta.Day())
	assert.Equal(t, 23, hasta.Hour())
}

func TestRangoAnio_DesdeEneroHastaHoy(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	desde, hasta := ventas.RangoAnio(ref, time.UTC)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, time.March, hasta.Month())
	assert.Equal(t, 15, hasta.Day())
}
