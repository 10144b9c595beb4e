// Package analytics contiene el caso de uso del resumen de ventas del día.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/ventas"
	"github.com/crodval/multicentro-api/internal/domain"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

const (
	resumenTopProductos = 3 // productos en el ranking general
	resumenTopCategoria = 3 // productos por categoría
)

// ResumenUseCase arma el resumen del día de una sucursal: totales, top de
// productos y top por categoría.
//
// Fuente de datos: ResumenRepository (consultas read-only). No toca la tabla
// de ventas directamente.
type ResumenUseCase struct {
	resumenRepo repository.ResumenRepository
	loc         *time.Location
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(resumenRepo repository.ResumenRepository, loc *time.Location) *ResumenUseCase {
	return &ResumenUseCase{resumenRepo: resumenRepo, loc: loc}
}

// ResumenDia construye el ResumenResponse de la sucursal para hoy.
//
// Tres llamadas en paralelo:
//  1. GetTotales(hoy)         → importe, unidades, filas
//  2. GetTopProductos(hoy, 3) → top general
//  3. GetTopPorCategoria(hoy) → top 3 dentro de cada categoría
func (uc *ResumenUseCase) ResumenDia(ctx context.Context, sucursalID int64) (*dto.ResumenResponse, error) {
	if sucursalID == 0 {
		return nil, domain.ErrInvalidInput
	}
	desde, hasta := ventas.RangoDia(time.Now(), uc.loc)

	type totalesResult struct {
		totales repository.TotalesVentas
		err     error
	}
	type topResult struct {
		items []repository.ProductoVendido
		err   error
	}

	totalesCh := make(chan totalesResult, 1)
	topCh := make(chan topResult, 1)
	categoriaCh := make(chan topResult, 1)

	go func() {
		t, err := uc.resumenRepo.GetTotales(ctx, sucursalID, desde, hasta)
		totalesCh <- totalesResult{t, err}
	}()
	go func() {
		items, err := uc.resumenRepo.GetTopProductos(ctx, sucursalID, desde, hasta, resumenTopProductos)
		topCh <- topResult{items, err}
	}()
	go func() {
		items, err := uc.resumenRepo.GetTopPorCategoria(ctx, sucursalID, desde, hasta, resumenTopCategoria)
		categoriaCh <- topResult{items, err}
	}()

	totales := <-totalesCh
	top := <-topCh
	categoria := <-categoriaCh

	if totales.err != nil {
		return nil, fmt.Errorf("resumen: totales: %w", totales.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("resumen: top productos: %w", top.err)
	}
	if categoria.err != nil {
		return nil, fmt.Errorf("resumen: top por categoría: %w", categoria.err)
	}

	return &dto.ResumenResponse{
		SucursalID:   sucursalID,
		Importe:      totales.totales.Importe.Round(2),
		Filas:        totales.totales.Filas,
		Unidades:     totales.totales.Unidades,
		TopProductos: toVendidos(top.items),
		PorCategoria: agruparPorCategoria(categoria.items),
	}, nil
}

func toVendidos(items []repository.ProductoVendido) []dto.ProductoVendidoResponse {
	out := make([]dto.ProductoVendidoResponse, 0, len(items))
	for _, pv := range items {
		out = append(out, dto.ProductoVendidoResponse{
			ProductoID: pv.ProductoID,
			Codigo:     pv.Codigo,
			Nombre:     pv.Nombre,
			Unidades:   pv.Unidades,
			Importe:    pv.Importe.Round(2),
		})
	}
	return out
}

// agruparPorCategoria arma un bloque por categoría preservando el orden en
// que el repositorio devolvió las filas.
func agruparPorCategoria(items []repository.ProductoVendido) []dto.CategoriaTopResponse {
	var out []dto.CategoriaTopResponse
	idx := make(map[string]int)
	for _, pv := range items {
		i, ok := idx[pv.Categoria]
		if !ok {
			out = append(out, dto.CategoriaTopResponse{Categoria: pv.Categoria})
			i = len(out) - 1
			idx[pv.Categoria] = i
		}
		out[i].Productos = append(out[i].Productos, dto.ProductoVendidoResponse{
			ProductoID: pv.ProductoID,
			Codigo:     pv.Codigo,
			Nombre:     pv.Nombre,
			Unidades:   pv.Unidades,
			Importe:    pv.Importe.Round(2),
		})
	}
	return out
}
