// Package excel implementa la exportación de reportes a libros .xlsx con
// excelize.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/crodval/multicentro-api/internal/application/reportes"
	"github.com/crodval/multicentro-api/internal/domain/repository"
)

var _ reportes.Exporter = (*Exporter)(nil)

// Nombres de hoja: Excel admite hasta 31 caracteres y prohíbe estos símbolos.
const maxHoja = 31

var hojaInvalidos = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")

var columnasInventario = []string{
	"Código", "Nombre", "Categoría", "Precio", "Stock Actual", "Stock Mínimo", "Fecha Ingreso", "Sucursal",
}

var columnasVentas = []string{
	"Código", "Producto", "Categoría", "Cantidad", "Precio Unitario", "Total", "Fecha", "Sucursal",
}

// Exporter genera los libros de los reportes. No guarda estado.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Inventario escribe el inventario en una sola hoja.
func (e *Exporter) Inventario(hoja, sucursal string, items []repository.InventarioItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	nombre := nombreHoja(hoja)
	f.SetSheetName("Sheet1", nombre)
	if err := e.hojaInventario(f, nombre, sucursal, items); err != nil {
		return nil, err
	}
	return aBytes(f)
}

// InventarioPorCategoria escribe una hoja por cada categoría presente en el
// inventario, en el orden en que aparecen.
func (e *Exporter) InventarioPorCategoria(sucursal string, items []repository.InventarioItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	grupos := make(map[string][]repository.InventarioItem)
	var orden []string
	for _, it := range items {
		if _, ok := grupos[it.Categoria]; !ok {
			orden = append(orden, it.Categoria)
		}
		grupos[it.Categoria] = append(grupos[it.Categoria], it)
	}
	if len(orden) == 0 {
		orden = []string{"Inventario"}
	}

	usados := make(map[string]bool, len(orden))
	for i, categoria := range orden {
		nombre := nombreHojaUnico(categoria, usados)
		if i == 0 {
			f.SetSheetName("Sheet1", nombre)
		} else if _, err := f.NewSheet(nombre); err != nil {
			return nil, fmt.Errorf("crear hoja %q: %w", nombre, err)
		}
		if err := e.hojaInventario(f, nombre, sucursal, grupos[categoria]); err != nil {
			return nil, err
		}
	}
	return aBytes(f)
}

// Ventas escribe las filas de venta en una sola hoja.
func (e *Exporter) Ventas(hoja, sucursal string, items []repository.VentaItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	nombre := nombreHoja(hoja)
	f.SetSheetName("Sheet1", nombre)
	if err := encabezado(f, nombre, columnasVentas); err != nil {
		return nil, err
	}
	for i, it := range items {
		fila := i + 2
		valores := []any{
			it.Codigo,
			it.Producto,
			it.Categoria,
			it.Cantidad,
			it.PrecioUnitario.InexactFloat64(),
			it.Total.InexactFloat64(),
			it.Fecha.Format("2006-01-02 15:04"),
			sucursal,
		}
		if err := escribirFila(f, nombre, fila, valores); err != nil {
			return nil, err
		}
	}
	return aBytes(f)
}

func (e *Exporter) hojaInventario(f *excelize.File, hoja, sucursal string, items []repository.InventarioItem) error {
	if err := encabezado(f, hoja, columnasInventario); err != nil {
		return err
	}
	for i, it := range items {
		fila := i + 2
		valores := []any{
			it.Codigo,
			it.Nombre,
			it.Categoria,
			it.Precio.InexactFloat64(),
			it.StockActual,
			it.StockMinimo,
			it.FechaIngreso.Format("2006-01-02"),
			sucursal,
		}
		if err := escribirFila(f, hoja, fila, valores); err != nil {
			return err
		}
	}
	return nil
}

// encabezado escribe la fila de títulos en negrita con fondo gris y ajusta
// anchos de columna.
func encabezado(f *excelize.File, hoja string, columnas []string) error {
	estilo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return fmt.Errorf("estilo encabezado: %w", err)
	}
	for i, titulo := range columnas {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
		if err := f.SetCellStyle(hoja, celda, celda, estilo); err != nil {
			return fmt.Errorf("aplicar estilo: %w", err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(hoja, col, col, 18); err != nil {
			return fmt.Errorf("ancho columna: %w", err)
		}
	}
	return nil
}

func escribirFila(f *excelize.File, hoja string, fila int, valores []any) error {
	celda, err := excelize.CoordinatesToCellName(1, fila)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(hoja, celda, &valores); err != nil {
		return fmt.Errorf("escribir fila %d: %w", fila, err)
	}
	return nil
}

// nombreHoja sanea un nombre de hoja: sin símbolos prohibidos y truncado a
// 31 caracteres.
func nombreHoja(s string) string {
	limpio := strings.TrimSpace(hojaInvalidos.Replace(s))
	if limpio == "" {
		limpio = "Hoja"
	}
	runas := []rune(limpio)
	if len(runas) > maxHoja {
		limpio = string(runas[:maxHoja])
	}
	return limpio
}

// nombreHojaUnico sanea el nombre y, si tras truncar choca con una hoja ya
// emitida, le agrega un sufijo numérico respetando el límite de 31.
func nombreHojaUnico(s string, usados map[string]bool) string {
	nombre := nombreHoja(s)
	base := []rune(nombre)
	for n := 2; usados[nombre]; n++ {
		sufijo := fmt.Sprintf(" %d", n)
		corte := len(base)
		if corte > maxHoja-len(sufijo) {
			corte = maxHoja - len(sufijo)
		}
		nombre = string(base[:corte]) + sufijo
	}
	usados[nombre] = true
	return nombre
}

func aBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
