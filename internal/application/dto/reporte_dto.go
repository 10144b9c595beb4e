package dto

// ReporteFiltro parámetros comunes de los reportes. Desde/Hasta en formato
// 2006-01-02; cuando faltan se asume el mes en curso.
type ReporteFiltro struct {
	SucursalID  int64  `query:"sucursal_id"`
	CategoriaID int64  `query:"categoria_id"`
	Desde       string `query:"desde"`
	Hasta       string `query:"hasta"`
	PageRequest
}

// ReporteInventarioResponse página de un reporte de inventario.
type ReporteInventarioResponse struct {
	Items []InventarioItemResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// ReporteVentasResponse página de un reporte de ventas.
type ReporteVentasResponse struct {
	Items []VentaItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
