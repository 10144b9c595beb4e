package ventas

import "time"

// RangoDia devuelve los límites del día de t en la zona horaria dada:
// [00:00:00.000, 23:59:59.999...]. El listado "de hoy" y el resumen diario
// usan este rango con el reloj local de la sucursal.
func RangoDia(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	desde := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	hasta := desde.Add(24*time.Hour - time.Nanosecond)
	return desde, hasta
}

// RangoMes devuelve el rango por defecto de los reportes: del día 1 del mes
// de t a las 00:00 hasta el fin del día de t.
func RangoMes(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	desde := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	_, hasta := RangoDia(t, loc)
	return desde, hasta
}

// RangoAnio devuelve el rango del año en curso: 1 de enero a las 00:00 hasta
// el fin del día de t.
func RangoAnio(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	desde := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc)
	_, hasta := RangoDia(t, loc)
	return desde, hasta
}
